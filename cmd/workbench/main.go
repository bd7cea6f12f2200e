// Package main provides the workbench CLI, a tracker for DIY projects
// and the materials, steps, and categories attached to them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/internal/paths"
	"github.com/dukaforge/workbench/internal/service"
	"github.com/dukaforge/workbench/internal/store"
	"github.com/dukaforge/workbench/pkg/types"
)

var (
	// Global flag values.
	flagConfigDir string
	flagDataDir   string
	jsonOutput    bool

	// db and projects are initialized before every command that touches
	// storage and released afterward.
	db       *store.Store
	projects *service.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "workbench",
	Short: "Workbench tracks DIY projects",
	Long: `Workbench is a tracker for do-it-yourself projects: each project
carries estimated and actual hours, a difficulty rating, notes, and its
materials, steps, and categories. Data lives in a local SQLite database.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.workbench-db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(materialCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(menuCmd)
}

// openStore loads configuration and opens the store and service.
func openStore(cmd *cobra.Command, args []string) error {
	// Version needs no storage.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	db, err = store.Open(types.Config{
		DataDir:        dataDir,
		SeedCategories: v.GetBool(cfgKeySeedCategories),
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	projects = service.New(db)
	return nil
}

// closeStore releases the store after the command runs.
func closeStore(cmd *cobra.Command, args []string) error {
	if db != nil {
		return db.Close()
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("workbench v0.1.0")
	},
}
