// Export and import commands move the whole database through JSONL
// snapshot files.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the database to a JSONL snapshot",
	Long: `Export writes every project, material, step, and category to a
JSONL snapshot file. The snapshot is taken in one transaction, so it is
internally consistent.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSONL snapshot into the database",
	Long: `Import loads a snapshot produced by export. Row ids are preserved;
importing over rows that already exist fails and applies nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	snapshotID, err := db.Export(args[0])
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	fmt.Printf("Exported snapshot %s to %s\n", snapshotID, args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := db.Import(args[0]); err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}

	fmt.Printf("Imported snapshot from %s\n", args[0])
	return nil
}
