// Add command creates a new project.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/pkg/types"
)

var (
	addName       string
	addEstimated  string
	addActual     string
	addDifficulty int
	addNotes      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new project",
	Long: `Add creates a new project with the given name and scalar details.
Hours take at most two decimal places and are stored normalized, so 3.5
becomes 3.50.

Example:
  workbench add --name "Build a bookshelf" --estimated 6.5 --actual 0 --difficulty 3
  workbench add --name "Hang gutters" --notes "borrow the long ladder" --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "project name (required)")
	addCmd.Flags().StringVar(&addEstimated, "estimated", "0", "estimated hours")
	addCmd.Flags().StringVar(&addActual, "actual", "0", "actual hours")
	addCmd.Flags().IntVar(&addDifficulty, "difficulty", 1, "difficulty from 1 to 5")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	estimated, err := types.ParseDecimal(addEstimated)
	if err != nil {
		return fmt.Errorf("invalid estimated hours: %w", err)
	}
	actual, err := types.ParseDecimal(addActual)
	if err != nil {
		return fmt.Errorf("invalid actual hours: %w", err)
	}

	created, err := projects.Add(types.Project{
		Name:           addName,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     addDifficulty,
		Notes:          addNotes,
	})
	if err != nil {
		return fmt.Errorf("add project: %w", err)
	}

	if jsonOutput {
		output, err := json.MarshalIndent(created, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal project: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Added project %d: %s\n", created.ID, created.Name)
	return nil
}
