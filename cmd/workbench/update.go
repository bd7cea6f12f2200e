// Update command replaces project details. Flags left unset keep the
// project's current values; the whole row is rewritten either way.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/pkg/types"
)

var (
	updateName       string
	updateEstimated  string
	updateActual     string
	updateDifficulty int
	updateNotes      string
)

var updateCmd = &cobra.Command{
	Use:   "update <project-id>",
	Short: "Update project details",
	Long: `Update rewrites the scalar fields of a project. Only the fields
named by flags change; everything else keeps its current value.

Example:
  workbench update 3 --actual 7.25 --difficulty 4`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "project name")
	updateCmd.Flags().StringVar(&updateEstimated, "estimated", "", "estimated hours")
	updateCmd.Flags().StringVar(&updateActual, "actual", "", "actual hours")
	updateCmd.Flags().IntVar(&updateDifficulty, "difficulty", 0, "difficulty from 1 to 5")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	// Start from the current row so unset flags keep their values.
	current, err := projects.GetByID(id)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		current.Name = updateName
	}
	if cmd.Flags().Changed("estimated") {
		current.EstimatedHours, err = types.ParseDecimal(updateEstimated)
		if err != nil {
			return fmt.Errorf("invalid estimated hours: %w", err)
		}
	}
	if cmd.Flags().Changed("actual") {
		current.ActualHours, err = types.ParseDecimal(updateActual)
		if err != nil {
			return fmt.Errorf("invalid actual hours: %w", err)
		}
	}
	if cmd.Flags().Changed("difficulty") {
		current.Difficulty = updateDifficulty
	}
	if cmd.Flags().Changed("notes") {
		current.Notes = updateNotes
	}

	if err := projects.Update(current); err != nil {
		return err
	}

	fmt.Printf("Updated project %d\n", id)
	return nil
}
