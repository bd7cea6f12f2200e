// Step commands manage the ordered instructions of a project.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/pkg/types"
)

var (
	stepText  string
	stepOrder int
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Manage project steps",
}

var stepAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Add a step to a project",
	Long: `Add an instruction step to an existing project. Without --order the
step is appended after the project's current last step.

Example:
  workbench step add 3 --text "Sand all surfaces"
  workbench step add 3 --text "Apply primer" --order 2`,
	Args: cobra.ExactArgs(1),
	RunE: runStepAdd,
}

func init() {
	stepAddCmd.Flags().StringVar(&stepText, "text", "", "step text (required)")
	stepAddCmd.Flags().IntVar(&stepOrder, "order", 0, "position in the sequence (default: append)")
	_ = stepAddCmd.MarkFlagRequired("text")

	stepCmd.AddCommand(stepAddCmd)
}

func runStepAdd(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	added, err := db.AddStep(types.Step{
		ProjectID: projectID,
		Text:      stepText,
		Order:     stepOrder,
	})
	if err != nil {
		return fmt.Errorf("add step: %w", err)
	}

	fmt.Printf("Added step %d to project %d at position %d\n", added.ID, projectID, added.Order)
	return nil
}
