// Delete command removes a project and, through the schema's cascade
// rules, its materials, steps, and category links.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	if err := projects.Delete(id); err != nil {
		return err
	}

	fmt.Printf("Project %d was successfully deleted\n", id)
	return nil
}
