// Show command prints one full project aggregate.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a project with its materials, steps, and categories",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	project, err := projects.GetByID(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		output, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal project: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(project.String())
	return nil
}

// parseProjectID parses a positional id argument.
func parseProjectID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", arg)
	}
	return id, nil
}
