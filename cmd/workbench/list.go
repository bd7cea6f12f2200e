// List command prints the project summary listing, ordered by id.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Long:  `List prints every project's id and name, ordered by ascending id.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	summaries, err := projects.List()
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	if jsonOutput {
		output, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal projects: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Println("Projects:")
	for _, s := range summaries {
		fmt.Printf("   %d: %s\n", s.ID, s.Name)
	}
	return nil
}
