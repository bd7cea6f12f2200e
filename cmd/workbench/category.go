// Category commands manage the shared category catalog and project
// assignments.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage the category catalog",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the category catalog",
	RunE:  runCategoryList,
}

var categoryAssignCmd = &cobra.Command{
	Use:   "assign <project-id> <name>",
	Short: "File a project under a category",
	Long: `Assign links an existing project to an existing catalog category.
Assigning the same pair twice is a no-op.

Example:
  workbench category assign 3 Gardening`,
	Args: cobra.ExactArgs(2),
	RunE: runCategoryAssign,
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAssignCmd)
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	added, err := db.AddCategory(types.Category{Name: args[0]})
	if err != nil {
		return fmt.Errorf("add category: %w", err)
	}

	fmt.Printf("Added category %d: %s\n", added.ID, added.Name)
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	categories, err := db.FetchCategories()
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if jsonOutput {
		output, err := json.MarshalIndent(categories, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal categories: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Println("Categories:")
	for _, c := range categories {
		fmt.Printf("   %d: %s\n", c.ID, c.Name)
	}
	return nil
}

func runCategoryAssign(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	if err := db.AssignCategory(projectID, args[1]); err != nil {
		return err
	}

	fmt.Printf("Filed project %d under %s\n", projectID, args[1])
	return nil
}
