// Material commands manage the supply list of a project.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/pkg/types"
)

var (
	materialName string
	materialQty  int
	materialCost string
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Manage project materials",
}

var materialAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Add a material to a project",
	Long: `Add a supply line item to an existing project.

Example:
  workbench material add 3 --name "2x4 lumber" --qty 8 --cost 3.89`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterialAdd,
}

func init() {
	materialAddCmd.Flags().StringVar(&materialName, "name", "", "material name (required)")
	materialAddCmd.Flags().IntVar(&materialQty, "qty", 1, "number required")
	materialAddCmd.Flags().StringVar(&materialCost, "cost", "0", "unit cost")
	_ = materialAddCmd.MarkFlagRequired("name")

	materialCmd.AddCommand(materialAddCmd)
}

func runMaterialAdd(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	cost, err := types.ParseDecimal(materialCost)
	if err != nil {
		return fmt.Errorf("invalid cost: %w", err)
	}

	added, err := db.AddMaterial(types.Material{
		ProjectID:   projectID,
		Name:        materialName,
		NumRequired: materialQty,
		Cost:        cost,
	})
	if err != nil {
		return fmt.Errorf("add material: %w", err)
	}

	fmt.Printf("Added material %d to project %d: %s\n", added.ID, projectID, added.Name)
	return nil
}
