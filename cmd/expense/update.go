package main

import (
	"fmt"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/spf13/cobra"
)

var (
	updateCategory    string
	updatePrice       string
	updateDescription string
)

func init() {
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "Update category")
	updateCmd.Flags().StringVar(&updatePrice, "price", "", "Update price (at least 10)")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Update description")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an expense by ID",
	Long: `Update an expense by its ID. Only the flags you pass are changed;
the id and date never change.

Examples:
  expense update 1718000000000 --price 30
  expense update 1718000000000 --description "team lunch"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	// Only flags explicitly passed end up in the patch
	var patch expense.Patch
	if cmd.Flags().Changed("category") {
		patch.Category = &updateCategory
	}
	if cmd.Flags().Changed("price") {
		patch.Price = &updatePrice
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateDescription
	}

	e, err := t.Update(args[0], patch)
	if err != nil {
		exitWithOpError(err)
	}

	if jsonOutput {
		outputJSON(e)
	} else {
		fmt.Println(msgUpdated, e.Line())
	}
	return nil
}
