package main

import (
	"fmt"

	"github.com/expense-cli/expense/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	addCategory    string
	addPrice       string
	addDescription string
)

func init() {
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category of the expense (required)")
	addCmd.Flags().StringVar(&addPrice, "price", "", "Price of the expense in GEL, at least 10 (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Description of the expense")
	addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new expense",
	Long: `Add a new expense. The id and date are assigned automatically.

Examples:
  expense add --category Food --price 25
  expense add --category Transport --price 12.5 --description "taxi"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	e, err := t.Add(tracker.AddInput{
		Category:    addCategory,
		Price:       addPrice,
		Description: addDescription,
	})
	if err != nil {
		exitWithOpError(err)
	}

	if jsonOutput {
		outputJSON(e)
	} else {
		fmt.Println(msgAdded, e.Line())
	}
	return nil
}
