package main

import (
	"fmt"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/spf13/cobra"
)

var (
	showAsc  bool
	showDesc bool
)

func init() {
	showCmd.Flags().BoolVar(&showAsc, "asc", false, "Sort by date ascending")
	showCmd.Flags().BoolVar(&showDesc, "desc", false, "Sort by date descending")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all expenses",
	Long: `Show all expenses, in stored order or sorted by date.

If both --asc and --desc are given, --asc wins.

Examples:
  expense show
  expense show --desc`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	records, err := t.Show(expense.OrderFromFlags(showAsc, showDesc))
	if err != nil {
		exitWithOpError(err)
	}

	if !jsonOutput && len(records) == 0 {
		fmt.Println(msgNoExpenses)
		return nil
	}
	outputExpenses(records)
	return nil
}
