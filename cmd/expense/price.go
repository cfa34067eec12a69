package main

import (
	"github.com/expense-cli/expense/internal/expense"
	"github.com/spf13/cobra"
)

var (
	priceAsc  bool
	priceDesc bool
)

func init() {
	priceCmd.Flags().BoolVar(&priceAsc, "asc", false, "Sort by price ascending")
	priceCmd.Flags().BoolVar(&priceDesc, "desc", false, "Sort by price descending")
	rootCmd.AddCommand(priceCmd)
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Sort expenses by price",
	Long: `List expenses sorted by price. Without --asc or --desc the stored
order is kept. An empty collection prints nothing.

Examples:
  expense price --asc
  expense price --desc`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

func runPrice(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	records, err := t.ByPrice(expense.OrderFromFlags(priceAsc, priceDesc))
	if err != nil {
		exitWithOpError(err)
	}

	outputExpenses(records)
	return nil
}
