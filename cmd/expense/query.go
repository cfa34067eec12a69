package main

import (
	"github.com/expense-cli/expense/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <jsonpath>",
	Short: "Evaluate a JSONPath expression over the expenses",
	Long: `Evaluate a JSONPath expression against the expense collection and print
the result as JSON. "$" is the whole collection.

Examples:
  expense query '$[*].category'
  expense query '$[?(@.price > 100)]'
  expense query '$[?(@.category == "Food")].price'`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	records, err := t.All()
	if err != nil {
		exitWithOpError(err)
	}

	result, err := query.Eval(records, args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	// Results are JSON regardless of --json
	outputJSON(result)
	return nil
}
