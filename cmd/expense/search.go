package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DefaultSearchLimit is the default number of search results.
const DefaultSearchLimit = 50

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search expenses by category or description",
	Long: `Full-text search over expense categories and descriptions.

Terms are matched as whole words. Queries containing punctuation are
searched as a single phrase.

Examples:
  expense search lunch
  expense search "team lunch" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchLimit <= 0 {
		exitWithError(ExitError, "--limit must be positive")
	}

	idx := mustOpenIndex()
	defer idx.Close()

	results, err := idx.Search(args[0], searchLimit)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if !jsonOutput && len(results) == 0 {
		fmt.Println(msgNoExpenses)
		return nil
	}
	outputExpenses(results)
	return nil
}
