package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:     "getById <id>",
	Aliases: []string{"get"},
	Short:   "Get an expense by ID",
	Long: `Get a single expense by its ID.

Example:
  expense getById 1718000000000`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	e, err := t.Get(args[0])
	if err != nil {
		exitWithOpError(err)
	}

	if jsonOutput {
		outputJSON(e)
	} else {
		printExpenseDetail(e)
	}
	return nil
}
