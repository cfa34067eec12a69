package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense by ID",
	Long: `Delete every expense with the given ID.

The data file is rewritten even when no expense matches.

Example:
  expense delete 1718000000000`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

// DeleteResponse is the response for the delete command.
type DeleteResponse struct {
	Status  string `json:"status"`
	Removed int    `json:"removed"`
}

func runDelete(cmd *cobra.Command, args []string) error {
	t := mustOpenTracker()

	removed, err := t.Delete(args[0])
	if err != nil {
		exitWithOpError(err)
	}

	if jsonOutput {
		outputJSON(DeleteResponse{Status: "deleted", Removed: removed})
	} else {
		fmt.Println(msgDeleted)
	}
	return nil
}
