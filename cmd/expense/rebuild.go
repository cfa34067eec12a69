package main

import (
	"fmt"

	"github.com/expense-cli/expense/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the search index from the data file",
	Long: `Rebuild the SQLite index used by summary and search.

The index is normally refreshed automatically when the data file changes;
use this if the index file becomes corrupted.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status   string `json:"status"`
	Expenses int    `json:"expenses"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	paths := mustResolvePaths()
	idx, err := storage.OpenIndex(paths.IndexFile)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer idx.Close()

	if err := idx.Reset(); err != nil {
		exitWithError(ExitError, "resetting index: %v", err)
	}
	if _, err := idx.SyncFrom(storage.NewJSONFile(paths.DataFile, storage.WithFileLogger(logger))); err != nil {
		exitWithOpError(err)
	}

	count, err := idx.Count()
	if err != nil {
		exitWithError(ExitError, "counting expenses: %v", err)
	}

	if jsonOutput {
		outputJSON(RebuildResult{Status: "rebuilt", Expenses: count})
	} else {
		fmt.Printf("Rebuilt index with %d expenses\n", count)
	}
	return nil
}
