// Package main provides the expense CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/expense-cli/expense/internal/config"
	"github.com/expense-cli/expense/internal/log"
	"github.com/expense-cli/expense/internal/storage"
	"github.com/expense-cli/expense/internal/tracker"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// jsonOutput switches command output from human-readable text to JSON
	jsonOutput bool
	// dataFileFlag overrides the configured data file
	dataFileFlag string
	// verbose enables debug logging on stderr
	verbose bool

	logger = log.Discard()
)

func main() {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track expenses in a local JSON file",
	Long: `expense records, lists, updates and deletes expenses.

Expenses are stored in expenses.json in the working directory (override with
--file, $EXPENSE_FILE or data_file in ~/.config/expense/config.yml).
Prices are in GEL; the minimum amount is 10 GEL.

Summary and search run against an ephemeral SQLite index that is rebuilt
automatically whenever the data file changes.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "file", "", "Path to the expenses data file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
	rootCmd.Version = Version
}

// setup runs before every command: loads .env and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg := log.DefaultConfig()
	if verbose {
		cfg.Level = slog.LevelDebug
	}
	logger = log.New(cfg)
	logger.Debug("starting", log.FieldOperation, cmd.Name())
	return nil
}

// mustResolvePaths resolves the data and index paths, exits on error.
func mustResolvePaths() config.Paths {
	paths, err := config.Resolve(dataFileFlag)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	logger.WithComponent(log.ComponentConfig).Debug("resolved paths", log.FieldPath, paths.DataFile, "index", paths.IndexFile)
	return paths
}

// mustOpenDataFile returns the JSON store for the resolved data file.
func mustOpenDataFile() *storage.JSONFile {
	return storage.NewJSONFile(mustResolvePaths().DataFile, storage.WithFileLogger(logger))
}

// mustOpenTracker builds a tracker over the resolved data file.
func mustOpenTracker() *tracker.Tracker {
	return tracker.New(mustOpenDataFile(), tracker.WithLogger(logger))
}

// mustOpenIndex opens the SQLite index and brings it up to date with the data file.
// The caller is responsible for calling Close() on the returned index.
func mustOpenIndex() *storage.Index {
	paths := mustResolvePaths()
	idx, err := storage.OpenIndex(paths.IndexFile)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}

	rebuilt, err := idx.SyncFrom(storage.NewJSONFile(paths.DataFile, storage.WithFileLogger(logger)))
	if err != nil {
		idx.Close()
		exitWithOpError(err)
	}
	if rebuilt {
		logger.WithComponent(log.ComponentIndex).Debug("index rebuilt", log.FieldPath, paths.IndexFile)
	}
	return idx
}
