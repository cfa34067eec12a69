package main

import (
	"fmt"

	"github.com/expense-cli/expense/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set global configuration values, stored in
~/.config/expense/config.yml.

Usage:
  expense config                                # Show all config
  expense config data-file                      # Get specific value
  expense config data-file ~/finance/gel.json   # Set value
  expense config data-file ""                   # Clear value

Keys:
  data-file    Path to the expenses data file
  index-file   Path to the SQLite index (default: .expenses.db beside the data file)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the JSON form of the full config.
type ConfigResponse struct {
	DataFile  string `json:"data_file"`
	IndexFile string `json:"index_file"`
}

// UpdateResponse is the response for a config update.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if jsonOutput {
			outputJSON(ConfigResponse{DataFile: cfg.DataFile, IndexFile: cfg.IndexFile})
		} else {
			fmt.Printf("data-file:  %s\n", cfg.DataFile)
			fmt.Printf("index-file: %s\n", cfg.IndexFile)
		}
		return nil
	}

	key := config.NormalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		value, err := cfg.Get(key)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if jsonOutput {
			outputJSON(map[string]string{key: value})
		} else {
			fmt.Println(value)
		}
		return nil
	}

	// Two args: set value
	if err := cfg.Set(key, args[1]); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	value, _ := cfg.Get(key)
	if jsonOutput {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	} else {
		fmt.Printf("Updated %s to %s\n", key, value)
	}
	return nil
}
