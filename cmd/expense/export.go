package main

import (
	"fmt"
	"os"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/expense-cli/expense/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses to CSV or JSON",
	Long: `Export all expenses in stored order.

Examples:
  expense export
  expense export --format json
  expense export --format csv -o expenses.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	t := mustOpenTracker()
	records, err := t.All()
	if err != nil {
		exitWithOpError(err)
	}

	if exportOutput == "" {
		if err := export.Write(os.Stdout, format, records); err != nil {
			exitWithError(ExitError, "exporting: %v", err)
		}
		return nil
	}

	if err := writeExportFile(exportOutput, format, records); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		outputJSON(ExportResponse{Status: "exported", Path: exportOutput, Count: len(records)})
	} else {
		fmt.Fprintf(os.Stderr, "Exported %d expenses to %s\n", len(records), exportOutput)
	}
	return nil
}

// ExportResponse is the response for export --output.
type ExportResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
	Count  int    `json:"count"`
}

// writeExportFile writes records to path. The file is closed before returning
// so a failed flush is reported.
func writeExportFile(path string, format export.Format, records []expense.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := export.Write(f, format, records); err != nil {
		f.Close()
		return fmt.Errorf("exporting: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
