package main

import (
	"fmt"

	"github.com/expense-cli/expense/internal/report"
	"github.com/spf13/cobra"
)

var (
	summaryMarkdown bool
	summaryHTML     bool
	summaryStyle    string
)

func init() {
	summaryCmd.Flags().BoolVar(&summaryMarkdown, "markdown", false, "Print raw markdown instead of rendering it")
	summaryCmd.Flags().BoolVar(&summaryHTML, "html", false, "Print the summary as an HTML fragment")
	summaryCmd.Flags().StringVar(&summaryStyle, "style", "auto", "Glamour style (auto, dark, light, notty, ascii)")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize expenses per category",
	Long: `Show per-category counts and totals in GEL.

Examples:
  expense summary
  expense summary --markdown > summary.md
  expense summary --html > summary.html
  expense summary --json`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	idx := mustOpenIndex()
	defer idx.Close()

	totals, err := idx.Totals()
	if err != nil {
		exitWithError(ExitError, "computing totals: %v", err)
	}
	s := report.Summarize(totals)

	if jsonOutput {
		outputJSON(s)
		return nil
	}

	md := s.Markdown()
	if summaryMarkdown {
		fmt.Print(md)
		return nil
	}

	if summaryHTML {
		out, err := report.HTML(md)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		fmt.Print(out)
		return nil
	}

	out, err := report.Render(md, summaryStyle)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	fmt.Print(out)
	return nil
}
