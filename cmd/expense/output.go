package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/expense-cli/expense/internal/storage"
	"github.com/expense-cli/expense/internal/tracker"
)

// Human-readable messages.
const (
	msgNoExpenses = "No expenses found."
	msgNotFound   = "Expense not found."
	msgAdded      = "Expense added successfully:"
	msgUpdated    = "Expense updated successfully:"
	msgDeleted    = "Expense deleted successfully."
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(code)
}

// exitWithMessage is exitWithError without the "Error:" prefix in human mode.
func exitWithMessage(code int, msg string) {
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(code)
}

// exitWithOpError maps an operation error to its message and exit code.
func exitWithOpError(err error) {
	var verr *expense.ValidationError
	var perr *storage.ParseError
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		exitWithMessage(ExitNotFound, msgNotFound)
	case errors.As(err, &verr):
		exitWithError(ExitDataError, "%s", verr.Message)
	case errors.As(err, &perr):
		exitWithError(ExitDataError, "%v", perr)
	default:
		exitWithError(ExitError, "%v", err)
	}
}

// printExpenseLines prints one line per expense, as show and price do.
func printExpenseLines(records []expense.Expense) {
	for _, e := range records {
		fmt.Println(e.Line())
	}
}

// printExpenseDetail prints a single expense as a labelled block.
func printExpenseDetail(e expense.Expense) {
	fmt.Printf("ID:          %d\n", e.ID)
	fmt.Printf("Category:    %s\n", e.Category)
	fmt.Printf("Price:       %s %s\n", expense.FormatPrice(e.Price), expense.Currency)
	fmt.Printf("Date:        %s\n", e.Date)
	fmt.Printf("Description: %s\n", e.Description)
}

// outputExpenses writes a listing as JSON, or as lines in human mode.
func outputExpenses(records []expense.Expense) {
	if jsonOutput {
		if records == nil {
			records = []expense.Expense{}
		}
		outputJSON(records)
		return
	}
	printExpenseLines(records)
}
