// Package export writes the expense collection to interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/expense-cli/expense/internal/storage"
)

// Format names an export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatCSV, FormatJSON}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Formats {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format: %s (valid: csv, json)", s)
}

// csvHeader is the CSV column order, matching the persisted key order.
var csvHeader = []string{"id", "category", "price", "description", "date"}

// Write encodes records to w in the given format.
func Write(w io.Writer, f Format, records []expense.Expense) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		data, err := storage.Encode(records)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown export format: %s", f)
	}
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []expense.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range records {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Category,
			expense.FormatPrice(e.Price),
			e.Description,
			e.Date,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
