// Package storage handles persistence of the expense collection.
//
// The JSON file is the source of truth. It is always read and written whole.
// The SQLite index in index.go is an ephemeral query layer rebuilt from it.
package storage

import (
	"fmt"

	"github.com/expense-cli/expense/internal/expense"
)

// Store loads and saves the full expense collection.
type Store interface {
	// Load returns every record in insertion order. A missing backing file
	// yields an empty collection.
	Load() ([]expense.Expense, error)
	// Save replaces the persisted collection with records.
	Save(records []expense.Expense) error
}

// ParseError reports a data file that exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
