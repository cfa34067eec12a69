package storage

import (
	"slices"

	"github.com/expense-cli/expense/internal/expense"
)

// Memory is an in-process Store. Records are copied on the way in and out
// so callers cannot alias the stored slice.
type Memory struct {
	records []expense.Expense
	saves   int
	loadErr error
}

// NewMemory returns a memory store seeded with records.
func NewMemory(records ...expense.Expense) *Memory {
	return &Memory{records: slices.Clone(records)}
}

// Load returns a copy of the stored records.
func (m *Memory) Load() ([]expense.Expense, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := slices.Clone(m.records)
	if out == nil {
		out = []expense.Expense{}
	}
	return out, nil
}

// Save replaces the stored records.
func (m *Memory) Save(records []expense.Expense) error {
	m.records = slices.Clone(records)
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int {
	return m.saves
}

// FailLoad makes every subsequent Load return err.
func (m *Memory) FailLoad(err error) {
	m.loadErr = err
}
