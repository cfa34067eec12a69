// Package tracker implements the expense operations over an injected Store.
//
// Every operation loads the full collection, validates, optionally mutates
// and saves the full collection back. Nothing is saved when validation fails.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/expense-cli/expense/internal/log"
	"github.com/expense-cli/expense/internal/storage"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("expense not found")

// Tracker runs expense operations against a Store.
type Tracker struct {
	store storage.Store
	now   func() time.Time
	log   *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the time source used for ids and dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) {
		t.log = l.WithComponent(log.ComponentTracker)
	}
}

// New creates a Tracker over store.
func New(store storage.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		log:   log.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddInput holds the arguments of the add operation.
type AddInput struct {
	Category    string
	Price       string
	Description string
}

// Add validates the input, appends a new record and saves.
// Price is checked before the store is touched.
func (t *Tracker) Add(in AddInput) (expense.Expense, error) {
	price, err := expense.ParsePrice(in.Price)
	if err != nil {
		t.log.Debug("rejected add", log.FieldPrice, in.Price, log.FieldError, err)
		return expense.Expense{}, err
	}

	records, err := t.store.Load()
	if err != nil {
		return expense.Expense{}, err
	}

	now := t.now()
	e, err := expense.New(expense.NextID(records, now), in.Category, price, in.Description, now)
	if err != nil {
		return expense.Expense{}, err
	}
	if err := e.Validate(); err != nil {
		return expense.Expense{}, fmt.Errorf("building expense: %w", err)
	}

	records = append(records, e)
	if err := t.store.Save(records); err != nil {
		return expense.Expense{}, fmt.Errorf("saving expenses: %w", err)
	}

	t.log.Debug("added expense", log.FieldID, e.ID, log.FieldCategory, e.Category, log.FieldCount, len(records))
	return e, nil
}

// Show returns all records sorted by date in the given order.
func (t *Tracker) Show(order expense.Order) ([]expense.Expense, error) {
	records, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	expense.SortByDate(records, order)
	return records, nil
}

// ByPrice returns all records sorted by price in the given order.
func (t *Tracker) ByPrice(order expense.Order) ([]expense.Expense, error) {
	records, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	expense.SortByPrice(records, order)
	return records, nil
}

// Get returns the first record whose id matches idArg.
func (t *Tracker) Get(idArg string) (expense.Expense, error) {
	records, err := t.store.Load()
	if err != nil {
		return expense.Expense{}, err
	}

	id, ok := expense.ParseID(idArg)
	if !ok {
		return expense.Expense{}, ErrNotFound
	}
	i, found := expense.FindIndex(records, id)
	if !found {
		return expense.Expense{}, ErrNotFound
	}
	return records[i], nil
}

// Update merges patch onto the first record whose id matches idArg and saves.
// Unsupplied fields keep their values; id and date never change.
func (t *Tracker) Update(idArg string, patch expense.Patch) (expense.Expense, error) {
	records, err := t.store.Load()
	if err != nil {
		return expense.Expense{}, err
	}

	id, ok := expense.ParseID(idArg)
	if !ok {
		return expense.Expense{}, ErrNotFound
	}
	i, found := expense.FindIndex(records, id)
	if !found {
		return expense.Expense{}, ErrNotFound
	}

	l := t.log.With(log.FieldID, id)
	updated, err := patch.Apply(records[i])
	if err != nil {
		l.Debug("rejected update", log.FieldError, err)
		return expense.Expense{}, err
	}
	records[i] = updated

	if err := t.store.Save(records); err != nil {
		return expense.Expense{}, fmt.Errorf("saving expenses: %w", err)
	}

	l.Debug("updated expense", log.FieldCategory, updated.Category)
	return updated, nil
}

// Delete removes every record whose id matches idArg and saves, even when
// nothing matched. Returns how many records were removed.
func (t *Tracker) Delete(idArg string) (int, error) {
	records, err := t.store.Load()
	if err != nil {
		return 0, err
	}

	removed := 0
	if id, ok := expense.ParseID(idArg); ok {
		records, removed = expense.RemoveID(records, id)
	}

	if err := t.store.Save(records); err != nil {
		return 0, fmt.Errorf("saving expenses: %w", err)
	}

	t.log.Debug("deleted expenses", log.FieldID, idArg, log.FieldCount, removed)
	return removed, nil
}

// All returns the collection in stored order.
func (t *Tracker) All() ([]expense.Expense, error) {
	return t.store.Load()
}
