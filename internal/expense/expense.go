// Package expense defines the expense record and the rules that govern it.
package expense

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinPrice is the smallest amount accepted for an expense.
	MinPrice = 10

	// Currency is the currency every price is recorded in.
	Currency = "GEL"

	// DateLayout is the ISO-8601 layout used for the date field (UTC, millisecond precision).
	DateLayout = "2006-01-02T15:04:05.000Z"
)

// Expense is a single recorded expense.
// Field order matches the persisted JSON key order.
type Expense struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// Sentinel causes carried by ValidationError.
var (
	ErrBelowMinimum  = errors.New("price below minimum")
	ErrInvalidPrice  = errors.New("price is not a number")
	ErrEmptyCategory = errors.New("category is empty")
)

// ValidationError reports input that breaks an expense rule.
// Message is the user-facing text; Err is one of the sentinel causes above.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var minimumMessage = fmt.Sprintf("Minimum expense amount is %d %s.", MinPrice, Currency)

// ParsePrice parses a price argument and enforces the minimum amount.
func ParsePrice(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, &ValidationError{Field: "price", Message: fmt.Sprintf("Invalid price: %q.", s), Err: ErrInvalidPrice}
	}
	if d.LessThan(decimal.NewFromInt(MinPrice)) {
		return 0, &ValidationError{Field: "price", Message: minimumMessage, Err: ErrBelowMinimum}
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, &ValidationError{Field: "price", Message: fmt.Sprintf("Invalid price: %q.", s), Err: ErrInvalidPrice}
	}
	return f, nil
}

// FormatPrice returns the shortest decimal form of a price (25, 25.5).
func FormatPrice(p float64) string {
	return decimal.NewFromFloat(p).String()
}

// FormatDate formats t as the persisted ISO-8601 date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a persisted date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// Line renders the expense as the one-line listing used by show and price.
func (e Expense) Line() string {
	return fmt.Sprintf("ID: %d, Category: %s, Price: %s %s, Date: %s, Description: %s",
		e.ID, e.Category, FormatPrice(e.Price), Currency, e.Date, e.Description)
}

// Validate checks that a record satisfies the persisted-record invariants.
func (e Expense) Validate() error {
	if e.ID == 0 {
		return fmt.Errorf("expense has no id")
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("expense %d: category is required", e.ID)
	}
	if e.Price < MinPrice || math.IsInf(e.Price, 0) || math.IsNaN(e.Price) {
		return fmt.Errorf("expense %d: price %v is out of range", e.ID, e.Price)
	}
	if _, err := ParseDate(e.Date); err != nil {
		return fmt.Errorf("expense %d: invalid date %q", e.ID, e.Date)
	}
	return nil
}

// New builds an expense created at now. The id must come from NextID.
func New(id int64, category string, price float64, description string, now time.Time) (Expense, error) {
	if strings.TrimSpace(category) == "" {
		return Expense{}, &ValidationError{Field: "category", Message: "Category is required.", Err: ErrEmptyCategory}
	}
	return Expense{
		ID:          id,
		Category:    category,
		Price:       price,
		Description: description,
		Date:        FormatDate(now),
	}, nil
}
