package expense

import (
	"cmp"
	"slices"
)

// Order selects how a listing is sorted.
type Order int

const (
	Unsorted Order = iota
	Ascending
	Descending
)

// OrderFromFlags maps the --asc/--desc flags to an Order. asc wins when both are set.
func OrderFromFlags(asc, desc bool) Order {
	switch {
	case asc:
		return Ascending
	case desc:
		return Descending
	default:
		return Unsorted
	}
}

func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// SortByDate sorts records in place by creation date.
// Dates are compared chronologically; unparseable dates fall back to string order.
func SortByDate(records []Expense, o Order) {
	sortBy(records, o, compareDate)
}

// SortByPrice sorts records in place by numeric price.
func SortByPrice(records []Expense, o Order) {
	sortBy(records, o, func(a, b Expense) int {
		return cmp.Compare(a.Price, b.Price)
	})
}

func sortBy(records []Expense, o Order, compare func(a, b Expense) int) {
	switch o {
	case Ascending:
		slices.SortStableFunc(records, compare)
	case Descending:
		slices.SortStableFunc(records, func(a, b Expense) int { return compare(b, a) })
	}
}

func compareDate(a, b Expense) int {
	ta, errA := ParseDate(a.Date)
	tb, errB := ParseDate(b.Date)
	if errA != nil || errB != nil {
		return cmp.Compare(a.Date, b.Date)
	}
	return ta.Compare(tb)
}
