package expense

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseID converts an id argument to the stored numeric id.
// Surrounding whitespace and leading zeros are accepted, as is an integral
// float form like "123.0". The second return is false when s names no id.
func ParseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// NextID returns the id for a record created at now.
// It is the creation time in milliseconds, bumped past the largest existing id
// so two records created within the same millisecond never share an id.
func NextID(existing []Expense, now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range existing {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// FindIndex returns the index of the first record with the given id.
func FindIndex(records []Expense, id int64) (int, bool) {
	for i, e := range records {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// RemoveID returns records without any entry carrying id, and how many were dropped.
func RemoveID(records []Expense, id int64) ([]Expense, int) {
	kept := make([]Expense, 0, len(records))
	for _, e := range records {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept, len(records) - len(kept)
}
