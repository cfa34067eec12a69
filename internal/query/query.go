// Package query evaluates JSONPath expressions over the expense collection.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/expense-cli/expense/internal/expense"
)

// Eval evaluates a JSONPath expression against records, viewed as the JSON
// array persisted on disk. "$" is the array itself.
//
// Examples:
//
//	$[*].category
//	$[?(@.price > 100)]
//	$[?(@.category == "Food")].price
func Eval(records []expense.Expense, path string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty query")
	}
	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("query must start with $: %s", path)
	}

	doc, err := toDocument(records)
	if err != nil {
		return nil, err
	}

	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	return result, nil
}

// toDocument converts records to the generic form jsonpath walks
// ([]any of map[string]any with float64 numbers).
func toDocument(records []expense.Expense) (any, error) {
	if records == nil {
		records = []expense.Expense{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding expenses: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding expenses: %w", err)
	}
	return doc, nil
}
