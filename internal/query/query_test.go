package query

import (
	"testing"

	"github.com/expense-cli/expense/internal/expense"
)

func fixture() []expense.Expense {
	return []expense.Expense{
		{ID: 1, Category: "Food", Price: 25, Description: "lunch", Date: "2024-01-01T10:00:00.000Z"},
		{ID: 2, Category: "Rent", Price: 900, Description: "", Date: "2024-01-02T10:00:00.000Z"},
		{ID: 3, Category: "Food", Price: 40, Description: "dinner", Date: "2024-01-03T10:00:00.000Z"},
	}
}

func TestEval_Categories(t *testing.T) {
	got, err := Eval(fixture(), "$[*].category")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	list, ok := got.([]any)
	if !ok {
		t.Fatalf("result type = %T, want []any", got)
	}
	if len(list) != 3 || list[0] != "Food" || list[1] != "Rent" {
		t.Errorf("result = %v", list)
	}
}

func TestEval_Filter(t *testing.T) {
	got, err := Eval(fixture(), "$[?(@.price > 30)].id")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	list, ok := got.([]any)
	if !ok {
		t.Fatalf("result type = %T, want []any", got)
	}
	if len(list) != 2 {
		t.Fatalf("got %d results, want 2: %v", len(list), list)
	}
	seen := map[float64]bool{}
	for _, v := range list {
		seen[v.(float64)] = true
	}
	if !seen[2] || !seen[3] {
		t.Errorf("result ids = %v, want 2 and 3", list)
	}
}

func TestEval_SingleValue(t *testing.T) {
	got, err := Eval(fixture(), "$[0].price")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != float64(25) {
		t.Errorf("result = %v (%T), want 25", got, got)
	}
}

func TestEval_Errors(t *testing.T) {
	for _, path := range []string{"", "category", "$[?(@.price >"} {
		if _, err := Eval(fixture(), path); err == nil {
			t.Errorf("Eval(%q) should fail", path)
		}
	}
}

func TestEval_EmptyCollection(t *testing.T) {
	got, err := Eval(nil, "$[*].id")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if list, _ := got.([]any); len(list) != 0 {
		t.Errorf("result = %v, want empty list", got)
	}
}
