package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/expense-cli/expense/internal/storage"
)

func TestSummarize(t *testing.T) {
	totals := []storage.CategoryTotal{
		{Category: "Rent", Count: 1, Total: 900, Min: 900, Max: 900},
		{Category: "Food", Count: 2, Total: 65.1 + 34.9, Min: 34.9, Max: 65.1},
	}

	s := Summarize(totals)
	if s.Currency != "GEL" {
		t.Errorf("Currency = %q", s.Currency)
	}
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if !s.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Total = %s, want 1000", s.Total)
	}
	if len(s.Categories) != 2 {
		t.Fatalf("got %d categories", len(s.Categories))
	}
	if !s.Categories[0].Share.Equal(decimal.NewFromInt(90)) {
		t.Errorf("Rent share = %s, want 90", s.Categories[0].Share)
	}
	if !s.Categories[1].Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Food total = %s, want 100", s.Categories[1].Total)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || !s.Total.IsZero() {
		t.Errorf("empty summary = %+v", s)
	}
	if s.Categories == nil {
		t.Error("Categories should be non-nil for JSON output")
	}
	if !strings.Contains(s.Markdown(), "No expenses found.") {
		t.Errorf("Markdown() = %q", s.Markdown())
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(25), "25.00"},
		{decimal.RequireFromString("1234.5"), "1,234.50"},
		{decimal.RequireFromString("10.005"), "10.01"},
	}
	for _, tt := range tests {
		got := FormatMoney(tt.amount, "GEL")
		if !strings.Contains(got, tt.want) {
			t.Errorf("FormatMoney(%s) = %q, want it to contain %q", tt.amount, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	s := Summarize([]storage.CategoryTotal{
		{Category: "Food|Drink", Count: 2, Total: 50, Min: 20, Max: 30},
	})
	md := s.Markdown()

	for _, want := range []string{
		"# Expense Summary",
		"2 expenses",
		"| Category | Count | Total | Min | Max | Share |",
		`Food\|Drink`,
		"50.00",
		"100.0%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}

func TestRender(t *testing.T) {
	s := Summarize([]storage.CategoryTotal{
		{Category: "Food", Count: 1, Total: 25, Min: 25, Max: 25},
	})
	out, err := Render(s.Markdown(), "notty")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Expense Summary") || !strings.Contains(out, "Food") {
		t.Errorf("rendered output missing content:\n%s", out)
	}
}

func TestHTML(t *testing.T) {
	s := Summarize([]storage.CategoryTotal{
		{Category: "Food", Count: 1, Total: 25, Min: 25, Max: 25},
	})
	out, err := HTML(s.Markdown())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{"<h1>Expense Summary</h1>", "<table>", ">Food</td>"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML() missing %q:\n%s", want, out)
		}
	}
}
