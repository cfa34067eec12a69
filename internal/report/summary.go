// Package report builds the category summary shown by the summary command.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/expense-cli/expense/internal/expense"
	"github.com/expense-cli/expense/internal/storage"
)

// CategoryLine is one row of the summary.
type CategoryLine struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Share    decimal.Decimal `json:"share"` // percent of the grand total
}

// Summary aggregates expenses per category.
type Summary struct {
	Currency   string          `json:"currency"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryLine  `json:"categories"`
}

// Summarize turns index aggregates into a summary. Amounts are rounded to
// the currency's minor unit so float sums from SQLite don't leak noise.
func Summarize(totals []storage.CategoryTotal) Summary {
	s := Summary{Currency: expense.Currency, Categories: []CategoryLine{}}

	for _, t := range totals {
		line := CategoryLine{
			Category: t.Category,
			Count:    t.Count,
			Total:    decimal.NewFromFloat(t.Total).Round(2),
			Min:      decimal.NewFromFloat(t.Min),
			Max:      decimal.NewFromFloat(t.Max),
		}
		s.Count += t.Count
		s.Total = s.Total.Add(line.Total)
		s.Categories = append(s.Categories, line)
	}

	if s.Total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range s.Categories {
			s.Categories[i].Share = s.Categories[i].Total.Mul(hundred).Div(s.Total).Round(1)
		}
	}
	return s
}

// FormatMoney formats an amount in the summary currency, e.g. "1,234.50 ლ".
func FormatMoney(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	fraction := int32(2)
	if cur != nil {
		fraction = int32(cur.Fraction)
	}
	return money.New(d.Shift(fraction).Round(0).IntPart(), currency).Display()
}

// Markdown renders the summary as a markdown document with one table.
func (s Summary) Markdown() string {
	var b strings.Builder

	b.WriteString("# Expense Summary\n\n")
	if s.Count == 0 {
		b.WriteString("No expenses found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d expenses, total **%s**\n\n", s.Count, FormatMoney(s.Total, s.Currency))
	b.WriteString("| Category | Count | Total | Min | Max | Share |\n")
	b.WriteString("|:---|---:|---:|---:|---:|---:|\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s%% |\n",
			escapeCell(c.Category),
			c.Count,
			FormatMoney(c.Total, s.Currency),
			FormatMoney(c.Min, s.Currency),
			FormatMoney(c.Max, s.Currency),
			c.Share.StringFixed(1),
		)
	}
	return b.String()
}

// Render renders markdown for the terminal using the named glamour style
// ("dark", "light", "notty", "ascii" ...).
func Render(markdown, style string) (string, error) {
	out, err := glamour.Render(markdown, style)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// HTML converts markdown to an HTML fragment, with GFM tables enabled.
func HTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
