package expense

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "integer", input: "25", want: 25},
		{name: "fraction", input: "25.5", want: 25.5},
		{name: "exactly minimum", input: "10", want: 10},
		{name: "surrounding whitespace", input: " 12.75 ", want: 12.75},
		{name: "below minimum", input: "5", wantErr: ErrBelowMinimum},
		{name: "just below minimum", input: "9.99", wantErr: ErrBelowMinimum},
		{name: "negative", input: "-20", wantErr: ErrBelowMinimum},
		{name: "not a number", input: "abc", wantErr: ErrInvalidPrice},
		{name: "empty", input: "", wantErr: ErrInvalidPrice},
		{name: "overflows float", input: "1e400", wantErr: ErrInvalidPrice},
		{name: "large but finite", input: "1e300", want: 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePrice(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParsePrice(%q) error type = %T, want *ValidationError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePrice_MinimumMessage(t *testing.T) {
	_, err := ParsePrice("5")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Minimum expense amount is 10 GEL." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{25, "25"},
		{25.5, "25.5"},
		{10.1, "10.1"},
		{1000, "1000"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 123456789, time.FixedZone("UTC+4", 4*3600))
	got := FormatDate(ts)
	want := "2024-03-05T10:07:09.123Z"
	if got != want {
		t.Errorf("FormatDate() = %q, want %q", got, want)
	}

	parsed, err := ParseDate(got)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", got, err)
	}
	if !parsed.Equal(ts.Truncate(time.Millisecond)) {
		t.Errorf("ParseDate round trip = %v, want %v", parsed, ts.Truncate(time.Millisecond))
	}
}

func TestLine(t *testing.T) {
	e := Expense{
		ID:          1700000000000,
		Category:    "Food",
		Price:       25,
		Description: "lunch",
		Date:        "2024-01-02T03:04:05.000Z",
	}
	want := "ID: 1700000000000, Category: Food, Price: 25 GEL, Date: 2024-01-02T03:04:05.000Z, Description: lunch"
	if got := e.Line(); got != want {
		t.Errorf("Line() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	e, err := New(42, "Food", 25, "", now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.ID != 42 || e.Category != "Food" || e.Price != 25 || e.Description != "" {
		t.Errorf("New() = %+v", e)
	}
	if e.Date != "2024-01-02T03:04:05.000Z" {
		t.Errorf("Date = %q", e.Date)
	}

	if _, err := New(43, "  ", 25, "", now); !errors.Is(err, ErrEmptyCategory) {
		t.Errorf("New with blank category error = %v, want ErrEmptyCategory", err)
	}
}

func TestValidate(t *testing.T) {
	good := Expense{ID: 1, Category: "Food", Price: 10, Date: "2024-01-02T03:04:05.000Z"}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate(good): %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Expense)
	}{
		{"zero id", func(e *Expense) { e.ID = 0 }},
		{"empty category", func(e *Expense) { e.Category = "" }},
		{"blank category", func(e *Expense) { e.Category = "  " }},
		{"low price", func(e *Expense) { e.Price = 9.5 }},
		{"infinite price", func(e *Expense) { e.Price = math.Inf(1) }},
		{"bad date", func(e *Expense) { e.Date = "yesterday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := good
			tt.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
