package expense

import "strings"

// Patch holds the fields an update may change. Nil fields are left alone.
// Price is the raw argument and is parsed and checked by Apply.
type Patch struct {
	Category    *string
	Price       *string
	Description *string
}

// Apply merges the patch onto e field by field. ID and Date are never touched.
func (p Patch) Apply(e Expense) (Expense, error) {
	if p.Price != nil {
		price, err := ParsePrice(*p.Price)
		if err != nil {
			return e, err
		}
		e.Price = price
	}
	if p.Category != nil {
		if strings.TrimSpace(*p.Category) == "" {
			return e, &ValidationError{Field: "category", Message: "Category is required.", Err: ErrEmptyCategory}
		}
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	return e, nil
}
