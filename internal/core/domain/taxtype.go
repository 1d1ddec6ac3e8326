package domain

import "errors"

var (
	ErrTaxTypeNotFound  = errors.New("tax type not found")
	ErrDuplicateTaxType = errors.New("tax type already exists")
	ErrInvalidBaseValue = errors.New("base value must be greater than zero")
)

// TaxType is a named, rated tax category. Rate is the display percentage
// (18.0 means 18%); the calculation strategies carry their own fractional
// constants and do not derive from this field.
type TaxType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
}
