// Package strategy holds the name-keyed dispatch table for tax computations.
package strategy

import "strings"

// Func computes the tax amount owed on a base value.
type Func func(value float64) float64

// defaultRate applies to tax types without a dedicated strategy.
const defaultRate = 0.10

// table is built once and never mutated. The fractional constants are
// intentionally independent of the rate stored on the TaxType record.
var table = map[string]Func{
	"ICMS": func(v float64) float64 { return v * 0.18 },
	"ISS":  func(v float64) float64 { return v * 0.05 },
	"PIS":  func(v float64) float64 { return v * 0.0165 },
}

// ForName resolves a tax-type name to its computation, case-insensitively.
// Every name resolves: unknown names fall back to the default strategy.
func ForName(name string) Func {
	if f, ok := table[strings.ToUpper(name)]; ok {
		return f
	}
	return func(v float64) float64 { return v * defaultRate }
}
