package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceFilter holds the applied price bounds. A nil bound means "no bound".
// Both bounds are inclusive and are compared against the display price for
// the active tax mode.
type PriceFilter struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// Accepted magnitude of a price bound. Exponent notation outside this range
// would make every later comparison rescale to a huge integer.
const (
	minBoundExponent  = -12
	maxBoundExponent  = 12
	maxBoundNumDigits = 24
)

// ParsePriceBound converts raw user input into a bound. Blank, non-numeric,
// negative and out-of-range input all yield nil rather than an error.
func ParsePriceBound(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return nil
	}
	if exp := v.Exponent(); exp < minBoundExponent || exp > maxBoundExponent || v.NumDigits() > maxBoundNumDigits {
		return nil
	}
	return &v
}

// ParsePriceFilter parses both raw inputs independently.
func ParsePriceFilter(rawMin, rawMax string) PriceFilter {
	return PriceFilter{Min: ParsePriceBound(rawMin), Max: ParsePriceBound(rawMax)}
}

// IsEmpty reports whether neither bound is set.
func (f PriceFilter) IsEmpty() bool {
	return f.Min == nil && f.Max == nil
}

// Matches reports whether price lies within the bounds.
func (f PriceFilter) Matches(price decimal.Decimal) bool {
	if f.Min != nil && price.LessThan(*f.Min) {
		return false
	}
	if f.Max != nil && price.GreaterThan(*f.Max) {
		return false
	}
	return true
}

// VisibleOfferings returns the offerings whose display price passes the
// filter, keeping the order of base. Forbidden offerings never pass.
func VisibleOfferings(base []Offering, mode TaxMode, filter PriceFilter) []Offering {
	visible := make([]Offering, 0, len(base))
	for _, o := range base {
		if o.Forbidden {
			continue
		}
		if filter.Matches(o.DisplayPrice(mode)) {
			visible = append(visible, o)
		}
	}
	return visible
}

// AvailableOfferings drops forbidden offerings from a fetched list.
func AvailableOfferings(fetched []Offering) []Offering {
	out := make([]Offering, 0, len(fetched))
	for _, o := range fetched {
		if !o.Forbidden {
			out = append(out, o)
		}
	}
	return out
}
