package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaxMode controls whether displayed prices include VAT.
type TaxMode string

const (
	TaxModeIncludeVAT TaxMode = "include_vat"
	TaxModeExcludeVAT TaxMode = "exclude_vat"
)

// DefaultTaxMode is the mode a new booking session starts in.
const DefaultTaxMode = TaxModeIncludeVAT

// Toggle returns the opposite mode.
func (m TaxMode) Toggle() TaxMode {
	if m == TaxModeExcludeVAT {
		return TaxModeIncludeVAT
	}
	return TaxModeExcludeVAT
}

// Label is the text shown on the price display toggle.
func (m TaxMode) Label() string {
	if m == TaxModeExcludeVAT {
		return "Price Excludes VAT"
	}
	return "Price Includes VAT"
}

// Short is the abbreviated suffix used next to a single price ("inc." / "ex.").
func (m TaxMode) Short() string {
	if m == TaxModeExcludeVAT {
		return "ex."
	}
	return "inc."
}

// Offering is a single skip size/price option returned by the skip listing
// endpoint for a location. It is never mutated after it has been fetched.
//
// Monetary representation:
//   - PriceBeforeVAT + VAT is the gross price.
//   - TransportCost and PerTonneCost are informational and may be absent.
type Offering struct {
	ID               int64            `json:"id"`
	Size             int              `json:"size"`
	HirePeriodDays   int              `json:"hire_period_days"`
	TransportCost    *decimal.Decimal `json:"transport_cost,omitempty"`
	PerTonneCost     *decimal.Decimal `json:"per_tonne_cost,omitempty"`
	PriceBeforeVAT   decimal.Decimal  `json:"price_before_vat"`
	VAT              decimal.Decimal  `json:"vat"`
	Postcode         string           `json:"postcode"`
	Area             string           `json:"area"`
	Forbidden        bool             `json:"forbidden"`
	AllowedOnRoad    bool             `json:"allowed_on_road"`
	AllowsHeavyWaste bool             `json:"allows_heavy_waste"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsRestricted reports whether the skip can neither go on a road nor take
// heavy waste. Restricted offerings are shown but cannot be chosen.
func (o Offering) IsRestricted() bool {
	return !o.AllowedOnRoad && !o.AllowsHeavyWaste
}

// IsSelectable reports whether the offering may become the session selection.
func (o Offering) IsSelectable() bool {
	return !o.Forbidden && !o.IsRestricted()
}

// IsPopular marks the 4 yard skip, as long as it can be chosen.
func (o Offering) IsPopular() bool {
	return o.IsSelectable() && o.Size == 4
}

// GrossPrice is PriceBeforeVAT + VAT.
func (o Offering) GrossPrice() decimal.Decimal {
	return o.PriceBeforeVAT.Add(o.VAT)
}

// DisplayPrice returns the price shown under the given tax mode.
func (o Offering) DisplayPrice(mode TaxMode) decimal.Decimal {
	if mode == TaxModeIncludeVAT {
		return o.GrossPrice()
	}
	return o.PriceBeforeVAT
}

// Title is the card heading, e.g. "4 Yards".
func (o Offering) Title() string {
	return fmt.Sprintf("%d Yards", o.Size)
}

// Description is the short use-case hint for the skip size.
func (o Offering) Description() string {
	switch {
	case o.Size <= 2:
		return "Small gardens & DIY"
	case o.Size <= 4:
		return "Home renovations"
	case o.Size <= 8:
		return "Large projects"
	default:
		return "Commercial work"
	}
}

// PriceBreakdown explains how the displayed price relates to VAT.
func (o Offering) PriceBreakdown(mode TaxMode) string {
	if mode == TaxModeIncludeVAT {
		return fmt.Sprintf("inc. VAT (%s + %s VAT)", FormatPounds(o.PriceBeforeVAT), FormatPounds(o.VAT))
	}
	return fmt.Sprintf("ex. VAT (VAT: %s)", FormatPounds(o.VAT))
}

// FormatPounds renders an amount as "£12.30".
func FormatPounds(v decimal.Decimal) string {
	return "£" + v.StringFixed(2)
}
