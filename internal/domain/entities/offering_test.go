package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOffering_IsRestricted(t *testing.T) {
	cases := []struct {
		road, heavy bool
		want        bool
	}{
		{road: true, heavy: true, want: false},
		{road: true, heavy: false, want: false},
		{road: false, heavy: true, want: false},
		{road: false, heavy: false, want: true},
	}
	for _, tc := range cases {
		o := Offering{AllowedOnRoad: tc.road, AllowsHeavyWaste: tc.heavy}
		if got := o.IsRestricted(); got != tc.want {
			t.Fatalf("road=%v heavy=%v: expected %v, got %v", tc.road, tc.heavy, tc.want, got)
		}
	}
}

func TestOffering_IsSelectable(t *testing.T) {
	t.Run("plain offering", func(t *testing.T) {
		o := Offering{AllowedOnRoad: true}
		if !o.IsSelectable() {
			t.Fatalf("expected selectable")
		}
	})

	t.Run("restricted", func(t *testing.T) {
		o := Offering{}
		if o.IsSelectable() {
			t.Fatalf("restricted offering must not be selectable")
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		o := Offering{AllowedOnRoad: true, AllowsHeavyWaste: true, Forbidden: true}
		if o.IsSelectable() {
			t.Fatalf("forbidden offering must not be selectable")
		}
		if o.IsRestricted() {
			t.Fatalf("forbidden does not imply restricted")
		}
	})
}

func TestOffering_DisplayPrice(t *testing.T) {
	offerings := []Offering{
		{PriceBeforeVAT: decimal.NewFromInt(200), VAT: decimal.NewFromInt(40)},
		{PriceBeforeVAT: decimal.RequireFromString("278.10"), VAT: decimal.RequireFromString("55.62")},
		{PriceBeforeVAT: decimal.Zero, VAT: decimal.Zero},
		{PriceBeforeVAT: decimal.RequireFromString("0.1"), VAT: decimal.RequireFromString("0.2")},
	}
	for _, o := range offerings {
		inc := o.DisplayPrice(TaxModeIncludeVAT)
		exc := o.DisplayPrice(TaxModeExcludeVAT)
		if !inc.Equal(exc.Add(o.VAT)) {
			t.Fatalf("expected %s == %s + %s", inc, exc, o.VAT)
		}
		if !exc.Equal(o.PriceBeforeVAT) {
			t.Fatalf("expected ex-VAT price %s, got %s", o.PriceBeforeVAT, exc)
		}
	}

	o := Offering{PriceBeforeVAT: decimal.RequireFromString("0.1"), VAT: decimal.RequireFromString("0.2")}
	if got := o.DisplayPrice(TaxModeIncludeVAT).String(); got != "0.3" {
		t.Fatalf("expected exact 0.3, got %s", got)
	}
}

func TestOffering_IsPopular(t *testing.T) {
	if !(Offering{Size: 4, AllowedOnRoad: true}).IsPopular() {
		t.Fatalf("expected 4 yard skip to be popular")
	}
	if (Offering{Size: 4}).IsPopular() {
		t.Fatalf("restricted skip can't be popular")
	}
	if (Offering{Size: 6, AllowedOnRoad: true}).IsPopular() {
		t.Fatalf("only the 4 yard skip is popular")
	}
}

func TestOffering_Description(t *testing.T) {
	cases := map[int]string{
		2:  "Small gardens & DIY",
		3:  "Home renovations",
		4:  "Home renovations",
		8:  "Large projects",
		12: "Commercial work",
		40: "Commercial work",
	}
	for size, want := range cases {
		if got := (Offering{Size: size}).Description(); got != want {
			t.Fatalf("size %d: expected %q, got %q", size, want, got)
		}
	}
}

func TestOffering_PriceBreakdown(t *testing.T) {
	o := Offering{PriceBeforeVAT: decimal.NewFromInt(200), VAT: decimal.NewFromInt(40)}
	if got := o.PriceBreakdown(TaxModeIncludeVAT); got != "inc. VAT (£200.00 + £40.00 VAT)" {
		t.Fatalf("unexpected breakdown: %q", got)
	}
	if got := o.PriceBreakdown(TaxModeExcludeVAT); got != "ex. VAT (VAT: £40.00)" {
		t.Fatalf("unexpected breakdown: %q", got)
	}
}

func TestTaxMode_Toggle(t *testing.T) {
	if TaxModeIncludeVAT.Toggle() != TaxModeExcludeVAT {
		t.Fatalf("expected exclude")
	}
	if TaxModeExcludeVAT.Toggle() != TaxModeIncludeVAT {
		t.Fatalf("expected include")
	}
	if TaxModeIncludeVAT.Label() != "Price Includes VAT" || TaxModeExcludeVAT.Label() != "Price Excludes VAT" {
		t.Fatalf("unexpected labels")
	}
}
