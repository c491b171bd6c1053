package repository

import (
	"testing"
	"time"

	"skip_selector/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/shopspring/decimal"
)

func TestSessionItemMapping(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := testSession("sess-1", now)
	transport := decimal.RequireFromString("236.5")
	s.Offerings[0].TransportCost = &transport
	s.Select(1, now)
	s.ApplyPriceFilter("", "300", now)
	s.ToggleTaxMode(now)

	av, err := attributevalue.MarshalMap(toSessionItem(s, now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["min_price"]; ok {
		t.Fatalf("absent bound must not be stored")
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.ExpiresAt != now.Add(time.Hour).Unix() {
		t.Fatalf("unexpected expiry %d", it.ExpiresAt)
	}

	got, err := fromSessionItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "sess-1" || got.Location.Label() != "NR32, Lowestoft" || got.Status != entities.FetchStatusSuccess {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.TaxMode != entities.TaxModeExcludeVAT || !got.IsSelected(1) {
		t.Fatalf("unexpected mode or selection: %+v", got)
	}
	if got.AppliedMinPrice != nil || got.AppliedMaxPrice == nil || !got.AppliedMaxPrice.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected bounds: %v %v", got.AppliedMinPrice, got.AppliedMaxPrice)
	}
	o := got.Offerings[0]
	if o.TransportCost == nil || !o.TransportCost.Equal(transport) || o.PerTonneCost != nil {
		t.Fatalf("unexpected optional costs: %+v", o)
	}
	if !o.GrossPrice().Equal(decimal.NewFromInt(240)) {
		t.Fatalf("unexpected price %s", o.GrossPrice())
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected updated_at %s", got.UpdatedAt)
	}
}

func TestFromSessionItem_UnknownTaxModeFallsBack(t *testing.T) {
	got, err := fromSessionItem(sessionItem{ID: "sess-1", TaxMode: "bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TaxMode != entities.TaxModeIncludeVAT {
		t.Fatalf("expected include VAT fallback, got %s", got.TaxMode)
	}
}

func TestFromSessionItem_CorruptPrice(t *testing.T) {
	cases := []struct {
		name string
		item offeringItem
	}{
		{name: "price", item: offeringItem{ID: 7, PriceBeforeVAT: "abc", VAT: "40"}},
		{name: "vat", item: offeringItem{ID: 7, PriceBeforeVAT: "200", VAT: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fromSessionItem(sessionItem{ID: "sess-1", Offerings: []offeringItem{tc.item}})
			if err == nil {
				t.Fatalf("expected decode error")
			}
			if got.ID != "" {
				t.Fatalf("expected zero session, got %+v", got)
			}
		})
	}
}
