package skipapi

import (
	"skip_selector/internal/domain/entities"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// skipPayload mirrors one element of the by-location response.
type skipPayload struct {
	ID               int64            `json:"id"`
	Size             int              `json:"size"`
	HirePeriodDays   int              `json:"hire_period_days"`
	TransportCost    *decimal.Decimal `json:"transport_cost"`
	PerTonneCost     *decimal.Decimal `json:"per_tonne_cost"`
	PriceBeforeVAT   decimal.Decimal  `json:"price_before_vat"`
	VAT              decimal.Decimal  `json:"vat"`
	Postcode         string           `json:"postcode"`
	Area             string           `json:"area"`
	Forbidden        bool             `json:"forbidden"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
	AllowedOnRoad    bool             `json:"allowed_on_road"`
	AllowsHeavyWaste bool             `json:"allows_heavy_waste"`
}

// The listing omits the zone on its timestamps; they are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func (p skipPayload) toEntity() entities.Offering {
	return entities.Offering{
		ID:               p.ID,
		Size:             p.Size,
		HirePeriodDays:   p.HirePeriodDays,
		TransportCost:    p.TransportCost,
		PerTonneCost:     p.PerTonneCost,
		PriceBeforeVAT:   p.PriceBeforeVAT,
		VAT:              p.VAT,
		Postcode:         p.Postcode,
		Area:             p.Area,
		Forbidden:        p.Forbidden,
		AllowedOnRoad:    p.AllowedOnRoad,
		AllowsHeavyWaste: p.AllowsHeavyWaste,
		CreatedAt:        parseTimestamp(p.CreatedAt),
		UpdatedAt:        parseTimestamp(p.UpdatedAt),
	}
}
