package response

import (
	"fmt"
	"skip_selector/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EmptyFilterHint       = "No skips match your current filters."
	EmptyFilterSuggestion = "Try adjusting the price range or VAT inclusion."
	RestrictionNotice     = "Not for road & heavy waste."
	NextStepPermitCheck   = "permit_check"
	NextStepActionLabel   = "Continue to Permit Check"
	currentProgressStep   = 3
	progressStatusDone    = "completed"
	progressStatusActive  = "active"
	progressStatusToDo    = "pending"
)

var progressLabels = []string{"Postcode", "Waste Type", "Skip Size", "Permit", "Date", "Payment"}

type OfferingResponse struct {
	ID                int64   `json:"id"`
	Size              int     `json:"size"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	HirePeriodDays    int     `json:"hire_period_days"`
	PriceBeforeVAT    string  `json:"price_before_vat"`
	VAT               string  `json:"vat"`
	DisplayPrice      string  `json:"display_price"`
	DisplayPriceLabel string  `json:"display_price_label"`
	PriceBreakdown    string  `json:"price_breakdown"`
	TransportCost     *string `json:"transport_cost,omitempty"`
	PerTonneCost      *string `json:"per_tonne_cost,omitempty"`
	AllowedOnRoad     bool    `json:"allowed_on_road"`
	AllowsHeavyWaste  bool    `json:"allows_heavy_waste"`
	RoadBadge         string  `json:"road_badge"`
	HeavyWasteBadge   string  `json:"heavy_waste_badge"`
	Restricted        bool    `json:"restricted"`
	RestrictionNotice string  `json:"restriction_notice,omitempty"`
	Selectable        bool    `json:"selectable"`
	Popular           bool    `json:"popular"`
	Selected          bool    `json:"selected"`
}

type SelectedOfferingResponse struct {
	OfferingID   int64  `json:"offering_id"`
	DisplayPrice string `json:"display_price"`
	Summary      string `json:"summary"`
}

type ProgressStepResponse struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

type SkipPageResponse struct {
	SessionID        string                    `json:"session_id"`
	Status           string                    `json:"status"`
	FailureMessage   string                    `json:"failure_message,omitempty"`
	TaxMode          string                    `json:"tax_mode"`
	TaxModeLabel     string                    `json:"tax_mode_label"`
	MinPrice         *string                   `json:"min_price,omitempty"`
	MaxPrice         *string                   `json:"max_price,omitempty"`
	HasPriceFilter   bool                      `json:"has_price_filter"`
	HirePeriodDays   int                       `json:"hire_period_days"`
	Location         string                    `json:"location"`
	WasteType        string                    `json:"waste_type"`
	WasteDescription string                    `json:"waste_description"`
	Offerings        []OfferingResponse        `json:"offerings"`
	VisibleCount     int                       `json:"visible_count"`
	TotalCount       int                       `json:"total_count"`
	EmptyHint        string                    `json:"empty_hint,omitempty"`
	EmptySuggestion  string                    `json:"empty_suggestion,omitempty"`
	Selected         *SelectedOfferingResponse `json:"selected,omitempty"`
	CanContinue      bool                      `json:"can_continue"`
	NextStep         string                    `json:"next_step"`
	NextStepLabel    string                    `json:"next_step_label"`
	Progress         []ProgressStepResponse    `json:"progress"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// WasteInfo describes the waste type chosen in the previous step.
type WasteInfo struct {
	Type        string
	Description string
}

func FromOffering(o entities.Offering, mode entities.TaxMode, selected bool) OfferingResponse {
	price := o.DisplayPrice(mode)
	res := OfferingResponse{
		ID:                o.ID,
		Size:              o.Size,
		Title:             o.Title(),
		Description:       o.Description(),
		HirePeriodDays:    o.HirePeriodDays,
		PriceBeforeVAT:    o.PriceBeforeVAT.StringFixed(2),
		VAT:               o.VAT.StringFixed(2),
		DisplayPrice:      price.StringFixed(2),
		DisplayPriceLabel: entities.FormatPounds(price),
		PriceBreakdown:    o.PriceBreakdown(mode),
		TransportCost:     optionalAmount(o.TransportCost),
		PerTonneCost:      optionalAmount(o.PerTonneCost),
		AllowedOnRoad:     o.AllowedOnRoad,
		AllowsHeavyWaste:  o.AllowsHeavyWaste,
		RoadBadge:         "No Road",
		HeavyWasteBadge:   "Light Only",
		Restricted:        o.IsRestricted(),
		Selectable:        o.IsSelectable(),
		Popular:           o.IsPopular(),
		Selected:          selected && o.IsSelectable(),
	}
	if o.AllowedOnRoad {
		res.RoadBadge = "Road OK"
	}
	if o.AllowsHeavyWaste {
		res.HeavyWasteBadge = "Heavy OK"
	}
	if res.Restricted {
		res.RestrictionNotice = RestrictionNotice
	}
	return res
}

// FromBookingSession renders the whole skip selection page for a session.
// While loading or after a failure the offering list is empty.
func FromBookingSession(s entities.BookingSession, waste WasteInfo) SkipPageResponse {
	res := SkipPageResponse{
		SessionID:        s.ID,
		Status:           string(s.Status),
		FailureMessage:   s.FailureReason,
		TaxMode:          string(s.TaxMode),
		TaxModeLabel:     s.TaxMode.Label(),
		MinPrice:         optionalAmount(s.AppliedMinPrice),
		MaxPrice:         optionalAmount(s.AppliedMaxPrice),
		HasPriceFilter:   s.HasPriceFilter(),
		HirePeriodDays:   s.HirePeriodDays(),
		Location:         s.Location.Label(),
		WasteType:        waste.Type,
		WasteDescription: waste.Description,
		Offerings:        []OfferingResponse{},
		CanContinue:      s.CanContinue(),
		NextStep:         NextStepPermitCheck,
		NextStepLabel:    NextStepActionLabel,
		Progress:         progressSteps(currentProgressStep),
		UpdatedAt:        s.UpdatedAt,
	}

	if s.Status == entities.FetchStatusSuccess {
		visible := s.VisibleOfferings()
		for _, o := range visible {
			res.Offerings = append(res.Offerings, FromOffering(o, s.TaxMode, s.IsSelected(o.ID)))
		}
		res.VisibleCount = len(visible)
		res.TotalCount = len(s.Offerings)
		if len(visible) == 0 {
			res.EmptyHint = EmptyFilterHint
			res.EmptySuggestion = EmptyFilterSuggestion
		}
	}

	if o, ok := s.SelectedOffering(); ok {
		price := o.DisplayPrice(s.TaxMode)
		res.Selected = &SelectedOfferingResponse{
			OfferingID:   o.ID,
			DisplayPrice: price.StringFixed(2),
			Summary:      SelectionSummary(o, s.TaxMode),
		}
	}
	return res
}

// SelectionSummary renders e.g. "4 Yard Skip - £240.00 (inc. VAT) for 14 days".
func SelectionSummary(o entities.Offering, mode entities.TaxMode) string {
	return fmt.Sprintf("%d Yard Skip - %s (%s VAT) for %d days", o.Size, entities.FormatPounds(o.DisplayPrice(mode)), mode.Short(), o.HirePeriodDays)
}

func progressSteps(current int) []ProgressStepResponse {
	steps := make([]ProgressStepResponse, 0, len(progressLabels))
	for i, label := range progressLabels {
		id := i + 1
		status := progressStatusToDo
		switch {
		case id < current:
			status = progressStatusDone
		case id == current:
			status = progressStatusActive
		}
		steps = append(steps, ProgressStepResponse{ID: id, Label: label, Status: status})
	}
	return steps
}

func optionalAmount(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(2)
	return &s
}
