package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FetchStatus is the state of the offering fetch for a session.
type FetchStatus string

const (
	FetchStatusLoading FetchStatus = "loading"
	FetchStatusSuccess FetchStatus = "success"
	FetchStatusFailure FetchStatus = "failure"
)

const (
	// FetchFailureMessage is shown to the user whenever the listing can't be loaded.
	FetchFailureMessage = "Failed to load skip options. Please try again."

	// DefaultHirePeriodDays is used in the page headline before any offering is known.
	DefaultHirePeriodDays = 14
)

// Location identifies where the skip is delivered.
type Location struct {
	Postcode string `json:"postcode"`
	Area     string `json:"area"`
}

func (l Location) Label() string {
	return l.Postcode + ", " + l.Area
}

// BookingSession is the state of one user's pass through the skip selection
// step. It is owned by a single writer; callers load it, apply one
// transition and store it back.
//
// Invariants:
//   - Offerings never contains a forbidden offering.
//   - SelectedOfferingID, when set, references an entry of Offerings that is selectable.
//   - Filters and the tax mode never clear the selection.
type BookingSession struct {
	ID                 string           `json:"id"`
	Location           Location         `json:"location"`
	Status             FetchStatus      `json:"status"`
	FailureReason      string           `json:"failure_reason,omitempty"`
	Offerings          []Offering       `json:"offerings"`
	TaxMode            TaxMode          `json:"tax_mode"`
	AppliedMinPrice    *decimal.Decimal `json:"applied_min_price,omitempty"`
	AppliedMaxPrice    *decimal.Decimal `json:"applied_max_price,omitempty"`
	SelectedOfferingID *int64           `json:"selected_offering_id,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewBookingSession returns a session that is about to load its offerings.
func NewBookingSession(id string, loc Location, now time.Time) BookingSession {
	return BookingSession{
		ID:        id,
		Location:  loc,
		Status:    FetchStatusLoading,
		Offerings: []Offering{},
		TaxMode:   DefaultTaxMode,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BeginLoad enters the loading state. The current list stays in place until
// the fetch resolves.
func (s *BookingSession) BeginLoad(now time.Time) {
	s.Status = FetchStatusLoading
	s.FailureReason = ""
	s.UpdatedAt = now
}

// CompleteLoad replaces the base list with the fetched offerings minus the
// forbidden ones. A selection that no longer points into the new list is
// dropped.
func (s *BookingSession) CompleteLoad(fetched []Offering, now time.Time) {
	s.Offerings = AvailableOfferings(fetched)
	s.Status = FetchStatusSuccess
	s.FailureReason = ""
	if s.SelectedOfferingID != nil {
		if o, ok := s.find(*s.SelectedOfferingID); !ok || !o.IsSelectable() {
			s.SelectedOfferingID = nil
		}
	}
	s.UpdatedAt = now
}

// FailLoad records a failed fetch. The previous list is kept but the page
// only shows the failure and the retry action.
func (s *BookingSession) FailLoad(now time.Time) {
	s.Status = FetchStatusFailure
	s.FailureReason = FetchFailureMessage
	s.UpdatedAt = now
}

// ApplyPriceFilter commits raw min/max inputs. Unusable input becomes "no bound".
func (s *BookingSession) ApplyPriceFilter(rawMin, rawMax string, now time.Time) {
	f := ParsePriceFilter(rawMin, rawMax)
	s.AppliedMinPrice = f.Min
	s.AppliedMaxPrice = f.Max
	s.UpdatedAt = now
}

// ClearPriceFilter removes both bounds.
func (s *BookingSession) ClearPriceFilter(now time.Time) {
	s.AppliedMinPrice = nil
	s.AppliedMaxPrice = nil
	s.UpdatedAt = now
}

// ToggleTaxMode switches between prices with and without VAT.
func (s *BookingSession) ToggleTaxMode(now time.Time) {
	s.TaxMode = s.TaxMode.Toggle()
	s.UpdatedAt = now
}

// Select makes the offering with the given id the current selection. It
// returns false and leaves the session untouched when the id is unknown or
// the offering is not selectable.
func (s *BookingSession) Select(offeringID int64, now time.Time) bool {
	o, ok := s.find(offeringID)
	if !ok || !o.IsSelectable() {
		return false
	}
	id := o.ID
	s.SelectedOfferingID = &id
	s.UpdatedAt = now
	return true
}

// SelectedOffering resolves the selection against the base list.
func (s BookingSession) SelectedOffering() (Offering, bool) {
	if s.SelectedOfferingID == nil {
		return Offering{}, false
	}
	return s.find(*s.SelectedOfferingID)
}

// IsSelected reports whether offeringID is the current selection.
func (s BookingSession) IsSelected(offeringID int64) bool {
	return s.SelectedOfferingID != nil && *s.SelectedOfferingID == offeringID
}

func (s BookingSession) PriceFilter() PriceFilter {
	return PriceFilter{Min: s.AppliedMinPrice, Max: s.AppliedMaxPrice}
}

func (s BookingSession) HasPriceFilter() bool {
	return !s.PriceFilter().IsEmpty()
}

// VisibleOfferings is the filtered view of the base list.
func (s BookingSession) VisibleOfferings() []Offering {
	return VisibleOfferings(s.Offerings, s.TaxMode, s.PriceFilter())
}

// HirePeriodDays is the hire period quoted in the page headline.
func (s BookingSession) HirePeriodDays() int {
	if len(s.Offerings) > 0 && s.Offerings[0].HirePeriodDays > 0 {
		return s.Offerings[0].HirePeriodDays
	}
	return DefaultHirePeriodDays
}

// CanContinue reports whether the user may proceed to the next step.
func (s BookingSession) CanContinue() bool {
	_, ok := s.SelectedOffering()
	return ok
}

func (s BookingSession) find(offeringID int64) (Offering, bool) {
	for _, o := range s.Offerings {
		if o.ID == offeringID {
			return o, true
		}
	}
	return Offering{}, false
}
