package usecase

import (
	"context"
	"errors"
	"log"
	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("booking session not found")
	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrInvalidOfferingID = errors.New("invalid offering id")
)

// ISkipSelectionUseCase exposes the skip selection step to the presentation layer.
//
// Mapping to the page:
//   - page mount => StartSession()
//   - "Try Again" => Retry()
//   - "Apply" / clear button => ApplyPriceFilter() / ClearPriceFilter()
//   - VAT toggle => ToggleTaxMode()
//   - clicking a card => SelectOffering()

type ISkipSelectionUseCase interface {
	StartSession(ctx context.Context) (entities.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (entities.BookingSession, error)
	Retry(ctx context.Context, sessionID string) (entities.BookingSession, error)
	ApplyPriceFilter(ctx context.Context, sessionID, rawMin, rawMax string) (entities.BookingSession, error)
	ClearPriceFilter(ctx context.Context, sessionID string) (entities.BookingSession, error)
	ToggleTaxMode(ctx context.Context, sessionID string) (entities.BookingSession, error)
	SelectOffering(ctx context.Context, sessionID string, offeringID int64) (entities.BookingSession, error)
	EndSession(ctx context.Context, sessionID string) error
}

type SkipSelectionUseCase struct {
	sessions interfaces.ISessionRepository
	fetcher  interfaces.IOfferingFetcher
	location entities.Location
	now      func() time.Time
}

var _ ISkipSelectionUseCase = (*SkipSelectionUseCase)(nil)

func NewSkipSelectionUseCase(sessions interfaces.ISessionRepository, fetcher interfaces.IOfferingFetcher, location entities.Location) *SkipSelectionUseCase {
	return &SkipSelectionUseCase{
		sessions: sessions,
		fetcher:  fetcher,
		location: location,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *SkipSelectionUseCase) StartSession(ctx context.Context) (entities.BookingSession, error) {
	s := entities.NewBookingSession(uuid.NewString(), u.location, u.now())
	if err := u.sessions.Save(ctx, s); err != nil {
		log.Printf("[skips][usecase] save new session failed session_id=%s err=%v", s.ID, err)
		return entities.BookingSession{}, err
	}
	log.Printf("[skips][usecase] session started session_id=%s postcode=%s area=%s", s.ID, s.Location.Postcode, s.Location.Area)
	return u.load(ctx, s)
}

func (u *SkipSelectionUseCase) GetSession(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	return u.get(ctx, sessionID)
}

func (u *SkipSelectionUseCase) Retry(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	s, err := u.get(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	s.BeginLoad(u.now())
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.BookingSession{}, err
	}
	log.Printf("[skips][usecase] retry session_id=%s", s.ID)
	return u.load(ctx, s)
}

func (u *SkipSelectionUseCase) ApplyPriceFilter(ctx context.Context, sessionID, rawMin, rawMax string) (entities.BookingSession, error) {
	return u.update(ctx, sessionID, func(s *entities.BookingSession) bool {
		s.ApplyPriceFilter(rawMin, rawMax, u.now())
		log.Printf("[skips][usecase] price filter applied session_id=%s raw_min=%q raw_max=%q has_filter=%t", s.ID, rawMin, rawMax, s.HasPriceFilter())
		return true
	})
}

func (u *SkipSelectionUseCase) ClearPriceFilter(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	return u.update(ctx, sessionID, func(s *entities.BookingSession) bool {
		s.ClearPriceFilter(u.now())
		return true
	})
}

func (u *SkipSelectionUseCase) ToggleTaxMode(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	return u.update(ctx, sessionID, func(s *entities.BookingSession) bool {
		s.ToggleTaxMode(u.now())
		log.Printf("[skips][usecase] tax mode toggled session_id=%s tax_mode=%s", s.ID, s.TaxMode)
		return true
	})
}

// SelectOffering never fails on a non-selectable offering; the session is
// returned unchanged instead.
func (u *SkipSelectionUseCase) SelectOffering(ctx context.Context, sessionID string, offeringID int64) (entities.BookingSession, error) {
	if offeringID <= 0 {
		return entities.BookingSession{}, ErrInvalidOfferingID
	}
	return u.update(ctx, sessionID, func(s *entities.BookingSession) bool {
		if !s.Select(offeringID, u.now()) {
			log.Printf("[skips][usecase] selection ignored session_id=%s offering_id=%d", s.ID, offeringID)
			return false
		}
		log.Printf("[skips][usecase] offering selected session_id=%s offering_id=%d", s.ID, offeringID)
		return true
	})
}

func (u *SkipSelectionUseCase) EndSession(ctx context.Context, sessionID string) error {
	s, err := u.get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		return err
	}
	log.Printf("[skips][usecase] session ended session_id=%s", s.ID)
	return nil
}

// load fetches the offerings and stores the outcome on the latest stored
// version of the session. The fetch is not tied to the caller's
// cancellation; only the transport timeout bounds it. When the session has
// ended in the meantime the result is discarded.
func (u *SkipSelectionUseCase) load(ctx context.Context, s entities.BookingSession) (entities.BookingSession, error) {
	ctx = context.WithoutCancel(ctx)
	sessionID := s.ID

	offerings, fetchErr := u.fetcher.FetchOfferingsFor(ctx, s.Location.Postcode, s.Location.Area)

	current, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if current.ID == "" {
		log.Printf("[skips][usecase] session ended during fetch; result discarded session_id=%s", sessionID)
		return entities.BookingSession{}, ErrSessionNotFound
	}

	if fetchErr != nil {
		log.Printf("[skips][usecase] fetch failed session_id=%s err=%v", sessionID, fetchErr)
		current.FailLoad(u.now())
	} else {
		current.CompleteLoad(offerings, u.now())
		log.Printf("[skips][usecase] fetch success session_id=%s fetched=%d available=%d", sessionID, len(offerings), len(current.Offerings))
	}

	if err := u.sessions.Save(ctx, current); err != nil {
		log.Printf("[skips][usecase] save fetch outcome failed session_id=%s err=%v", sessionID, err)
		return entities.BookingSession{}, err
	}
	return current, nil
}

// update loads the session, applies one transition and stores it when the
// transition reports a change.
func (u *SkipSelectionUseCase) update(ctx context.Context, sessionID string, apply func(s *entities.BookingSession) bool) (entities.BookingSession, error) {
	s, err := u.get(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if !apply(&s) {
		return s, nil
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		log.Printf("[skips][usecase] save session failed session_id=%s err=%v", s.ID, err)
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (u *SkipSelectionUseCase) get(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BookingSession{}, ErrInvalidSessionID
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.ID == "" {
		return entities.BookingSession{}, ErrSessionNotFound
	}
	return s, nil
}
