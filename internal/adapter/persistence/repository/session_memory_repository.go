package repository

import (
	"context"
	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase/interfaces"
	"sync"
	"time"
)

type memorySessionEntry struct {
	session   entities.BookingSession
	expiresAt time.Time
}

// SessionMemoryRepository keeps sessions in process memory. Entries expire
// ttl after their last save.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySessionEntry
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository(ttl time.Duration) *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]memorySessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeExpired()
	r.sessions[s.ID] = memorySessionEntry{session: cloneSession(s), expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *SessionMemoryRepository) GetByID(_ context.Context, id string) (entities.BookingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok || !r.now().Before(e.expiresAt) {
		return entities.BookingSession{}, nil
	}
	return cloneSession(e.session), nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// purgeExpired must be called with the write lock held.
func (r *SessionMemoryRepository) purgeExpired() {
	now := r.now()
	for id, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

func cloneSession(s entities.BookingSession) entities.BookingSession {
	out := s
	out.Offerings = append([]entities.Offering(nil), s.Offerings...)
	if s.SelectedOfferingID != nil {
		id := *s.SelectedOfferingID
		out.SelectedOfferingID = &id
	}
	return out
}
