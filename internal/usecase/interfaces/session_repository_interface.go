package interfaces

import (
	"context"
	"skip_selector/internal/domain/entities"
)

// ISessionRepository stores booking sessions for the lifetime of the step.
//
// GetByID returns a zero-value session (empty ID) and a nil error when the
// session does not exist or has expired.

type ISessionRepository interface {
	Save(ctx context.Context, s entities.BookingSession) error
	GetByID(ctx context.Context, id string) (entities.BookingSession, error)
	Delete(ctx context.Context, id string) error
}
