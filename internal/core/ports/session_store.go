package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// SessionStore persists session records keyed by session ID.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Get returns the session with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Clear removes the session with the given id; absent ids are a no-op.
	Clear(ctx context.Context, id string) error
}
