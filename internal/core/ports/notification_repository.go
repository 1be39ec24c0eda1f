package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// NotificationRepository defines persistence operations for the broadcast
// notifications collection. Storage order is newest-first: Create prepends,
// List returns stored order unchanged.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	// MarkRead sets the read flag on the record with the given id; absent ids
	// are a no-op. Idempotent.
	MarkRead(ctx context.Context, id string) error
	// Delete removes the record with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id string) error
}
