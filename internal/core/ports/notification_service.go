package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// NotificationService owns broadcast notifications. Ordering is insertion
// order, newest first; timestamps are informational only.
type NotificationService interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Broadcast(ctx context.Context, actor Actor, title, message string) (*domain.Notification, error)
	// MarkAsRead is idempotent; unknown ids are a no-op.
	MarkAsRead(ctx context.Context, id string) error
	// Delete is idempotent; unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
}
