package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// ActivityRepository persists the audit trail of mutations. Writes are
// best-effort: callers log failures and carry on.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
