package ports

import (
	"context"
	"time"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// JobPatch is a shallow merge applied over an existing job record. Nil fields
// are left untouched; LastUpdated is always stamped, even for an empty patch.
type JobPatch struct {
	Title          *string
	Description    *string
	Category       *domain.JobCategory
	AssignedTo     *string
	AssignedToName *string
	Status         *domain.JobStatus
	LastUpdated    time.Time
}

// JobRepository defines persistence operations for the jobs collection.
type JobRepository interface {
	List(ctx context.Context) ([]domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	// Update merges patch over the record with the given id and returns the
	// result, or (nil, nil) when the id is absent.
	Update(ctx context.Context, id string, patch JobPatch) (*domain.Job, error)
	// Delete removes the record with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id string) error
}
