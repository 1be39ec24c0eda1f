package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// Actor identifies the authenticated caller of a service operation. It is
// built from validated token claims by the transport layer, never looked up
// from ambient state.
type Actor struct {
	UserID string
	Name   string
	Role   string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// CreateJobInput carries the fields needed to create a job. The assignee
// display name is resolved from the live users collection at creation time.
type CreateJobInput struct {
	Title       string
	Description string
	Category    domain.JobCategory
	AssignedTo  string
}

// UpdateJobInput is the admin-side shallow patch of a job. Nil fields are
// left untouched.
type UpdateJobInput struct {
	Title       *string
	Description *string
	Category    *domain.JobCategory
	AssignedTo  *string
	Status      *domain.JobStatus
}

// FilterAll is the sentinel that disables an individual filter predicate.
const FilterAll = "all"

// JobFilter is a composable AND of independent predicates. Each predicate is
// skipped when its value is empty or FilterAll; order of application does not
// affect the result.
type JobFilter struct {
	Search     string // case-insensitive substring on title or description
	Category   string // exact match
	Status     string // exact match
	AssignedTo string // exact match on the assignee user id
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalUsers     int `json:"total_users"`
	TotalJobs      int `json:"total_jobs"`
	PendingJobs    int `json:"pending_jobs"`
	OngoingJobs    int `json:"ongoing_jobs"`
	CompletedJobs  int `json:"completed_jobs"`
	CompletionRate int `json:"completion_rate"`
}

// UserStats summarises one user's assignments.
type UserStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Ongoing        int `json:"ongoing"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completion_rate"`
}

// JobService defines use-case operations for jobs.
type JobService interface {
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, actor Actor, input CreateJobInput) (*domain.Job, error)
	// Update edits any field; admin only.
	Update(ctx context.Context, actor Actor, id string, patch UpdateJobInput) (*domain.Job, error)
	// UpdateStatus moves the job between the three states; allowed for an
	// admin or for the user the job is assigned to.
	UpdateStatus(ctx context.Context, actor Actor, id string, status domain.JobStatus) (*domain.Job, error)
	// Delete removes the job; admin only, idempotent.
	Delete(ctx context.Context, actor Actor, id string) error

	ListByUser(ctx context.Context, userID string) ([]domain.Job, error)
	ListByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error)
	ListByCategory(ctx context.Context, category domain.JobCategory) ([]domain.Job, error)

	AdminStats(ctx context.Context) (*AdminStats, error)
	UserStats(ctx context.Context, userID string) (*UserStats, error)
}
