package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// JobService implements job CRUD, filtering and dashboard stats.
type JobService struct {
	jobs     ports.JobRepository
	users    ports.UserRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, activity ports.ActivityRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, activity: activity, logger: logger}
}

// List applies filter as a pure intersection of independent predicates over
// the full collection, preserving storage order.
func (s *JobService) List(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if matchesFilter(job, filter) {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}

func matchesFilter(job domain.Job, f ports.JobFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) {
			return false
		}
	}
	if active(f.Category) && string(job.Category) != f.Category {
		return false
	}
	if active(f.Status) && string(job.Status) != f.Status {
		return false
	}
	if active(f.AssignedTo) && job.AssignedTo != f.AssignedTo {
		return false
	}
	return true
}

// active reports whether a filter value participates in the intersection.
func active(v string) bool {
	return v != "" && v != ports.FilterAll
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, actor ports.Actor, input ports.CreateJobInput) (*domain.Job, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		AssignedTo:     input.AssignedTo,
		AssignedToName: s.assigneeName(ctx, input.AssignedTo),
		AssignedBy:     actor.Name,
		Status:         domain.StatusPending,
		DateCreated:    now,
		LastUpdated:    now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create job")
		return nil, err
	}

	s.audit(ctx, actor.Name, "job.created", job.ID, string(job.Category))
	s.logger.Info().Str("job_id", job.ID).Str("assigned_to", job.AssignedTo).Msg("job created")
	return job, nil
}

func (s *JobService) Update(ctx context.Context, actor ports.Actor, id string, input ports.UpdateJobInput) (*domain.Job, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Status != nil && !domain.ValidStatus(*input.Status) {
		return nil, domain.ErrInvalidStatus
	}

	patch := ports.JobPatch{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		AssignedTo:  input.AssignedTo,
		Status:      input.Status,
		LastUpdated: time.Now().UTC(),
	}
	// re-snapshot the assignee display name when the assignment changes
	if input.AssignedTo != nil {
		name := s.assigneeName(ctx, *input.AssignedTo)
		patch.AssignedToName = &name
	}

	job, err := s.jobs.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	s.audit(ctx, actor.Name, "job.updated", id, "")
	return job, nil
}

// UpdateStatus is the one mutation open to non-admins: the assignee may move
// their own job between any of the three states.
func (s *JobService) UpdateStatus(ctx context.Context, actor ports.Actor, id string, status domain.JobStatus) (*domain.Job, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.UserID != job.AssignedTo {
		return nil, domain.ErrForbidden
	}

	prev := job.Status
	updated, err := s.jobs.Update(ctx, id, ports.JobPatch{
		Status:      &status,
		LastUpdated: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrJobNotFound
	}

	s.audit(ctx, actor.Name, "job.status_changed", id, fmt.Sprintf("%s -> %s", prev, status))
	s.logger.Info().Str("job_id", id).Str("from", string(prev)).Str("to", string(status)).Msg("job status changed")
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, actor.Name, "job.deleted", id, "")
	return nil
}

func (s *JobService) ListByUser(ctx context.Context, userID string) ([]domain.Job, error) {
	return s.List(ctx, ports.JobFilter{AssignedTo: userID})
}

func (s *JobService) ListByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return s.List(ctx, ports.JobFilter{Status: string(status)})
}

func (s *JobService) ListByCategory(ctx context.Context, category domain.JobCategory) ([]domain.Job, error) {
	return s.List(ctx, ports.JobFilter{Category: string(category)})
}

func (s *JobService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.AdminStats{TotalJobs: len(jobs)}
	for _, u := range users {
		if u.Role == domain.RoleUser {
			stats.TotalUsers++
		}
	}
	for _, j := range jobs {
		switch j.Status {
		case domain.StatusPending:
			stats.PendingJobs++
		case domain.StatusOngoing:
			stats.OngoingJobs++
		case domain.StatusCompleted:
			stats.CompletedJobs++
		}
	}
	stats.CompletionRate = completionRate(stats.CompletedJobs, stats.TotalJobs)
	return stats, nil
}

func (s *JobService) UserStats(ctx context.Context, userID string) (*ports.UserStats, error) {
	jobs, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &ports.UserStats{Total: len(jobs)}
	for _, j := range jobs {
		switch j.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusOngoing:
			stats.Ongoing++
		case domain.StatusCompleted:
			stats.Completed++
		}
	}
	stats.CompletionRate = completionRate(stats.Completed, stats.Total)
	return stats, nil
}

func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// assigneeName snapshots the assignee's display name. A dangling user id is
// not an error: assignedTo has no foreign-key check, so an unknown assignee
// just leaves the snapshot empty.
func (s *JobService) assigneeName(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to resolve assignee name")
		}
		return ""
	}
	return user.Name
}

func (s *JobService) audit(ctx context.Context, actor, action, jobID, detail string) {
	recordActivity(ctx, s.activity, s.logger, actor, action, "job", jobID, detail)
}
