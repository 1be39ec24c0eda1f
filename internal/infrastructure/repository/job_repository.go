package repository

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

const jobsKey = "maintenox:jobs"

// JobRepository implements ports.JobRepository on a storage.Store.
type JobRepository struct {
	store storage.Store
}

func NewJobRepository(store storage.Store) *JobRepository {
	return &JobRepository{store: store}
}

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	return storage.ReadCollection[domain.Job](ctx, r.store, jobsKey)
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	jobs, err := storage.ReadCollection[domain.Job](ctx, r.store, jobsKey)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return storage.UpdateCollection(ctx, r.store, jobsKey, func(jobs []domain.Job) ([]domain.Job, error) {
		return append(jobs, *job), nil
	})
}

// Update merges patch over the matching record. LastUpdated is stamped from
// the patch unconditionally, so even an empty patch advances it.
func (r *JobRepository) Update(ctx context.Context, id string, patch ports.JobPatch) (*domain.Job, error) {
	var updated *domain.Job
	err := storage.UpdateCollection(ctx, r.store, jobsKey, func(jobs []domain.Job) ([]domain.Job, error) {
		for i := range jobs {
			if jobs[i].ID != id {
				continue
			}
			if patch.Title != nil {
				jobs[i].Title = *patch.Title
			}
			if patch.Description != nil {
				jobs[i].Description = *patch.Description
			}
			if patch.Category != nil {
				jobs[i].Category = *patch.Category
			}
			if patch.AssignedTo != nil {
				jobs[i].AssignedTo = *patch.AssignedTo
			}
			if patch.AssignedToName != nil {
				jobs[i].AssignedToName = *patch.AssignedToName
			}
			if patch.Status != nil {
				jobs[i].Status = *patch.Status
			}
			jobs[i].LastUpdated = patch.LastUpdated
			j := jobs[i]
			updated = &j
			break
		}
		return jobs, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return storage.UpdateCollection(ctx, r.store, jobsKey, func(jobs []domain.Job) ([]domain.Job, error) {
		kept := jobs[:0]
		for _, j := range jobs {
			if j.ID != id {
				kept = append(kept, j)
			}
		}
		return kept, nil
	})
}
