package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

type stubJobRepo struct {
	jobs []domain.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{}
}

func (r *stubJobRepo) List(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			clone := r.jobs[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, patch ports.JobPatch) (*domain.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID != id {
			continue
		}
		j := &r.jobs[i]
		if patch.Title != nil {
			j.Title = *patch.Title
		}
		if patch.Description != nil {
			j.Description = *patch.Description
		}
		if patch.Category != nil {
			j.Category = *patch.Category
		}
		if patch.AssignedTo != nil {
			j.AssignedTo = *patch.AssignedTo
		}
		if patch.AssignedToName != nil {
			j.AssignedToName = *patch.AssignedToName
		}
		if patch.Status != nil {
			j.Status = *patch.Status
		}
		j.LastUpdated = patch.LastUpdated
		clone := *j
		return &clone, nil
	}
	return nil, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	kept := r.jobs[:0]
	for _, j := range r.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	r.jobs = kept
	return nil
}

var (
	adminActor = ports.Actor{UserID: "admin-1", Name: "The Admin", Role: domain.RoleAdmin}
	userActor  = ports.Actor{UserID: "user-1", Name: "Worker", Role: domain.RoleUser}
)

func newTestJobService(jobs ports.JobRepository, users ports.UserRepository) *JobService {
	return NewJobService(jobs, users, nil, zerolog.Nop())
}

func seedUser(repo *stubUserRepo, id, name, role string) {
	repo.users = append(repo.users, domain.User{ID: id, Name: name, Email: id + "@example.com", Role: role})
}

func TestJobService_Create_SnapshotsAssigneeName(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	svc := newTestJobService(newStubJobRepo(), users)

	job, err := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
		Title:      "Fix boiler",
		Category:   domain.CategoryHVAC,
		AssignedTo: "user-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.Status != domain.StatusPending {
		t.Fatalf("expected new job to be Pending, got %s", job.Status)
	}
	if job.AssignedToName != "Worker" {
		t.Fatalf("expected assignee name snapshot, got %q", job.AssignedToName)
	}
	if job.AssignedBy != "The Admin" {
		t.Fatalf("expected assignedBy snapshot, got %q", job.AssignedBy)
	}
	if job.DateCreated.IsZero() || !job.LastUpdated.Equal(job.DateCreated) {
		t.Fatalf("expected dateCreated == lastUpdated on creation")
	}
}

func TestJobService_Create_DanglingAssignee(t *testing.T) {
	svc := newTestJobService(newStubJobRepo(), newStubUserRepo())

	// assignedTo carries no foreign-key check; an unknown id just leaves the
	// name snapshot empty
	job, err := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
		Title:      "Orphaned job",
		Category:   domain.CategoryGeneral,
		AssignedTo: "no-such-user",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.AssignedToName != "" {
		t.Fatalf("expected empty name snapshot, got %q", job.AssignedToName)
	}
}

func TestJobService_Create_NonAdminForbidden(t *testing.T) {
	svc := newTestJobService(newStubJobRepo(), newStubUserRepo())

	if _, err := svc.Create(context.Background(), userActor, ports.CreateJobInput{
		Title: "Sneaky", Category: domain.CategoryCleaning, AssignedTo: "user-1",
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobService_Update_ResnapshotsNameOnReassign(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	seedUser(users, "user-2", "Other Worker", domain.RoleUser)
	jobs := newStubJobRepo()
	svc := newTestJobService(jobs, users)

	job, _ := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
		Title: "Paint hallway", Category: domain.CategoryPainting, AssignedTo: "user-1",
	})

	time.Sleep(time.Millisecond)

	newAssignee := "user-2"
	updated, err := svc.Update(context.Background(), adminActor, job.ID, ports.UpdateJobInput{
		AssignedTo: &newAssignee,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.AssignedToName != "Other Worker" {
		t.Fatalf("expected refreshed name snapshot, got %q", updated.AssignedToName)
	}
	if !updated.LastUpdated.After(job.LastUpdated) {
		t.Fatalf("expected lastUpdated to advance")
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := newTestJobService(newStubJobRepo(), newStubUserRepo())

	title := "x"
	if _, err := svc.Update(context.Background(), adminActor, "missing", ports.UpdateJobInput{Title: &title}); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_UpdateStatus_AssigneeAllowed(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	svc := newTestJobService(newStubJobRepo(), users)

	job, _ := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
		Title: "Mow lawn", Category: domain.CategoryLandscaping, AssignedTo: "user-1",
	})

	updated, err := svc.UpdateStatus(context.Background(), userActor, job.ID, domain.StatusOngoing)
	if err != nil {
		t.Fatalf("assignee status change failed: %v", err)
	}
	if updated.Status != domain.StatusOngoing {
		t.Fatalf("expected Ongoing, got %s", updated.Status)
	}

	// any state may move to any other, including backwards
	updated, err = svc.UpdateStatus(context.Background(), userActor, job.ID, domain.StatusPending)
	if err != nil {
		t.Fatalf("backwards transition failed: %v", err)
	}
	if updated.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", updated.Status)
	}
}

func TestJobService_UpdateStatus_OtherUserForbidden(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	svc := newTestJobService(newStubJobRepo(), users)

	job, _ := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
		Title: "Change locks", Category: domain.CategorySecurity, AssignedTo: "user-1",
	})

	other := ports.Actor{UserID: "user-2", Name: "Intruder", Role: domain.RoleUser}
	if _, err := svc.UpdateStatus(context.Background(), other, job.ID, domain.StatusCompleted); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestJobService(newStubJobRepo(), newStubUserRepo())

	if _, err := svc.UpdateStatus(context.Background(), adminActor, "any", domain.JobStatus("Done")); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestJobService_Delete_Idempotent(t *testing.T) {
	jobs := newStubJobRepo()
	svc := newTestJobService(jobs, newStubUserRepo())

	job, _ := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
		Title: "Trash run", Category: domain.CategoryCleaning, AssignedTo: "user-1",
	})

	if err := svc.Delete(context.Background(), adminActor, job.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), adminActor, job.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if err := svc.Delete(context.Background(), userActor, job.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	remaining, _ := svc.List(context.Background(), ports.JobFilter{})
	if len(remaining) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(remaining))
	}
}

func TestJobService_List_Filters(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	seedUser(users, "user-2", "Other", domain.RoleUser)
	svc := newTestJobService(newStubJobRepo(), users)

	mk := func(title string, cat domain.JobCategory, assignee string) {
		if _, err := svc.Create(context.Background(), adminActor, ports.CreateJobInput{
			Title: title, Category: cat, AssignedTo: assignee,
		}); err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
	}
	mk("Fix rooftop HVAC unit", domain.CategoryHVAC, "user-1")
	mk("Unclog kitchen drain", domain.CategoryPlumbing, "user-1")
	mk("Service basement HVAC", domain.CategoryHVAC, "user-2")

	got, err := svc.List(context.Background(), ports.JobFilter{Category: "HVAC", Status: ports.FilterAll})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 HVAC jobs, got %d", len(got))
	}
	// storage order is preserved
	if got[0].Title != "Fix rooftop HVAC unit" || got[1].Title != "Service basement HVAC" {
		t.Fatalf("unexpected order: %q, %q", got[0].Title, got[1].Title)
	}

	got, _ = svc.List(context.Background(), ports.JobFilter{Search: "hvac", AssignedTo: "user-1"})
	if len(got) != 1 || got[0].AssignedTo != "user-1" {
		t.Fatalf("expected single user-1 HVAC job, got %d", len(got))
	}

	got, _ = svc.List(context.Background(), ports.JobFilter{Search: "DRAIN"})
	if len(got) != 1 || got[0].Title != "Unclog kitchen drain" {
		t.Fatalf("expected case-insensitive search hit, got %d", len(got))
	}
}

func TestJobService_ListByUser(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	svc := newTestJobService(newStubJobRepo(), users)

	_, _ = svc.Create(context.Background(), adminActor, ports.CreateJobInput{Title: "a", Category: domain.CategoryGeneral, AssignedTo: "user-1"})
	_, _ = svc.Create(context.Background(), adminActor, ports.CreateJobInput{Title: "b", Category: domain.CategoryGeneral, AssignedTo: "user-2"})
	_, _ = svc.Create(context.Background(), adminActor, ports.CreateJobInput{Title: "c", Category: domain.CategoryGeneral, AssignedTo: "user-1"})

	mine, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 || mine[0].Title != "a" || mine[1].Title != "c" {
		t.Fatalf("expected order-preserving subset [a c], got %+v", mine)
	}
}

func TestJobService_Stats(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "admin-1", "The Admin", domain.RoleAdmin)
	seedUser(users, "user-1", "Worker", domain.RoleUser)
	seedUser(users, "user-2", "Other", domain.RoleUser)
	svc := newTestJobService(newStubJobRepo(), users)

	j1, _ := svc.Create(context.Background(), adminActor, ports.CreateJobInput{Title: "a", Category: domain.CategoryGeneral, AssignedTo: "user-1"})
	j2, _ := svc.Create(context.Background(), adminActor, ports.CreateJobInput{Title: "b", Category: domain.CategoryGeneral, AssignedTo: "user-1"})
	_, _ = svc.Create(context.Background(), adminActor, ports.CreateJobInput{Title: "c", Category: domain.CategoryGeneral, AssignedTo: "user-2"})

	_, _ = svc.UpdateStatus(context.Background(), adminActor, j1.ID, domain.StatusCompleted)
	_, _ = svc.UpdateStatus(context.Background(), adminActor, j2.ID, domain.StatusOngoing)

	admin, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("admin stats failed: %v", err)
	}
	// admins are not counted as users
	if admin.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", admin.TotalUsers)
	}
	if admin.TotalJobs != 3 || admin.PendingJobs != 1 || admin.OngoingJobs != 1 || admin.CompletedJobs != 1 {
		t.Fatalf("unexpected admin stats: %+v", admin)
	}
	if admin.CompletionRate != 33 {
		t.Fatalf("expected completion rate 33, got %d", admin.CompletionRate)
	}

	mine, err := svc.UserStats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("user stats failed: %v", err)
	}
	if mine.Total != 2 || mine.Completed != 1 || mine.CompletionRate != 50 {
		t.Fatalf("unexpected user stats: %+v", mine)
	}

	empty, _ := svc.UserStats(context.Background(), "user-3")
	if empty.Total != 0 || empty.CompletionRate != 0 {
		t.Fatalf("expected zeroed stats for user with no jobs: %+v", empty)
	}
}
