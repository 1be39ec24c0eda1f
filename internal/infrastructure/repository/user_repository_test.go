package repository

import (
	"context"
	"testing"
	"time"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	user := &domain.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.Email != "alice@example.com" || got.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
	// the hash must survive the storage round-trip even though the domain
	// type hides it from JSON
	if got.PasswordHash != "$2a$10$hash" {
		t.Fatalf("password hash lost in round-trip: %q", got.PasswordHash)
	}
}

func TestUserRepository_FindByEmail_FirstMatchWins(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.User{ID: "u1", Name: "First", Email: "dup@example.com"})
	_ = repo.Create(ctx, &domain.User{ID: "u2", Name: "Second", Email: "dup@example.com"})

	got, err := repo.FindByEmail(ctx, "dup@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("expected first record to win, got %s", got.ID)
	}
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())

	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Update_MergesPatch(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser})

	name := "Alicia"
	got, err := repo.Update(ctx, "u1", ports.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Name != "Alicia" {
		t.Fatalf("expected patched name, got %q", got.Name)
	}
	// untouched fields survive
	if got.Email != "alice@example.com" || got.Role != domain.RoleUser {
		t.Fatalf("patch clobbered unrelated fields: %+v", got)
	}
}

func TestUserRepository_Update_AbsentID(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())

	name := "Nobody"
	got, err := repo.Update(context.Background(), "missing", ports.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestUserRepository_Delete_Idempotent(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.User{ID: "u1", Email: "a@example.com"})
	_ = repo.Create(ctx, &domain.User{ID: "u2", Email: "b@example.com"})

	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 1 || users[0].ID != "u2" {
		t.Fatalf("unexpected remaining users: %+v", users)
	}
}
