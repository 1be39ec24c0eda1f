package repository

import (
	"context"
	"testing"
	"time"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

func TestNotificationRepository_CreatePrepends(t *testing.T) {
	repo := NewNotificationRepository(storage.NewMemoryStore())
	ctx := context.Background()

	for i, title := range []string{"first", "second", "third"} {
		n := domain.Notification{
			ID:        title,
			Title:     title,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(ctx, &n); err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].Title != "third" || got[1].Title != "second" || got[2].Title != "first" {
		t.Fatalf("expected newest first, got %q %q %q", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestNotificationRepository_MarkRead_Idempotent(t *testing.T) {
	repo := NewNotificationRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Notification{ID: "n1", Title: "hello"})

	if err := repo.MarkRead(ctx, "n1"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if err := repo.MarkRead(ctx, "n1"); err != nil {
		t.Fatalf("second mark read should be a no-op, got %v", err)
	}
	if err := repo.MarkRead(ctx, "missing"); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}

	got, _ := repo.List(ctx)
	if !got[0].Read {
		t.Fatalf("expected notification to be read")
	}
}

func TestNotificationRepository_Delete_Idempotent(t *testing.T) {
	repo := NewNotificationRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Notification{ID: "n1"})
	_ = repo.Create(ctx, &domain.Notification{ID: "n2"})

	if err := repo.Delete(ctx, "n1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "n1"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	got, _ := repo.List(ctx)
	if len(got) != 1 || got[0].ID != "n2" {
		t.Fatalf("unexpected remaining notifications: %+v", got)
	}
}
