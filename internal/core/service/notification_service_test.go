package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

type stubNotificationRepo struct {
	notifications []domain.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{}
}

func (r *stubNotificationRepo) List(_ context.Context) ([]domain.Notification, error) {
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.notifications = append([]domain.Notification{*n}, r.notifications...)
	return nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
		}
	}
	return nil
}

func (r *stubNotificationRepo) Delete(_ context.Context, id string) error {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

func newTestNotificationService(repo ports.NotificationRepository) *NotificationService {
	return NewNotificationService(repo, nil, zerolog.Nop())
}

func TestNotificationService_Broadcast_NewestFirst(t *testing.T) {
	svc := newTestNotificationService(newStubNotificationRepo())

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Broadcast(context.Background(), adminActor, title, "body"); err != nil {
			t.Fatalf("broadcast %q failed: %v", title, err)
		}
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].Title != "third" || got[2].Title != "first" {
		t.Fatalf("expected newest first, got %q .. %q", got[0].Title, got[2].Title)
	}
}

func TestNotificationService_Broadcast_NonAdminForbidden(t *testing.T) {
	svc := newTestNotificationService(newStubNotificationRepo())

	if _, err := svc.Broadcast(context.Background(), userActor, "nope", "body"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNotificationService_Broadcast_FromFallback(t *testing.T) {
	svc := newTestNotificationService(newStubNotificationRepo())

	nameless := ports.Actor{UserID: "admin-2", Role: domain.RoleAdmin}
	n, err := svc.Broadcast(context.Background(), nameless, "t", "m")
	if err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}
	if n.From != "Admin" {
		t.Fatalf("expected From fallback 'Admin', got %q", n.From)
	}
	if n.Read {
		t.Fatalf("expected new notification to be unread")
	}
}

func TestNotificationService_MarkAsRead_Idempotent(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := newTestNotificationService(repo)

	n, _ := svc.Broadcast(context.Background(), adminActor, "read me", "body")
	_, _ = svc.Broadcast(context.Background(), adminActor, "leave me", "body")

	if err := svc.MarkAsRead(context.Background(), n.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if err := svc.MarkAsRead(context.Background(), n.ID); err != nil {
		t.Fatalf("second mark read should be a no-op, got %v", err)
	}
	if err := svc.MarkAsRead(context.Background(), "missing"); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}

	count, err := svc.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread, got %d", count)
	}
}

func TestNotificationService_Delete_Idempotent(t *testing.T) {
	svc := newTestNotificationService(newStubNotificationRepo())

	n, _ := svc.Broadcast(context.Background(), adminActor, "bye", "body")

	if err := svc.Delete(context.Background(), n.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), n.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	got, _ := svc.List(context.Background())
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}
