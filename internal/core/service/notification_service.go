package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// NotificationService implements broadcast notifications. Ordering is purely
// positional: Broadcast prepends and List returns stored order, so insertion
// order is the single source of truth even if timestamps disagree.
type NotificationService struct {
	notifications ports.NotificationRepository
	activity      ports.ActivityRepository
	logger        zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, activity ports.ActivityRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, activity: activity, logger: logger}
}

func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *NotificationService) Broadcast(ctx context.Context, actor ports.Actor, title, message string) (*domain.Notification, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	from := actor.Name
	if from == "" {
		from = "Admin"
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		From:      from,
		Timestamp: time.Now().UTC(),
		Read:      false,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("failed to broadcast notification")
		return nil, err
	}

	recordActivity(ctx, s.activity, s.logger, actor.Name, "notification.broadcast", "notification", n.ID, title)
	s.logger.Info().Str("notification_id", n.ID).Str("from", from).Msg("notification broadcast")
	return n, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	notifications, err := s.notifications.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
