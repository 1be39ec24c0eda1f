package repository

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

const notificationsKey = "maintenox:notifications"

// NotificationRepository implements ports.NotificationRepository on a
// storage.Store. The collection is maintained newest-first: Create prepends
// and List never re-sorts.
type NotificationRepository struct {
	store storage.Store
}

func NewNotificationRepository(store storage.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	return storage.ReadCollection[domain.Notification](ctx, r.store, notificationsKey)
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return storage.UpdateCollection(ctx, r.store, notificationsKey, func(records []domain.Notification) ([]domain.Notification, error) {
		return append([]domain.Notification{*n}, records...), nil
	})
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	return storage.UpdateCollection(ctx, r.store, notificationsKey, func(records []domain.Notification) ([]domain.Notification, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Read = true
				break
			}
		}
		return records, nil
	})
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return storage.UpdateCollection(ctx, r.store, notificationsKey, func(records []domain.Notification) ([]domain.Notification, error) {
		kept := records[:0]
		for _, n := range records {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		return kept, nil
	})
}
