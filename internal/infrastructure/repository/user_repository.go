// Package repository implements the core ports on top of the key-value
// Storage Adapter. Every operation is a read-collection / mutate /
// write-collection cycle; mutations go through Store.Update so the cycle is a
// single check-and-set.
package repository

import (
	"context"
	"time"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

// usersKey is the single canonical users collection.
const usersKey = "maintenox:users"

// userRecord is the persisted representation of a user. Unlike domain.User it
// carries the password hash, which must round-trip through storage.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Avatar:       u.Avatar,
		CreatedAt:    u.CreatedAt,
	}
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		Avatar:       r.Avatar,
		CreatedAt:    r.CreatedAt,
	}
}

// UserRepository implements ports.UserRepository on a storage.Store.
type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	records, err := storage.ReadCollection[userRecord](ctx, r.store, usersKey)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toDomain())
	}
	return users, nil
}

// FindByEmail returns the first record matching email in storage order. When
// two records share an email the first one wins; uniqueness is a convention
// enforced at signup, not by the store.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	records, err := storage.ReadCollection[userRecord](ctx, r.store, usersKey)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Email == email {
			u := rec.toDomain()
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	records, err := storage.ReadCollection[userRecord](ctx, r.store, usersKey)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			u := rec.toDomain()
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return storage.UpdateCollection(ctx, r.store, usersKey, func(records []userRecord) ([]userRecord, error) {
		return append(records, toUserRecord(user)), nil
	})
}

func (r *UserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	var updated *domain.User
	err := storage.UpdateCollection(ctx, r.store, usersKey, func(records []userRecord) ([]userRecord, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			if patch.Name != nil {
				records[i].Name = *patch.Name
			}
			if patch.Email != nil {
				records[i].Email = *patch.Email
			}
			if patch.Avatar != nil {
				records[i].Avatar = *patch.Avatar
			}
			if patch.Role != nil {
				records[i].Role = *patch.Role
			}
			if patch.PasswordHash != nil {
				records[i].PasswordHash = *patch.PasswordHash
			}
			u := records[i].toDomain()
			updated = &u
			break
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return storage.UpdateCollection(ctx, r.store, usersKey, func(records []userRecord) ([]userRecord, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec.ID != id {
				kept = append(kept, rec)
			}
		}
		return kept, nil
	})
}
