package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// UserPatch is a shallow merge applied over an existing user record.
// Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	Avatar       *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines persistence operations for the canonical users
// collection.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	// FindByEmail returns the first record matching email in storage order,
	// or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// Update merges patch over the record with the given id and returns the
	// result, or (nil, nil) when the id is absent.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	// Delete removes the record with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id string) error
}
