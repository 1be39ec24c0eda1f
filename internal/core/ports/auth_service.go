package ports

import (
	"context"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// SignupInput carries the fields collected by the signup form. Password
// confirmation and length checks happen at the transport edge; duplicate
// email detection happens in the service.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Avatar   string
}

// ProfileInput updates the caller's own account. NewPassword is applied only
// when non-empty and requires CurrentPassword to match.
type ProfileInput struct {
	Name            string
	Email           string
	Avatar          string
	CurrentPassword string
	NewPassword     string
}

// UpdateUserInput is the admin-side shallow patch of another user's record.
type UpdateUserInput struct {
	Name   *string
	Email  *string
	Avatar *string
	Role   *string
}

// AuthService owns sessions and user CRUD.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login checks email, then password, then claimed role, in that order, so
	// the caller can show a specific message per failure. On success it
	// persists a session and returns the signed token alongside it.
	Login(ctx context.Context, email, password, claimedRole string) (string, *domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	// Session returns the live session with the given id, or
	// domain.ErrSessionExpired when it has been cleared.
	Session(ctx context.Context, sessionID string) (*domain.Session, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	// UpdateProfile applies a self-service profile edit for userID and
	// refreshes the session record under sessionID to match.
	UpdateProfile(ctx context.Context, sessionID, userID string, input ProfileInput) (*domain.User, error)
}
