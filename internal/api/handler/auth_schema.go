package handler

import (
	"time"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// --- Request types ---

type signupRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role"             validate:"required,oneof=admin user"`
	Avatar          string `json:"avatar"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Role is the role the caller claims to hold; a mismatch is rejected even
	// when the password is correct.
	Role string `json:"role" validate:"required,oneof=admin user"`
}

type profileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"            validate:"omitempty,email"`
	Avatar          string `json:"avatar"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"     validate:"omitempty,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=NewPassword"`
}

// --- Response types (transport-owned, decoupled from domain) ---

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

type sessionUserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type loginResponse struct {
	Token string              `json:"token"`
	User  sessionUserResponse `json:"user"`
	// Redirect is the role's home view, mirroring the gate contract.
	Redirect string `json:"redirect"`
}

type sessionResponse struct {
	User      sessionUserResponse `json:"user"`
	Timestamp time.Time           `json:"timestamp"`
}

func toSessionUserResponse(u domain.SessionUser) sessionUserResponse {
	return sessionUserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
