package domain

import "errors"

var (
	// ErrUserNotFound: no user record matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials: the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRoleMismatch: credentials matched but the claimed role did not.
	ErrRoleMismatch = errors.New("role mismatch")
	// ErrUserExists: signup with an email that is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrJobNotFound: the requested job does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrInvalidStatus: a status value outside the three known states.
	ErrInvalidStatus = errors.New("invalid job status")
	// ErrForbidden: the caller lacks permission for the operation.
	ErrForbidden = errors.New("access forbidden")
	// ErrSessionExpired: the session referenced by a token no longer exists.
	ErrSessionExpired = errors.New("session expired")
)
