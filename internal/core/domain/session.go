package domain

import "time"

// SessionUser is the public slice of a user carried inside a session.
type SessionUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// Session is the authenticated-state record persisted at login and removed at
// logout. Presence of a live session implies "authenticated".
type Session struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"user"`
	Timestamp time.Time   `json:"timestamp"`
}
