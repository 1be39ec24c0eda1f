package domain

import "time"

// Notification is a broadcast message visible to every authenticated viewer.
// There is no per-recipient scoping; Read is a single global flag.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	From      string    `json:"from"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
