// Package storage provides the key-value persistence layer. All collections
// (users, jobs, notifications) and session records live as JSON values under
// string keys in a single Store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrUnavailable: the underlying store could not be reached or the write
	// was rejected. Never caught by services; surfaces as a fatal failure of
	// the current operation.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrConflict: an optimistic update lost the race against a concurrent
	// writer. The operation is not retried.
	ErrConflict = errors.New("storage conflict")
)

// Store is a synchronous string-keyed key-value store.
type Store interface {
	// Read returns the value under key, or nil when the key is absent.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write fully replaces the value under key.
	Write(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Update applies transform to the current value (nil when absent) and
	// writes the result back as a single check-and-set; a concurrent write
	// to the same key fails the update with ErrConflict.
	Update(ctx context.Context, key string, transform func([]byte) ([]byte, error)) error
}

// ReadCollection decodes the JSON array stored under key. An absent or
// unparsable value reads as the empty collection.
func ReadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// WriteCollection encodes records as a JSON array and fully replaces the
// prior contents of key.
func WriteCollection[T any](ctx context.Context, s Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, raw)
}

// UpdateCollection runs a read-modify-write cycle on the collection under key
// through Store.Update, so the whole cycle is a single check-and-set.
func UpdateCollection[T any](ctx context.Context, s Store, key string, mutate func([]T) ([]T, error)) error {
	return s.Update(ctx, key, func(raw []byte) ([]byte, error) {
		var records []T
		if len(raw) > 0 {
			// unparsable contents read as empty, same as ReadCollection
			_ = json.Unmarshal(raw, &records)
		}
		next, err := mutate(records)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []T{}
		}
		return json.Marshal(next)
	})
}
