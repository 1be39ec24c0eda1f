package repository

import (
	"context"
	"encoding/json"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

const sessionKeyPrefix = "maintenox:session:"

// SessionStore implements ports.SessionStore on a storage.Store. Session
// records carry no expiry; they live until Clear removes them at logout.
type SessionStore struct {
	store storage.Store
}

func NewSessionStore(store storage.Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Write(ctx, sessionKeyPrefix+session.ID, raw)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.store.Read(ctx, sessionKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, nil
	}
	return &session, nil
}

func (s *SessionStore) Clear(ctx context.Context, id string) error {
	return s.store.Delete(ctx, sessionKeyPrefix+id)
}
