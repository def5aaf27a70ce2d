package memory

import (
	"context"
	"sync"

	"daily-trivia-service/internal/domain"
)

// UserStore is an in-memory implementation of app.UserStore, the default for
// tests and infrastructure-free development.
type UserStore struct {
	mu      sync.RWMutex
	records map[int64]domain.UserRecord
}

func NewUserStore() *UserStore {
	return &UserStore{records: make(map[int64]domain.UserRecord)}
}

func (s *UserStore) Get(_ context.Context, fid int64) (domain.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[fid]
	if !ok {
		return domain.UserRecord{}, domain.ErrUserNotFound
	}
	return rec.Clone(), nil
}

func (s *UserStore) Put(_ context.Context, rec domain.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.FID] = rec.Clone()
	return nil
}

func (s *UserStore) All(_ context.Context) ([]domain.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.UserRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	return out, nil
}
