package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"daily-trivia-service/internal/domain"
)

// UserStore persists user records in a single JSON file keyed by stringified
// fid. A missing or corrupt file reads as an empty store; write failures
// propagate to the caller instead of silently dropping the update.
type UserStore struct {
	path string

	mu      sync.RWMutex
	records map[int64]domain.UserRecord
}

func NewUserStore(path string) (*UserStore, error) {
	store := &UserStore{
		path:    path,
		records: make(map[int64]domain.UserRecord),
	}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
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

	previous, existed := s.records[rec.FID]
	s.records[rec.FID] = rec.Clone()
	if err := s.persistLocked(); err != nil {
		// Roll back so memory never claims a write the disk rejected.
		if existed {
			s.records[rec.FID] = previous
		} else {
			delete(s.records, rec.FID)
		}
		return err
	}
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

func (s *UserStore) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read user store %s: %w", s.path, err)
	}

	keyed := make(map[string]domain.UserRecord)
	if err := json.Unmarshal(raw, &keyed); err != nil {
		// Corrupt store is treated as "no users yet", not a fatal error.
		log.Printf("user store %s unreadable, starting empty: %v", s.path, err)
		return nil
	}

	for key, rec := range keyed {
		fid, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			log.Printf("user store %s: skipping bad key %q", s.path, key)
			continue
		}
		rec.FID = fid
		if rec.AnswerHistory == nil {
			rec.AnswerHistory = make(map[domain.DayKey]domain.AnswerRecord)
		}
		s.records[fid] = rec
	}
	return nil
}

// persistLocked rewrites the whole file through a temp-file rename, so a
// crash mid-write never leaves a truncated store behind.
func (s *UserStore) persistLocked() error {
	keyed := make(map[string]domain.UserRecord, len(s.records))
	for fid, rec := range s.records {
		keyed[strconv.FormatInt(fid, 10)] = rec
	}

	raw, err := json.MarshalIndent(keyed, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("write user store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write user store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write user store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write user store: %w", err)
	}
	return nil
}
