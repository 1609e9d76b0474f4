package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zvrva/hotelease/internal/domain"
)

// FileStore persists the snapshot as one JSON document on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written slot.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.path).Msg("booking slot unreadable, starting empty")
		}
		return nil, nil
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("booking slot malformed, starting empty")
		return nil, nil
	}
	return bookings, nil
}

func (s *FileStore) Save(_ context.Context, bookings []domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace bookings: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear bookings: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
