package storage

import (
	"context"
	"sync"

	"github.com/zvrva/hotelease/internal/domain"
)

// MemoryStore keeps the snapshot in process memory. Used by tests and the
// "memory" backend, where bookings do not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, bookings []domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = make([]domain.Booking, len(bookings))
	copy(s.bookings, bookings)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = nil
	return nil
}

var _ Store = (*MemoryStore)(nil)
