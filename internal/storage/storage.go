package storage

import (
	"context"

	"github.com/zvrva/hotelease/internal/domain"
)

// Store holds the booking collection as a single replaceable snapshot.
// Save always writes the whole collection; there are no per-record updates.
// Load recovers from absent or malformed persisted data by returning an
// empty collection instead of an error.
type Store interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
	Clear(ctx context.Context) error
}
