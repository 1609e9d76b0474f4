package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/zvrva/hotelease/config"
	"github.com/zvrva/hotelease/internal/domain"
)

const bookingsKey = "hotelease:bookings"

// RedisStore keeps the snapshot under a single key, the key-value analogue
// of the file slot. No TTL: bookings live until cancelled or cleared.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, bookingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Warn().Err(err).Str("key", bookingsKey).Msg("booking slot malformed, starting empty")
		return nil, nil
	}
	return bookings, nil
}

func (s *RedisStore) Save(ctx context.Context, bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	payload, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	if err := s.client.Set(ctx, bookingsKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, bookingsKey).Err(); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
