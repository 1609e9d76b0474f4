package notify

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/zvrva/hotelease/internal/kafka"
)

// Sink delivers guest notifications for booking events. The demo sink only
// logs; a real deployment would plug in SMS or email here.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Notify(_ context.Context, event kafka.BookingEvent) error {
	log.Info().
		Str("event", event.Type).
		Str("booking", event.ID).
		Str("guest", event.Name).
		Str("room", event.RoomType).
		Msg("guest notification")
	return nil
}
