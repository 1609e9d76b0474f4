package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zvrva/hotelease/internal/domain"
	"github.com/zvrva/hotelease/internal/kafka"
	"github.com/zvrva/hotelease/internal/pricing"
	"github.com/zvrva/hotelease/internal/storage"
)

type UseCase interface {
	SubmitBooking(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (bool, error)
	ClearBookings(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SubmitBookingInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	RoomType string `json:"roomType"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type Service struct {
	store              storage.Store
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
	idSuffix           func() string
}

type Option func(*Service)

func WithProducer(producer Producer, bookingTopic string) Option {
	return func(s *Service) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) Option {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDSuffix(fn func() string) Option {
	return func(s *Service) {
		s.idSuffix = fn
	}
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		idSuffix: func() string {
			return uuid.NewString()[:8]
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitBooking validates, prices and persists a new booking. Validation is
// ordered: name, then phone, then dates; the first failure rejects the
// submission and nothing is written.
func (s *Service) SubmitBooking(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "guest name is required"}
	}

	phone := strings.TrimSpace(input.Phone)
	if !phonePattern.MatchString(phone) {
		return nil, &domain.ValidationError{Field: "phone", Reason: "phone must be exactly 10 digits"}
	}

	roomType := domain.RoomType(input.RoomType)
	quote, err := pricing.Calculate(roomType, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, &domain.ValidationError{Field: "dates", Reason: "check-out must be after check-in"}
	}

	now := s.now()
	booking := domain.Booking{
		// Time-based prefix keeps ids readable in creation order; the uuid
		// suffix keeps two submissions within the same millisecond distinct.
		ID:       fmt.Sprintf("bk_%d_%s", now.UnixMilli(), s.idSuffix()),
		Name:     name,
		Phone:    phone,
		RoomType: roomType,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Nights:   quote.Nights,
		Price:    quote.Price,
		Created:  now,
	}

	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	all = append(all, booking)
	if err := s.store.Save(ctx, all); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	s.publish(ctx, "booking_created", &booking)
	return &booking, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return all, nil
}

// CancelBooking removes the booking with the given id and reports whether
// anything was removed. Cancelling an unknown id is a no-op, not an error.
func (s *Service) CancelBooking(ctx context.Context, id string) (bool, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load bookings: %w", err)
	}

	kept := make([]domain.Booking, 0, len(all))
	var removed *domain.Booking
	for _, b := range all {
		if b.ID == id && removed == nil {
			cancelled := b
			removed = &cancelled
			continue
		}
		kept = append(kept, b)
	}
	if removed == nil {
		return false, nil
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return false, fmt.Errorf("save bookings: %w", err)
	}

	s.publish(ctx, "booking_cancelled", removed)
	return true, nil
}

func (s *Service) ClearBookings(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}

	s.publish(ctx, "bookings_cleared", nil)
	return nil
}

// publish is best-effort: a broker failure must never fail the mutation
// that already persisted.
func (s *Service) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	event := kafka.BookingEvent{Type: eventType}
	key := "bookings"
	if booking != nil {
		key = booking.ID
		event.ID = booking.ID
		event.Name = booking.Name
		event.RoomType = string(booking.RoomType)
		event.CheckIn = booking.CheckIn
		event.CheckOut = booking.CheckOut
		event.Nights = booking.Nights
		event.Price = booking.Price
		event.Created = booking.Created
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("publish booking event")
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Warn().Err(err).Str("event", eventType).Msg("publish notification event")
		}
	}
}

var _ UseCase = (*Service)(nil)
