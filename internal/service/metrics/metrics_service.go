package metrics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zvrva/hotelease/internal/pricing"
	"github.com/zvrva/hotelease/internal/storage"
)

// DefaultTotalRooms is the fixed hotel capacity occupancy is measured
// against. It is configuration, not derived from data.
const DefaultTotalRooms = 120

const (
	bookingTrendDays = 7
	revenueTrendDays = 10
)

type UseCase interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	BookingTrend(ctx context.Context) ([]TrendPoint, error)
	RevenueTrend(ctx context.Context) ([]RevenuePoint, error)
}

type Dashboard struct {
	ActiveCount      int   `json:"activeCount"`
	OccupancyPercent int   `json:"occupancyPercent"`
	TotalRevenue     int64 `json:"totalRevenue"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type RevenuePoint struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
}

// Service derives every dashboard figure from the current snapshot on each
// call. There is no cached state: the output always reflects the store.
type Service struct {
	store      storage.Store
	totalRooms int
	now        func() time.Time
}

type Option func(*Service)

func WithTotalRooms(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.totalRooms = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		totalRooms: DefaultTotalRooms,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dashboard returns the headline figures. Revenue is the all-time sum of
// booking prices. A room counts as occupied when checkIn <= today < checkOut;
// both sides are zero-padded ISO dates, so string order is date order.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load bookings: %w", err)
	}

	today := s.now().Format(pricing.DateLayout)
	occupied := 0
	var revenue int64
	for _, b := range all {
		revenue += b.Price
		if b.CheckIn <= today && today < b.CheckOut {
			occupied++
		}
	}

	percent := 0
	if s.totalRooms > 0 {
		percent = int(math.Round(float64(occupied) / float64(s.totalRooms) * 100))
	}

	return Dashboard{
		ActiveCount:      len(all),
		OccupancyPercent: percent,
		TotalRevenue:     revenue,
	}, nil
}

// BookingTrend counts bookings by check-in date over the last 7 calendar
// days, oldest first, today included.
func (s *Service) BookingTrend(ctx context.Context) ([]TrendPoint, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	points := make([]TrendPoint, 0, bookingTrendDays)
	for _, day := range s.lastDays(bookingTrendDays) {
		key := day.Format(pricing.DateLayout)
		count := 0
		for _, b := range all {
			if b.CheckIn == key {
				count++
			}
		}
		points = append(points, TrendPoint{Date: key, Label: day.Format("01-02"), Count: count})
	}
	return points, nil
}

// RevenueTrend sums booking prices by creation date over the last 10
// calendar days, oldest first, today included.
func (s *Service) RevenueTrend(ctx context.Context) ([]RevenuePoint, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	points := make([]RevenuePoint, 0, revenueTrendDays)
	for _, day := range s.lastDays(revenueTrendDays) {
		key := day.Format(pricing.DateLayout)
		var sum int64
		for _, b := range all {
			if b.Created.Format(pricing.DateLayout) == key {
				sum += b.Price
			}
		}
		points = append(points, RevenuePoint{Date: key, Label: day.Format("01-02"), Revenue: sum})
	}
	return points, nil
}

func (s *Service) lastDays(n int) []time.Time {
	now := s.now()
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i))
	}
	return days
}

var _ UseCase = (*Service)(nil)
