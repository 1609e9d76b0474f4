package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zvrva/hotelease/internal/domain"
	"github.com/zvrva/hotelease/internal/storage"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedStore(t *testing.T, bookings []domain.Booking) storage.Store {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), bookings))
	return store
}

func TestService_Dashboard_Empty(t *testing.T) {
	service := NewService(storage.NewMemoryStore())

	dash, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, dash.ActiveCount)
	assert.Equal(t, 0, dash.OccupancyPercent)
	assert.Equal(t, int64(0), dash.TotalRevenue)
}

func TestService_Dashboard_Occupancy(t *testing.T) {
	// Booking one is in progress on 2024-06-02, booking two has not started.
	bookings := []domain.Booking{
		{ID: "bk_1", CheckIn: "2024-06-01", CheckOut: "2024-06-03", Price: 16500},
		{ID: "bk_2", CheckIn: "2024-06-05", CheckOut: "2024-06-08", Price: 6600},
	}
	today := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	service := NewService(seedStore(t, bookings), WithClock(fixedClock(today)))

	dash, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, dash.ActiveCount)
	// 1 occupied of 120 rooms rounds to 1%
	assert.Equal(t, 1, dash.OccupancyPercent)
	assert.Equal(t, int64(23100), dash.TotalRevenue)
}

func TestService_Dashboard_CheckoutDayIsNotOccupied(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "bk_1", CheckIn: "2024-06-01", CheckOut: "2024-06-03", Price: 4400},
	}
	checkoutDay := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	service := NewService(seedStore(t, bookings), WithClock(fixedClock(checkoutDay)))

	dash, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, dash.OccupancyPercent)
}

func TestService_Dashboard_OccupancyRounding(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "bk_1", CheckIn: "2024-06-01", CheckOut: "2024-06-05", Price: 100},
	}
	today := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	service := NewService(
		seedStore(t, bookings),
		WithClock(fixedClock(today)),
		WithTotalRooms(3),
	)

	dash, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	// 1/3 of capacity rounds to 33%
	assert.Equal(t, 33, dash.OccupancyPercent)
}

func TestService_Dashboard_RevenueIsAllTime(t *testing.T) {
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{ID: "bk_1", CheckIn: "2023-01-02", CheckOut: "2023-01-05", Price: 9000, Created: old},
		{ID: "bk_2", CheckIn: "2024-06-01", CheckOut: "2024-06-02", Price: 2200, Created: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	service := NewService(seedStore(t, bookings), WithClock(fixedClock(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))))

	dash, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(11200), dash.TotalRevenue)
}

func TestService_BookingTrend(t *testing.T) {
	now := time.Date(2024, 6, 7, 15, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{ID: "bk_1", CheckIn: "2024-06-07"}, // today
		{ID: "bk_2", CheckIn: "2024-06-07"},
		{ID: "bk_3", CheckIn: "2024-06-01"}, // oldest day of the window
		{ID: "bk_4", CheckIn: "2024-05-31"}, // outside the window
		{ID: "bk_5", CheckIn: "2024-06-04"},
	}
	service := NewService(seedStore(t, bookings), WithClock(fixedClock(now)))

	points, err := service.BookingTrend(context.Background())

	require.NoError(t, err)
	require.Len(t, points, 7)
	assert.Equal(t, "2024-06-01", points[0].Date)
	assert.Equal(t, "06-01", points[0].Label)
	assert.Equal(t, 1, points[0].Count)
	assert.Equal(t, "2024-06-04", points[3].Date)
	assert.Equal(t, 1, points[3].Count)
	assert.Equal(t, "2024-06-07", points[6].Date)
	assert.Equal(t, 2, points[6].Count)

	total := 0
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, 4, total)
}

func TestService_BookingTrend_EmptyStillHasSevenPoints(t *testing.T) {
	service := NewService(storage.NewMemoryStore())

	points, err := service.BookingTrend(context.Background())

	require.NoError(t, err)
	require.Len(t, points, 7)
	for _, p := range points {
		assert.Equal(t, 0, p.Count)
	}
}

func TestService_RevenueTrend(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{ID: "bk_1", Price: 16500, Created: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
		{ID: "bk_2", Price: 2200, Created: time.Date(2024, 6, 10, 22, 0, 0, 0, time.UTC)},
		{ID: "bk_3", Price: 3000, Created: time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC)},  // oldest window day
		{ID: "bk_4", Price: 9999, Created: time.Date(2024, 5, 31, 1, 0, 0, 0, time.UTC)}, // outside
	}
	service := NewService(seedStore(t, bookings), WithClock(fixedClock(now)))

	points, err := service.RevenueTrend(context.Background())

	require.NoError(t, err)
	require.Len(t, points, 10)
	assert.Equal(t, "2024-06-01", points[0].Date)
	assert.Equal(t, int64(3000), points[0].Revenue)
	assert.Equal(t, "2024-06-10", points[9].Date)
	assert.Equal(t, int64(18700), points[9].Revenue)

	var total int64
	for _, p := range points {
		total += p.Revenue
	}
	assert.Equal(t, int64(21700), total)
}
