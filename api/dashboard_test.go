package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zvrva/hotelease/internal/domain"
	"github.com/zvrva/hotelease/internal/service/metrics"
)

// MockMetricsUseCase is a mock implementation of metrics.UseCase
type MockMetricsUseCase struct {
	mock.Mock
}

func (m *MockMetricsUseCase) Dashboard(ctx context.Context) (metrics.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(metrics.Dashboard), args.Error(1)
}

func (m *MockMetricsUseCase) BookingTrend(ctx context.Context) ([]metrics.TrendPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]metrics.TrendPoint), args.Error(1)
}

func (m *MockMetricsUseCase) RevenueTrend(ctx context.Context) ([]metrics.RevenuePoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]metrics.RevenuePoint), args.Error(1)
}

func TestDashboardHandler_dashboard(t *testing.T) {
	mockMetrics := &MockMetricsUseCase{}
	handler := NewDashboardHandler(mockMetrics, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/dashboard", nil)

	mockMetrics.On("Dashboard", c.Request.Context()).
		Return(metrics.Dashboard{ActiveCount: 2, OccupancyPercent: 1, TotalRevenue: 23100}, nil)

	handler.dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response metrics.Dashboard
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 2, response.ActiveCount)
	assert.Equal(t, 1, response.OccupancyPercent)
	assert.Equal(t, int64(23100), response.TotalRevenue)

	mockMetrics.AssertExpectations(t)
}

func TestDashboardHandler_bookingTrend(t *testing.T) {
	mockMetrics := &MockMetricsUseCase{}
	handler := NewDashboardHandler(mockMetrics, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/trends/bookings", nil)

	points := []metrics.TrendPoint{{Date: "2024-06-01", Label: "06-01", Count: 2}}
	mockMetrics.On("BookingTrend", c.Request.Context()).Return(points, nil)

	handler.bookingTrend(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []metrics.TrendPoint
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, points, response)

	mockMetrics.AssertExpectations(t)
}

func TestDashboardHandler_revenueTrend(t *testing.T) {
	mockMetrics := &MockMetricsUseCase{}
	handler := NewDashboardHandler(mockMetrics, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/trends/revenue", nil)

	points := []metrics.RevenuePoint{{Date: "2024-06-01", Label: "06-01", Revenue: 16500}}
	mockMetrics.On("RevenueTrend", c.Request.Context()).Return(points, nil)

	handler.revenueTrend(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []metrics.RevenuePoint
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, points, response)

	mockMetrics.AssertExpectations(t)
}

func TestDashboardHandler_exportCSV(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	handler := NewDashboardHandler(nil, mockBookings)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/export", nil)

	mockBookings.On("ListBookings", c.Request.Context()).Return([]domain.Booking{*sampleBooking()}, nil)

	handler.exportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hotel_bookings.csv")
	assert.Contains(t, w.Body.String(), "id,name,phone,roomType,checkIn,checkOut,nights,price,created")
	assert.Contains(t, w.Body.String(), `"Asha Rao"`)

	mockBookings.AssertExpectations(t)
}

func TestDashboardHandler_exportCSV_empty(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	handler := NewDashboardHandler(nil, mockBookings)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/export", nil)

	mockBookings.On("ListBookings", c.Request.Context()).Return([]domain.Booking{}, nil)

	handler.exportCSV(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockBookings.AssertExpectations(t)
}
