package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/hotelease/internal/export"
	"github.com/zvrva/hotelease/internal/service/booking"
	"github.com/zvrva/hotelease/internal/service/metrics"
)

// DashboardHandler serves the derived views: headline figures, the two
// trend series and the CSV export.
type DashboardHandler struct {
	metrics  metrics.UseCase
	bookings booking.UseCase
}

func NewDashboardHandler(metricsSvc metrics.UseCase, bookingSvc booking.UseCase) *DashboardHandler {
	return &DashboardHandler{metrics: metricsSvc, bookings: bookingSvc}
}

func (h *DashboardHandler) Register(router *gin.RouterGroup) {
	router.GET("/dashboard", h.dashboard)
	router.GET("/trends/bookings", h.bookingTrend)
	router.GET("/trends/revenue", h.revenueTrend)
	router.GET("/export", h.exportCSV)
}

func (h *DashboardHandler) dashboard(c *gin.Context) {
	dash, err := h.metrics.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *DashboardHandler) bookingTrend(c *gin.Context) {
	points, err := h.metrics.BookingTrend(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) revenueTrend(c *gin.Context) {
	points, err := h.metrics.RevenueTrend(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) exportCSV(c *gin.Context) {
	bookings, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	csv, err := export.ToCSV(bookings)
	if err != nil {
		if errors.Is(err, export.ErrNoBookings) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="hotel_bookings.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
