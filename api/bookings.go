package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/hotelease/internal/domain"
	"github.com/zvrva/hotelease/internal/service/booking"
)

type BookingHandler struct {
	service booking.UseCase
}

type bookingResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	RoomType string `json:"roomType"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
	Price    int64  `json:"price"`
	Created  string `json:"created"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:       b.ID,
		Name:     b.Name,
		Phone:    b.Phone,
		RoomType: string(b.RoomType),
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Nights:   b.Nights,
		Price:    b.Price,
		Created:  b.Created.Format(time.RFC3339),
	}
}

func NewBookingHandler(service booking.UseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.DELETE("/:id", h.cancel)
	router.DELETE("", h.clear)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.SubmitBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(*created))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	removed, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) clear(c *gin.Context) {
	if err := h.service.ClearBookings(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
