package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/hotelease/internal/domain"
	"github.com/zvrva/hotelease/internal/pricing"
)

// PricingHandler quotes a stay without persisting anything. The form calls
// it on every relevant field change, so it stays a thin wrapper over the
// pure calculator.
type PricingHandler struct{}

type quoteResponse struct {
	RoomType string `json:"roomType"`
	Nights   int    `json:"nights"`
	Price    int64  `json:"price"`
}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

func (h *PricingHandler) Register(router *gin.RouterGroup) {
	router.GET("/pricing/quote", h.quote)
}

func (h *PricingHandler) quote(c *gin.Context) {
	roomType := c.Query("roomType")
	quote, err := pricing.Calculate(domain.RoomType(roomType), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quoteResponse{
		RoomType: roomType,
		Nights:   quote.Nights,
		Price:    quote.Price,
	})
}
