package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/zvrva/hotelease/internal/domain"
)

const DateLayout = "2006-01-02"

var ErrInvalidStay = errors.New("check-out must be strictly after check-in")

// Quote is the priced result of a valid stay.
type Quote struct {
	Nights int
	Price  int64
}

// Calculate prices a stay: nights × nightly rate. It is pure and cheap
// enough to call on every form change. Returns ErrInvalidStay when either
// date is missing or malformed, or when checkOut is not after checkIn.
func Calculate(roomType domain.RoomType, checkIn, checkOut string) (Quote, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return Quote{}, ErrInvalidStay
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return Quote{}, ErrInvalidStay
	}
	if !out.After(in) {
		return Quote{}, ErrInvalidStay
	}

	nights := int(math.Round(out.Sub(in).Hours() / 24))
	return Quote{Nights: nights, Price: int64(nights) * roomType.Rate()}, nil
}
