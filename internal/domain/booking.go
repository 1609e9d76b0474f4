package domain

import "time"

type RoomType string

const (
	RoomDeluxe   RoomType = "Deluxe"
	RoomSuite    RoomType = "Suite"
	RoomStandard RoomType = "Standard"
)

// Rate returns the nightly rate for the room type. An unknown room type
// prices at zero: a missing price list entry costs nothing, it does not fail.
func (r RoomType) Rate() int64 {
	switch r {
	case RoomDeluxe:
		return 3000
	case RoomSuite:
		return 5500
	case RoomStandard:
		return 2200
	default:
		return 0
	}
}

// Booking is immutable once created; a reservation change is always
// cancel-and-recreate. JSON field names are the persisted slot format.
type Booking struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	RoomType RoomType  `json:"roomType"`
	CheckIn  string    `json:"checkIn"`
	CheckOut string    `json:"checkOut"`
	Nights   int       `json:"nights"`
	Price    int64     `json:"price"`
	Created  time.Time `json:"created"`
}
