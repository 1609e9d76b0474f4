package export

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/zvrva/hotelease/internal/domain"
)

var ErrNoBookings = errors.New("no bookings to export")

// Header is the fixed column order of the export format.
var Header = []string{"id", "name", "phone", "roomType", "checkIn", "checkOut", "nights", "price", "created"}

// ToCSV renders the collection in insertion order, one row per booking.
// Every field is double-quoted with inner quotes doubled, so values
// containing commas or quotes survive a round trip. Returns ErrNoBookings
// for an empty collection.
func ToCSV(bookings []domain.Booking) (string, error) {
	if len(bookings) == 0 {
		return "", ErrNoBookings
	}

	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	for _, bk := range bookings {
		created := ""
		if !bk.Created.IsZero() {
			created = bk.Created.Format(time.RFC3339)
		}
		row := []string{
			bk.ID,
			bk.Name,
			bk.Phone,
			string(bk.RoomType),
			bk.CheckIn,
			bk.CheckOut,
			strconv.Itoa(bk.Nights),
			strconv.FormatInt(bk.Price, 10),
			created,
		}
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String(), nil
}
