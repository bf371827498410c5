package converter

import (
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
)

// ExistingBookingFromInfra drops bookings whose start time cannot be parsed
// since they can be neither joined nor dated.
func ExistingBookingFromInfra(b calcom.Booking) (booking.ExistingBooking, bool) {
	start, err := time.Parse(time.RFC3339, b.StartTime)
	if err != nil {
		return booking.ExistingBooking{}, false
	}
	eb := booking.ExistingBooking{
		ID:        b.ID,
		Status:    b.Status,
		StartTime: start,
		Attendees: len(b.Attendees),
	}
	if b.EventTypeID != nil {
		eb.EventTypeID = *b.EventTypeID
	}
	return eb, true
}

func ExistingBookingsFromInfra(bs []calcom.Booking) []booking.ExistingBooking {
	out := make([]booking.ExistingBooking, 0, len(bs))
	for _, b := range bs {
		if eb, ok := ExistingBookingFromInfra(b); ok {
			out = append(out, eb)
		}
	}
	return out
}
