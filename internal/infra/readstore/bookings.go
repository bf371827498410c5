package readstore

import (
	"context"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/converter"
)

type BookingAPI interface {
	ListBookings(ctx context.Context, eventTypeID int) ([]calcom.Booking, error)
}

type BookingReadStore struct {
	api BookingAPI
}

func NewBookingReadStore(api BookingAPI) *BookingReadStore {
	return &BookingReadStore{api: api}
}

func (r *BookingReadStore) FindByEventType(ctx context.Context, eventTypeID int) ([]booking.ExistingBooking, error) {
	bookings, err := r.api.ListBookings(ctx, eventTypeID)
	if err != nil {
		return nil, err
	}
	return converter.ExistingBookingsFromInfra(bookings), nil
}
