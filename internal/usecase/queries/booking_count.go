package queries

import (
	"context"
	"net/http"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/shared"
)

const (
	MsgEventTypeRequired   = "Event type ID is required"
	MsgBookingsFetchFailed = "Failed to fetch bookings from Cal.com"
)

type BookingQueries interface {
	CountParticipants(ctx context.Context, eventTypeID int) (*BookingCountView, error)
}

// BookingSource lists provider bookings filtered by event type.
type BookingSource interface {
	FindByEventType(ctx context.Context, eventTypeID int) ([]booking.ExistingBooking, error)
}

type bookingQueriesImpl struct {
	source BookingSource
}

func NewBookingQueries(source BookingSource) BookingQueries {
	return &bookingQueriesImpl{source: source}
}

// CountParticipants sums attendees over active bookings. Unlike availability
// it does not fail open.
func (q *bookingQueriesImpl) CountParticipants(ctx context.Context, eventTypeID int) (*BookingCountView, error) {
	if eventTypeID == 0 {
		return nil, errs.NewValidationError(MsgEventTypeRequired)
	}
	bookings, err := q.source.FindByEventType(ctx, eventTypeID)
	if err != nil {
		return nil, shared.UpstreamFailure(err, MsgBookingsFetchFailed, http.StatusBadGateway)
	}
	return &BookingCountView{
		BookingCount: booking.CountParticipants(bookings, eventTypeID),
		EventTypeID:  eventTypeID,
	}, nil
}
