package writerepo

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
)

type BookingWriteAPI interface {
	CreateBooking(ctx context.Context, payload calcom.CreateBookingPayload) (json.RawMessage, error)
}

type ReservationRepository struct {
	api BookingWriteAPI
}

func NewReservationRepository(api BookingWriteAPI) *ReservationRepository {
	return &ReservationRepository{api: api}
}

func (r *ReservationRepository) Create(ctx context.Context, p commands.ReservationPayload) (json.RawMessage, error) {
	return r.api.CreateBooking(ctx, toCreateBookingPayload(p))
}

func toCreateBookingPayload(p commands.ReservationPayload) calcom.CreateBookingPayload {
	return calcom.CreateBookingPayload{
		EventTypeID: p.EventTypeID,
		Start:       p.Start.UTC().Format(calcom.ISOMillis),
		Responses: calcom.BookingResponses{
			Name:                p.AttendeeName,
			Email:               p.Email,
			Location:            p.Location,
			AttendeePhoneNumber: p.Phone,
			Notes:               p.Notes,
		},
		Metadata: calcom.BookingMetadata{
			Duration: strconv.Itoa(p.DurationMinutes),
		},
		TimeZone: p.TimeZone,
		Language: p.Language,
	}
}
