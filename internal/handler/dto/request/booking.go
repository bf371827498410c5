package request

import (
	"strings"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

type AvailabilityRequest struct {
	EventTypeID int    `json:"eventTypeId" binding:"required"`
	Date        string `json:"date" binding:"required,isodate"`
	Duration    string `json:"duration" binding:"required"`
}

func (r AvailabilityRequest) ToInput() queries.SlotsForDateInput {
	return queries.SlotsForDateInput{
		EventTypeID: r.EventTypeID,
		Date:        r.Date,
		Duration:    booking.DurationCode(r.Duration),
	}
}

// AvailableDatesRequest takes a zero-based month, January = 0.
type AvailableDatesRequest struct {
	EventTypeID int    `json:"eventTypeId" binding:"required"`
	Month       *int   `json:"month" binding:"required,min=0,max=11"`
	Year        int    `json:"year" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
}

func (r AvailableDatesRequest) ToInput() queries.AvailableDatesInput {
	return queries.AvailableDatesInput{
		EventTypeID: r.EventTypeID,
		Month:       *r.Month,
		Year:        r.Year,
		Duration:    booking.DurationCode(r.Duration),
	}
}

type BookingCountRequest struct {
	EventTypeID int `json:"eventTypeId" binding:"required"`
}

// CreateBookingRequest has no required tags: missing fields are reported
// together by the reservation gateway.
type CreateBookingRequest struct {
	EventTypeID int    `json:"eventTypeId"`
	Date        string `json:"date" binding:"isodate"`
	Time        string `json:"time" binding:"clocktime"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

func (r CreateBookingRequest) ToDomain() booking.ReservationRequest {
	return booking.ReservationRequest{
		EventTypeID: r.EventTypeID,
		Date:        strings.TrimSpace(r.Date),
		Time:        strings.TrimSpace(r.Time),
		Duration:    booking.DurationCode(strings.TrimSpace(r.Duration)),
		Location:    r.Location,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Email:       strings.TrimSpace(r.Email),
		Phone:       r.Phone,
		Notes:       r.Notes,
	}
}
