//go:build unit || e2e

package builder

import (
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	reqdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/request"
)

type BookingBuilder struct {
	EventTypeID int
	Date        string
	Time        string
	Duration    string
	Location    string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Notes       string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		EventTypeID: PhotoshopID,
		Date:        "2025-03-14",
		Time:        "10:00",
		Duration:    string(booking.DurationOneHour),
		Location:    booking.LocationTypeInPerson,
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@lee.gr",
		Phone:       "6900000000",
	}
}

// Group turns the request into a group booking whose slot the gateway resolves.
func (b *BookingBuilder) Group() *BookingBuilder {
	b.EventTypeID = GroupID
	b.Date = booking.GroupSessionDate
	b.Time = booking.GroupSessionTime
	b.Duration = string(booking.DurationTwoHours)
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventTypeID: b.EventTypeID,
		Date:        b.Date,
		Time:        b.Time,
		Duration:    b.Duration,
		Location:    b.Location,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		Phone:       b.Phone,
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildDomain() booking.ReservationRequest {
	return b.BuildDTO().ToDomain()
}
