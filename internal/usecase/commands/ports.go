package commands

import (
	"context"
	"encoding/json"
	"time"
)

// ReservationPayload is a fully resolved booking ready for the provider.
type ReservationPayload struct {
	EventTypeID     int
	Start           time.Time
	AttendeeName    string
	Email           string
	Location        string
	Phone           string
	Notes           string
	DurationMinutes int
	TimeZone        string
	Language        string
}

type ReservationWriter interface {
	Create(ctx context.Context, p ReservationPayload) (json.RawMessage, error)
}

// EventTypeReader reads the seat capacity of one offering; nil means no seats.
type EventTypeReader interface {
	SeatsPerTimeSlot(ctx context.Context, eventTypeID int) (*int, error)
}
