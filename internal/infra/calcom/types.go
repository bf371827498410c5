package calcom

import (
	"bytes"
	"encoding/json"
	"time"
)

type Location struct {
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
	Link    string `json:"link,omitempty"`
}

type EventTypeMetadata struct {
	MultipleDuration []int `json:"multipleDuration"`
}

// EventType is the subset of a Cal.com event type this service reads.
type EventType struct {
	ID               int                `json:"id"`
	Slug             string             `json:"slug"`
	Title            string             `json:"title"`
	Description      *string            `json:"description"`
	Length           int                `json:"length"`
	Locations        []Location         `json:"locations"`
	SeatsPerTimeSlot *int               `json:"seatsPerTimeSlot"`
	Metadata         *EventTypeMetadata `json:"metadata"`
}

type eventTypesEnvelope struct {
	EventTypes json.RawMessage `json:"event_types"`
}

type eventTypeEnvelope struct {
	EventType *EventType `json:"event_type"`
}

// Slot is one open start time. The provider sends either {"time": "..."} or a bare string.
type Slot struct {
	Time string `json:"time"`
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &s.Time)
	}
	type plain Slot
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Slot(p)
	return nil
}

// Slots holds one of the two provider shapes: slots keyed by local date, or a flat list.
type Slots struct {
	ByDate map[string][]Slot
	Flat   []Slot
	keyed  bool
}

func (s *Slots) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return nil
	case trimmed[0] == '[':
		return json.Unmarshal(trimmed, &s.Flat)
	default:
		s.keyed = true
		return json.Unmarshal(trimmed, &s.ByDate)
	}
}

// IsKeyed reports whether the provider grouped slots by date.
func (s Slots) IsKeyed() bool {
	return s.keyed
}

type slotsEnvelope struct {
	Slots Slots `json:"slots"`
}

type Attendee struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Booking struct {
	ID          int        `json:"id"`
	EventTypeID *int       `json:"eventTypeId"`
	Status      string     `json:"status"`
	StartTime   string     `json:"startTime"`
	Attendees   []Attendee `json:"attendees"`
}

type bookingsEnvelope struct {
	Bookings []Booking `json:"bookings"`
}

// SlotQuery is a /slots request window.
type SlotQuery struct {
	EventTypeID     int
	Start           time.Time
	End             time.Time
	TimeZone        string
	DurationMinutes int
}

type BookingResponses struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Location            string `json:"location"`
	AttendeePhoneNumber string `json:"attendeePhoneNumber,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

type BookingMetadata struct {
	Duration string `json:"duration"`
}

// CreateBookingPayload is the POST /bookings body.
type CreateBookingPayload struct {
	EventTypeID int              `json:"eventTypeId"`
	Start       string           `json:"start"`
	Responses   BookingResponses `json:"responses"`
	Metadata    BookingMetadata  `json:"metadata"`
	TimeZone    string           `json:"timeZone"`
	Language    string           `json:"language"`
}
