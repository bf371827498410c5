package booking

import (
	"sort"
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

const (
	BookingStatusAccepted = "ACCEPTED"
	BookingStatusPending  = "PENDING"

	msgBookerLimitExceeded = "booker_limit_exceeded_error"
	msgBookingInPast       = "Attempting to book a meeting in the past."

	MsgAlreadyBooked      = "You have already booked this session. Each person can only book once per group session."
	MsgSlotNoLongerFree   = "This booking time is no longer available. Please try again."
	MsgCreateFailed       = "Failed to create booking on Cal.com"
	MsgMissingFields      = "Missing required fields"
	MsgNoGroupSlots       = "No available slots for this group session"
	MsgBookingConfirmed   = "Booking confirmed! You will receive a confirmation email shortly."
	MsgBookingCreated     = "Booking created successfully!"
	MsgTransportFailed    = "Failed to create booking. Please try again."
	MsgCatalogUnavailable = "Failed to load available courses. Please refresh the page and try again."
)

// ReservationRequest is the input of the reservation gateway.
type ReservationRequest struct {
	EventTypeID int
	Date        string
	Time        string
	Duration    DurationCode
	Location    string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Notes       string
}

// IsGroup reports whether the slot is delegated to the gateway.
func (r ReservationRequest) IsGroup() bool {
	return r.Date == GroupSessionDate || r.Time == GroupSessionTime
}

// MissingFields lists every absent required field in a fixed order.
func (r ReservationRequest) MissingFields() []string {
	var missing []string
	if r.EventTypeID == 0 {
		missing = append(missing, "eventTypeId")
	}
	if !r.IsGroup() && r.Date == "" {
		missing = append(missing, "date")
	}
	if !r.IsGroup() && r.Time == "" {
		missing = append(missing, "time")
	}
	if r.Duration.IsZero() {
		missing = append(missing, "duration")
	}
	if r.Location == "" {
		missing = append(missing, "location")
	}
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

func (r ReservationRequest) Validate() error {
	if missing := r.MissingFields(); len(missing) > 0 {
		return errs.NewValidationError(MsgMissingFields, missing...)
	}
	return nil
}

func (r ReservationRequest) AttendeeName() string {
	return r.FirstName + " " + r.LastName
}

// IndividualStart composes the start instant from date and clock time in loc.
func (r ReservationRequest) IndividualStart(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" 15:04", r.Date+" "+r.Time, loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "parse start"), errs.ErrValidationFailed)
	}
	return t, nil
}

// ExistingBooking is a provider booking as seen by the reservation gateway.
type ExistingBooking struct {
	ID          int
	EventTypeID int
	Status      string
	StartTime   time.Time
	Attendees   int
}

func (b ExistingBooking) IsActiveFor(eventTypeID int) bool {
	return b.EventTypeID == eventTypeID &&
		(b.Status == BookingStatusAccepted || b.Status == BookingStatusPending)
}

// FirstActiveStart returns the start of the first active booking in provider order.
func FirstActiveStart(bookings []ExistingBooking, eventTypeID int) (time.Time, bool) {
	for _, b := range bookings {
		if b.IsActiveFor(eventTypeID) {
			return b.StartTime, true
		}
	}
	return time.Time{}, false
}

// CountParticipants sums attendees over active bookings; a booking without
// attendee data counts as one participant.
func CountParticipants(bookings []ExistingBooking, eventTypeID int) int {
	total := 0
	for _, b := range bookings {
		if !b.IsActiveFor(eventTypeID) {
			continue
		}
		if b.Attendees > 0 {
			total += b.Attendees
		} else {
			total++
		}
	}
	return total
}

// EarliestSlot picks the first slot of the earliest date key with any slots.
func EarliestSlot(slotsByDate map[string][]time.Time) (time.Time, bool) {
	keys := make([]string, 0, len(slotsByDate))
	for k := range slotsByDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if slots := slotsByDate[k]; len(slots) > 0 {
			return slots[0], true
		}
	}
	return time.Time{}, false
}

// RejectionMessage translates a provider error message into the text shown to the booker.
func RejectionMessage(providerMessage string) string {
	switch providerMessage {
	case msgBookerLimitExceeded:
		return MsgAlreadyBooked
	case msgBookingInPast:
		return MsgSlotNoLongerFree
	case "":
		return MsgCreateFailed
	default:
		return providerMessage
	}
}
