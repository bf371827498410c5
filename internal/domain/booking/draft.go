package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

type SessionKind string

const (
	SessionKindIndividual SessionKind = "individual"
	SessionKindGroup      SessionKind = "group"

	// sentinels marking a group draft whose slot is resolved at submission
	GroupSessionDate = "group-session"
	GroupSessionTime = "scheduled"

	DateLayout = "2006-01-02"
)

var (
	ErrInvalidSessionKind = errs.Mark(errs.New("invalid session kind"), errs.ErrValidationFailed)
	ErrInvalidSoftware    = errs.Mark(errs.New("invalid software"), errs.ErrValidationFailed)
	ErrWrongSessionKind   = errs.Mark(errs.New("selection does not match session kind"), errs.ErrValidationFailed)
	ErrInvalidDuration    = errs.Mark(errs.New("invalid duration"), errs.ErrValidationFailed)
	ErrInvalidDate        = errs.Mark(errs.New("invalid date"), errs.ErrValidationFailed)
	ErrInvalidTime        = errs.Mark(errs.New("invalid time"), errs.ErrValidationFailed)
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (k SessionKind) IsValid() bool {
	return k == SessionKindIndividual || k == SessionKindGroup
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Draft is the in-progress booking owned by one wizard. Exactly one of
// software and groupEventID is set, according to kind.
type Draft struct {
	kind            SessionKind
	software        *Software
	groupEventID    *int
	duration        DurationCode
	location        string
	locationAddress string
	date            string
	time            string
	firstName       string
	lastName        string
	email           string
	phone           string
	notes           string
}

func NewDraft() *Draft {
	return &Draft{kind: SessionKindIndividual}
}

// DraftSnapshot is the serialized form of a Draft.
type DraftSnapshot struct {
	SessionKind     SessionKind  `json:"sessionKind"`
	Software        *Software    `json:"software"`
	GroupEventID    *int         `json:"groupEventId"`
	Duration        DurationCode `json:"duration,omitempty"`
	Location        string       `json:"location,omitempty"`
	LocationAddress string       `json:"locationAddress,omitempty"`
	Date            string       `json:"date,omitempty"`
	Time            string       `json:"time,omitempty"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Notes           string       `json:"notes"`
}

func (d *Draft) Snapshot() DraftSnapshot {
	return DraftSnapshot{
		SessionKind:     d.kind,
		Software:        copyPtr(d.software),
		GroupEventID:    copyPtr(d.groupEventID),
		Duration:        d.duration,
		Location:        d.location,
		LocationAddress: d.locationAddress,
		Date:            d.date,
		Time:            d.time,
		FirstName:       d.firstName,
		LastName:        d.lastName,
		Email:           d.email,
		Phone:           d.phone,
		Notes:           d.notes,
	}
}

// ReconstructDraft restores a draft, dropping the identity field that does not
// belong to the stored session kind.
func ReconstructDraft(s DraftSnapshot) *Draft {
	d := &Draft{
		kind:            s.SessionKind,
		duration:        s.Duration,
		location:        s.Location,
		locationAddress: s.LocationAddress,
		date:            s.Date,
		time:            s.Time,
		firstName:       s.FirstName,
		lastName:        s.LastName,
		email:           s.Email,
		phone:           s.Phone,
		notes:           s.Notes,
	}
	if !d.kind.IsValid() {
		d.kind = SessionKindIndividual
	}
	if d.kind == SessionKindIndividual {
		d.software = copyPtr(s.Software)
	} else {
		d.groupEventID = copyPtr(s.GroupEventID)
	}
	return d
}

func (d *Draft) Kind() SessionKind       { return d.kind }
func (d *Draft) Software() *Software     { return copyPtr(d.software) }
func (d *Draft) GroupEventID() *int      { return copyPtr(d.groupEventID) }
func (d *Draft) Duration() DurationCode  { return d.duration }
func (d *Draft) Location() string        { return d.location }
func (d *Draft) LocationAddress() string { return d.locationAddress }
func (d *Draft) Date() string            { return d.date }
func (d *Draft) Time() string            { return d.time }
func (d *Draft) FirstName() string       { return d.firstName }
func (d *Draft) LastName() string        { return d.lastName }
func (d *Draft) Email() string           { return d.email }
func (d *Draft) Phone() string           { return d.phone }
func (d *Draft) Notes() string           { return d.notes }
func (d *Draft) IsGroup() bool           { return d.kind == SessionKindGroup }
func (d *Draft) HasSelection() bool      { return d.software != nil || d.groupEventID != nil }
func (d *Draft) IsSlotDelegated() bool {
	return d.date == GroupSessionDate && d.time == GroupSessionTime
}
func (d *Draft) FullName() string    { return d.firstName + " " + d.lastName }
func (d *Draft) HasValidEmail() bool { return IsValidEmail(d.email) }
func (d *Draft) HasContactDetails() bool {
	return d.firstName != "" && d.lastName != "" && d.email != ""
}
func (d *Draft) HasDateAndTime() bool { return d.date != "" && d.time != "" }
func (d *Draft) HasServiceSelection() bool {
	return d.HasSelection() && !d.duration.IsZero() && d.location != ""
}

// SetSessionKind switches between individual and group bookings. Switching
// clears the other identity field and every selection scoped to it.
func (d *Draft) SetSessionKind(kind SessionKind) (bool, error) {
	if !kind.IsValid() {
		return false, ErrInvalidSessionKind
	}
	if kind == d.kind {
		return false, nil
	}
	d.kind = kind
	d.software = nil
	d.groupEventID = nil
	d.clearOfferingScope()
	return true, nil
}

func (d *Draft) SelectSoftware(s Software) (bool, error) {
	if !s.IsValid() {
		return false, ErrInvalidSoftware
	}
	if d.kind != SessionKindIndividual {
		return false, ErrWrongSessionKind
	}
	if d.software != nil && *d.software == s {
		return false, nil
	}
	d.software = &s
	d.clearOfferingScope()
	return true, nil
}

func (d *Draft) SelectGroupOffering(id int) (bool, error) {
	if d.kind != SessionKindGroup {
		return false, ErrWrongSessionKind
	}
	if d.groupEventID != nil && *d.groupEventID == id {
		return false, nil
	}
	d.groupEventID = &id
	d.clearOfferingScope()
	return true, nil
}

func (d *Draft) SelectDuration(code DurationCode) (bool, error) {
	if code.IsZero() {
		return false, ErrInvalidDuration
	}
	if code == d.duration {
		return false, nil
	}
	d.duration = code
	d.clearSchedule()
	return true, nil
}

func (d *Draft) SelectLocation(key, address string) {
	d.location = key
	d.locationAddress = address
}

func (d *Draft) SelectDate(date string) (bool, error) {
	if date == "" {
		d.clearSchedule()
		return true, nil
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return false, ErrInvalidDate
	}
	if date == d.date {
		return false, nil
	}
	d.date = date
	d.time = ""
	return true, nil
}

func (d *Draft) SelectTime(clock string) error {
	if clock == "" {
		d.time = ""
		return nil
	}
	if _, ok := ParseClock(clock); !ok {
		return ErrInvalidTime
	}
	d.time = clock
	return nil
}

// DelegateGroupSlot marks the group draft as resolved by the reservation gateway.
func (d *Draft) DelegateGroupSlot() {
	d.date = GroupSessionDate
	d.time = GroupSessionTime
}

func (d *Draft) SetFirstName(v string) { d.firstName = CapitalizeFirst(v) }
func (d *Draft) SetLastName(v string)  { d.lastName = CapitalizeFirst(v) }
func (d *Draft) SetEmail(v string)     { d.email = v }
func (d *Draft) SetNotes(v string)     { d.notes = v }

// SetPhone keeps digits only.
func (d *Draft) SetPhone(v string) {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d.phone = b.String()
}

func (d *Draft) Reset() {
	*d = *NewDraft()
}

// ReservationRequest builds the gateway request for the given offering id.
func (d *Draft) ReservationRequest(offeringID int) ReservationRequest {
	return ReservationRequest{
		EventTypeID: offeringID,
		Date:        d.date,
		Time:        d.time,
		Duration:    d.duration,
		Location:    d.location,
		FirstName:   d.firstName,
		LastName:    d.lastName,
		Email:       d.email,
		Phone:       d.phone,
		Notes:       d.notes,
	}
}

func (d *Draft) clearOfferingScope() {
	d.duration = ""
	d.location = ""
	d.locationAddress = ""
	d.clearSchedule()
}

func (d *Draft) clearSchedule() {
	d.date = ""
	d.time = ""
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
