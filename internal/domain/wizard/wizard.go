package wizard

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/calendar"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

const (
	EmailErrorMessage    = "Please enter a valid email address"
	MsgSubmitUnconfirmed = "We could not confirm your booking. Please check your email before booking again."
)

var ErrUnknownOffering = errs.Mark(errs.New("unknown offering"), errs.ErrValidationFailed)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

type Flags struct {
	CatalogLoading bool `json:"catalogLoading"`
	SlotsLoading   bool `json:"slotsLoading"`
	DatesLoading   bool `json:"datesLoading"`
	Submitting     bool `json:"submitting"`
}

// seatCount is the last participant count fetched for a seat-managed offering.
type seatCount struct {
	OfferingID int `json:"offeringId"`
	Count      int `json:"count"`
}

// Wizard owns one booking draft and drives it through the four steps.
type Wizard struct {
	id              uuid.UUID
	step            Step
	draft           *booking.Draft
	emailError      string
	catalog         booking.Catalog
	catalogError    string
	slots           []string
	availableDates  []string
	calendarView    calendar.View
	flags           Flags
	slotGeneration  uint64
	datesGeneration uint64
	lastSlotKey     *QueryKey
	lastDatesKey    *QueryKey
	seats           *seatCount
	notice          *Notice
	submitStartedAt *time.Time
	closesAt        *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func New(id uuid.UUID, now time.Time, loc *time.Location) *Wizard {
	return &Wizard{
		id:           id,
		step:         StepServiceSelection,
		draft:        booking.NewDraft(),
		calendarView: calendar.ViewOf(now.In(loc)),
		flags:        Flags{CatalogLoading: true},
		createdAt:    now,
		updatedAt:    now,
	}
}

func (w *Wizard) ID() uuid.UUID                { return w.id }
func (w *Wizard) Step() Step                   { return w.step }
func (w *Wizard) Draft() booking.DraftSnapshot { return w.draft.Snapshot() }
func (w *Wizard) EmailError() string           { return w.emailError }
func (w *Wizard) Catalog() booking.Catalog     { return w.catalog }
func (w *Wizard) CatalogError() string         { return w.catalogError }
func (w *Wizard) Slots() []string              { return w.slots }
func (w *Wizard) AvailableDates() []string     { return w.availableDates }
func (w *Wizard) CalendarView() calendar.View  { return w.calendarView }
func (w *Wizard) Flags() Flags                 { return w.flags }
func (w *Wizard) Notice() *Notice              { return w.notice }
func (w *Wizard) ClosesAt() *time.Time         { return w.closesAt }
func (w *Wizard) CreatedAt() time.Time         { return w.createdAt }
func (w *Wizard) UpdatedAt() time.Time         { return w.updatedAt }

func (w *Wizard) Touch(now time.Time) {
	w.updatedAt = now
}

// ApplyCatalog stores the offering list. A failed load leaves the wizard with
// no offerings and an inline error; a partial list is never kept.
func (w *Wizard) ApplyCatalog(catalog booking.Catalog, loadErr error) {
	w.flags.CatalogLoading = false
	if loadErr != nil {
		w.catalog = nil
		w.catalogError = booking.MsgCatalogUnavailable
		return
	}
	w.catalog = catalog
	w.catalogError = ""
	w.autofill()
}

// ActiveOffering resolves the selected offering from the catalog on every call.
func (w *Wizard) ActiveOffering() *booking.Offering {
	var (
		o  booking.Offering
		ok bool
	)
	if w.draft.IsGroup() {
		id := w.draft.GroupEventID()
		if id == nil {
			return nil
		}
		o, ok = w.catalog.FindByID(*id)
	} else {
		s := w.draft.Software()
		if s == nil {
			return nil
		}
		o, ok = w.catalog.FindBySlug(s.Slug())
	}
	if !ok {
		return nil
	}
	return &o
}

// autofill selects the only duration and the only location of the active offering.
func (w *Wizard) autofill() {
	o := w.ActiveOffering()
	if o == nil {
		return
	}
	if durations := o.Durations(); len(durations) == 1 && w.draft.Duration().IsZero() {
		_, _ = w.draft.SelectDuration(booking.CodeForMinutes(durations[0]))
	}
	if len(o.Locations) == 1 && w.draft.Location() == "" {
		l := o.Locations[0]
		w.draft.SelectLocation(l.Key(), l.Address)
	}
}

func (w *Wizard) SetSessionKind(kind booking.SessionKind) error {
	changed, err := w.draft.SetSessionKind(kind)
	if err != nil {
		return err
	}
	if changed {
		w.onScheduleScopeChanged()
	}
	return nil
}

func (w *Wizard) SelectSoftware(s booking.Software) error {
	changed, err := w.draft.SelectSoftware(s)
	if err != nil {
		return err
	}
	if changed {
		w.onScheduleScopeChanged()
		w.autofill()
	}
	return nil
}

func (w *Wizard) SelectGroupOffering(id int) error {
	if len(w.catalog) > 0 {
		o, ok := w.catalog.FindByID(id)
		if !ok || !o.IsGroup() {
			return ErrUnknownOffering
		}
	}
	changed, err := w.draft.SelectGroupOffering(id)
	if err != nil {
		return err
	}
	if changed {
		w.onScheduleScopeChanged()
		w.autofill()
	}
	return nil
}

func (w *Wizard) SelectDuration(code booking.DurationCode) error {
	if o := w.ActiveOffering(); o != nil && !o.SupportsDuration(code.Minutes()) {
		return booking.ErrInvalidDuration
	}
	changed, err := w.draft.SelectDuration(code)
	if err != nil {
		return err
	}
	if changed {
		w.onScheduleScopeChanged()
	}
	return nil
}

// SelectLocation stores the location key with the address of the matching
// offering location when one exists.
func (w *Wizard) SelectLocation(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		w.draft.SelectLocation("", "")
		return nil
	}
	o := w.ActiveOffering()
	if o == nil {
		w.draft.SelectLocation(key, "")
		return nil
	}
	l, ok := o.FindLocation(key)
	if !ok {
		return errs.Mark(errs.Newf("location %q is not offered", key), errs.ErrValidationFailed)
	}
	w.draft.SelectLocation(l.Key(), l.Address)
	return nil
}

// SelectDate accepts only a date the calendar would let the booker pick.
func (w *Wizard) SelectDate(iso string, now time.Time, loc *time.Location) error {
	if iso == "" {
		_, _ = w.draft.SelectDate("")
		w.slots = nil
		w.flags.SlotsLoading = false
		return nil
	}
	day, err := time.ParseInLocation(booking.DateLayout, iso, loc)
	if err != nil {
		return booking.ErrInvalidDate
	}
	grid := w.gridFor(calendar.ViewOf(day), now, loc)
	if _, err := grid.Select(iso); err != nil {
		return err
	}
	changed, err := w.draft.SelectDate(iso)
	if err != nil {
		return err
	}
	if changed {
		w.slots = nil
	}
	return nil
}

func (w *Wizard) SelectTime(clock string) error {
	if clock != "" && !contains(w.slots, clock) {
		return errs.Mark(errs.Newf("time %s is not available", clock), errs.ErrValidationFailed)
	}
	return w.draft.SelectTime(clock)
}

func (w *Wizard) SetFirstName(v string) { w.draft.SetFirstName(v) }
func (w *Wizard) SetLastName(v string)  { w.draft.SetLastName(v) }
func (w *Wizard) SetPhone(v string)     { w.draft.SetPhone(v) }
func (w *Wizard) SetNotes(v string)     { w.draft.SetNotes(v) }

// SetEmail validates on change.
func (w *Wizard) SetEmail(v string) {
	w.draft.SetEmail(v)
	w.validateEmail()
}

// BlurEmail validates when the field loses focus.
func (w *Wizard) BlurEmail() {
	w.validateEmail()
}

func (w *Wizard) validateEmail() {
	email := w.draft.Email()
	if email != "" && !booking.IsValidEmail(email) {
		w.emailError = EmailErrorMessage
		return
	}
	w.emailError = ""
}

func (w *Wizard) CanProceed() bool {
	return canLeave(w.step, w.draft.Snapshot(), w.emailError)
}

// Next advances one step when the current gate holds. Leaving the date step
// of a group booking delegates slot choice to the reservation gateway.
func (w *Wizard) Next() error {
	if w.flags.Submitting || !w.CanProceed() {
		return errs.ErrStepLocked
	}
	if w.step == StepDateTime && w.draft.IsGroup() {
		w.draft.DelegateGroupSlot()
	}
	w.step++
	return nil
}

func (w *Wizard) Back() error {
	if w.flags.Submitting || w.step <= StepServiceSelection {
		return errs.ErrStepLocked
	}
	w.step--
	return nil
}

// NavigateCalendar moves the displayed month and forgets the previous month's dates.
func (w *Wizard) NavigateCalendar(v calendar.View) {
	if v == w.calendarView {
		return
	}
	w.calendarView = v
	w.availableDates = nil
	w.flags.DatesLoading = false
}

// CalendarGrid renders the displayed month with the current availability.
func (w *Wizard) CalendarGrid(now time.Time, loc *time.Location) calendar.Grid {
	return w.gridFor(w.calendarView, now, loc)
}

func (w *Wizard) gridFor(v calendar.View, now time.Time, loc *time.Location) calendar.Grid {
	opts := calendar.Options{Today: now.In(loc), Selected: w.draft.Date()}
	if v == w.calendarView && w.availableDates != nil {
		opts.Available = calendar.AvailabilitySet(w.availableDates)
	}
	return calendar.BuildGrid(v, loc, opts)
}

// ApplyBookingCount records the participant count of a seat-managed offering.
func (w *Wizard) ApplyBookingCount(offeringID, count int) {
	w.seats = &seatCount{OfferingID: offeringID, Count: count}
}

// SeatsRemaining is known only for the active seat-managed offering.
func (w *Wizard) SeatsRemaining() *int {
	o := w.ActiveOffering()
	if o == nil || !o.HasSeats() || w.seats == nil || w.seats.OfferingID != o.ID {
		return nil
	}
	left := *o.SeatsPerTimeSlot - w.seats.Count
	if left < 0 {
		left = 0
	}
	return &left
}

// NeedsSeatCount reports whether the active offering is seat-managed and its
// participant count has not been fetched yet.
func (w *Wizard) NeedsSeatCount() (int, bool) {
	o := w.ActiveOffering()
	if o == nil || !o.HasSeats() {
		return 0, false
	}
	if w.seats != nil && w.seats.OfferingID == o.ID {
		return 0, false
	}
	return o.ID, true
}

// Quote prices the current selection.
func (w *Wizard) Quote(calc booking.PriceCalculator) booking.Price {
	return calc.Quote(w.draft.Kind(), w.draft.Duration(), w.ActiveOffering())
}

// Rewind moves the wizard back to the earliest step whose gate no longer
// holds. Call it once after a batch of edits, not per field, so a patch that
// replaces an offering together with its duration and location stays put.
func (w *Wizard) Rewind() {
	d := w.draft.Snapshot()
	for s := StepServiceSelection; s < w.step; s++ {
		if !canLeave(s, d, w.emailError) {
			w.step = s
			break
		}
	}
	// a group draft past the date step always has its slot delegated
	if w.draft.IsGroup() && w.step > StepDateTime && !w.draft.IsSlotDelegated() {
		w.draft.DelegateGroupSlot()
	}
}

// BeginSubmit locks the wizard for one submission and returns its request.
// Every earlier gate is checked again since any field can be edited at the
// overview.
func (w *Wizard) BeginSubmit(now time.Time) (booking.ReservationRequest, error) {
	if w.flags.Submitting {
		return booking.ReservationRequest{}, errs.ErrSubmissionInFlight
	}
	if w.step != StepOverview {
		return booking.ReservationRequest{}, errs.ErrStepLocked
	}
	d := w.draft.Snapshot()
	for s := StepServiceSelection; s < StepOverview; s++ {
		if !canLeave(s, d, w.emailError) {
			return booking.ReservationRequest{}, errs.Mark(errs.Newf("%s is incomplete", s), errs.ErrStepLocked)
		}
	}
	o := w.ActiveOffering()
	if o == nil {
		return booking.ReservationRequest{}, errs.ErrStepLocked
	}
	if w.draft.IsGroup() && !w.draft.IsSlotDelegated() {
		w.draft.DelegateGroupSlot()
	}
	w.flags.Submitting = true
	started := now
	w.submitStartedAt = &started
	w.notice = nil
	return w.draft.ReservationRequest(o.ID), nil
}

// ReleaseStaleSubmit drops a submission lock older than timeout. Its outcome
// was never recorded, so the booker is told to check before booking again.
func (w *Wizard) ReleaseStaleSubmit(now time.Time, timeout time.Duration) bool {
	if !w.flags.Submitting {
		return false
	}
	if w.submitStartedAt != nil && now.Sub(*w.submitStartedAt) < timeout {
		return false
	}
	w.flags.Submitting = false
	w.submitStartedAt = nil
	w.notice = &Notice{Kind: NoticeError, Message: MsgSubmitUnconfirmed}
	return true
}

// CompleteSubmit resets the draft and holds the success notice until closesAt.
func (w *Wizard) CompleteSubmit(now time.Time, hold time.Duration) {
	w.draft.Reset()
	w.step = StepServiceSelection
	w.emailError = ""
	w.slots = nil
	w.availableDates = nil
	w.seats = nil
	w.lastSlotKey = nil
	w.lastDatesKey = nil
	w.flags.Submitting = false
	w.submitStartedAt = nil
	w.flags.SlotsLoading = false
	w.flags.DatesLoading = false
	w.notice = &Notice{Kind: NoticeSuccess, Message: booking.MsgBookingConfirmed}
	closes := now.Add(hold)
	w.closesAt = &closes
}

// FailSubmit releases the submission lock and shows the error. Missing
// fields take precedence over the message.
func (w *Wizard) FailSubmit(message string, missingFields []string) {
	w.flags.Submitting = false
	w.submitStartedAt = nil
	if len(missingFields) > 0 {
		message = "Missing fields: " + strings.Join(missingFields, ", ")
	}
	if message == "" {
		message = booking.MsgTransportFailed
	}
	w.notice = &Notice{Kind: NoticeError, Message: message}
}

func (w *Wizard) DismissNotice() {
	w.notice = nil
}

// ExpiresIn is how long the stored session should live: until the end of the
// success hold once closing, the idle timeout otherwise.
func (w *Wizard) ExpiresIn(now time.Time, idle time.Duration) time.Duration {
	if w.closesAt == nil {
		return idle
	}
	left := w.closesAt.Sub(now)
	if left < time.Millisecond {
		return time.Millisecond
	}
	return left
}

// IsClosed reports whether the success hold has elapsed.
func (w *Wizard) IsClosed(now time.Time) bool {
	return w.closesAt != nil && !now.Before(*w.closesAt)
}

func (w *Wizard) onScheduleScopeChanged() {
	w.slots = nil
	w.availableDates = nil
	w.flags.SlotsLoading = false
	w.flags.DatesLoading = false
}
