package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/calendar"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/wizard"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/clock"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/patch"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/shared"
)

const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

// WizardView is a wizard together with everything derived from it for display.
type WizardView struct {
	Wizard *wizard.Wizard
	Quote  booking.Price
	Grid   calendar.Grid
	Steps  []wizard.StepSummary
	Today  time.Time
}

// WizardPatch holds the fields a booker edited. Nil fields are left as they
// are; fields are applied in declaration order so a new offering is chosen
// before its duration and location.
type WizardPatch struct {
	SessionKind  *booking.SessionKind
	Software     *booking.Software
	GroupEventID *int
	Duration     *booking.DurationCode
	Location     *string
	Date         *string
	Time         *string
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Notes        *string
	EmailBlurred bool
}

// NavigateInput moves the calendar by one month or jumps to Month/Year.
type NavigateInput struct {
	Direction string
	Month     *time.Month
	Year      *int
}

type SubmitResult struct {
	View       *WizardView
	Booking    json.RawMessage
	IsReplayed bool
}

type WizardCommands interface {
	Start(ctx context.Context) (*WizardView, error)
	Get(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Patch(ctx context.Context, id uuid.UUID, p WizardPatch) (*WizardView, error)
	Next(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Back(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Navigate(ctx context.Context, id uuid.UUID, in NavigateInput) (*WizardView, error)
	DismissNotice(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Submit(ctx context.Context, id uuid.UUID, idempotencyKey *uuid.UUID) (*SubmitResult, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type wizardUseCaseImpl struct {
	store         shared.SessionStore
	catalog       queries.CatalogQueries
	availability  queries.AvailabilityQueries
	bookings      queries.BookingQueries
	reservations  ReservationCommands
	prices        booking.PriceCalculator
	clock         clock.Clock
	loc           *time.Location
	successHold   time.Duration
	submitTimeout time.Duration
	logger        *slog.Logger
}

func NewWizardUseCase(
	store shared.SessionStore,
	catalog queries.CatalogQueries,
	availability queries.AvailabilityQueries,
	bookings queries.BookingQueries,
	reservations ReservationCommands,
	prices booking.PriceCalculator,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) WizardCommands {
	return &wizardUseCaseImpl{
		store:         store,
		catalog:       catalog,
		availability:  availability,
		bookings:      bookings,
		reservations:  reservations,
		prices:        prices,
		clock:         clock,
		loc:           cfg.Provider.Location(),
		successHold:   cfg.Wizard.SuccessHold,
		submitTimeout: cfg.Wizard.SubmitTimeout,
		logger:        logger,
	}
}

// Start opens a new session with the catalog already loaded. A catalog
// failure does not fail the session; it is shown inline instead.
func (u *wizardUseCaseImpl) Start(ctx context.Context) (*WizardView, error) {
	w := wizard.New(uuid.New(), u.clock.Now(), u.loc)

	offerings, err := u.catalog.ListOfferings(ctx)
	if err != nil {
		u.logger.Warn("catalog load failed for new wizard session",
			slog.String("session_id", w.ID().String()),
			slog.String("error", err.Error()))
	}
	w.ApplyCatalog(offerings, err)

	if err := u.store.Create(ctx, w); err != nil {
		return nil, u.storeError(err)
	}
	return u.view(w), nil
}

func (u *wizardUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	w, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, u.storeError(err)
	}
	if w.IsClosed(u.clock.Now()) {
		return nil, errs.ErrSessionNotFound
	}
	// shown as released; the lock itself is dropped by the next write
	w.ReleaseStaleSubmit(u.clock.Now(), u.submitTimeout)
	return u.view(w), nil
}

func (u *wizardUseCaseImpl) Patch(ctx context.Context, id uuid.UUID, p WizardPatch) (*WizardView, error) {
	now := u.clock.Now()
	return u.mutate(ctx, id, func(w *wizard.Wizard) error {
		return u.applyPatch(w, p, now)
	})
}

func (u *wizardUseCaseImpl) applyPatch(w *wizard.Wizard, p WizardPatch, now time.Time) error {
	if w.Flags().Submitting {
		return errs.ErrSubmissionInFlight
	}
	if p.SessionKind != nil {
		if err := w.SetSessionKind(*p.SessionKind); err != nil {
			return err
		}
	}
	if p.Software != nil {
		if err := w.SelectSoftware(*p.Software); err != nil {
			return err
		}
	}
	if p.GroupEventID != nil {
		if err := w.SelectGroupOffering(*p.GroupEventID); err != nil {
			return err
		}
	}
	if p.Duration != nil {
		if err := w.SelectDuration(*p.Duration); err != nil {
			return err
		}
	}
	if p.Location != nil {
		if err := w.SelectLocation(*p.Location); err != nil {
			return err
		}
	}
	if patch.Changed(p.Date, w.Draft().Date) {
		if err := w.SelectDate(*p.Date, now, u.loc); err != nil {
			return err
		}
	}
	if p.Time != nil {
		if err := w.SelectTime(*p.Time); err != nil {
			return err
		}
	}
	if p.FirstName != nil {
		w.SetFirstName(*p.FirstName)
	}
	if p.LastName != nil {
		w.SetLastName(*p.LastName)
	}
	if p.Email != nil {
		w.SetEmail(*p.Email)
	}
	if p.Phone != nil {
		w.SetPhone(*p.Phone)
	}
	if p.Notes != nil {
		w.SetNotes(*p.Notes)
	}
	if p.EmailBlurred {
		w.BlurEmail()
	}
	w.Rewind()
	return nil
}

func (u *wizardUseCaseImpl) Next(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *wizard.Wizard) error {
		return w.Next()
	})
}

func (u *wizardUseCaseImpl) Back(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *wizard.Wizard) error {
		return w.Back()
	})
}

func (u *wizardUseCaseImpl) Navigate(ctx context.Context, id uuid.UUID, in NavigateInput) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *wizard.Wizard) error {
		v, err := targetView(w.CalendarView(), in)
		if err != nil {
			return err
		}
		w.NavigateCalendar(v)
		return nil
	})
}

func targetView(current calendar.View, in NavigateInput) (calendar.View, error) {
	switch in.Direction {
	case DirectionPrev:
		return current.Prev(), nil
	case DirectionNext:
		return current.Next(), nil
	case "":
	default:
		return calendar.View{}, errs.Mark(errs.Newf("unknown direction %q", in.Direction), errs.ErrValidationFailed)
	}
	return calendar.NewView(patch.Coalesce(in.Month, current.Month), patch.Coalesce(in.Year, current.Year))
}

func (u *wizardUseCaseImpl) DismissNotice(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *wizard.Wizard) error {
		w.DismissNotice()
		return nil
	})
}

// Submit runs at most one reservation per session at a time. The submitting
// flag is persisted before the provider call, so a concurrent submit from any
// instance sees it and is refused. A flag whose outcome never gets recorded is
// released by update once the submit timeout passes.
func (u *wizardUseCaseImpl) Submit(ctx context.Context, id uuid.UUID, idempotencyKey *uuid.UUID) (*SubmitResult, error) {
	var req booking.ReservationRequest
	if _, err := u.update(ctx, id, func(w *wizard.Wizard) error {
		r, err := w.BeginSubmit(u.clock.Now())
		if err != nil {
			return err
		}
		req = r
		return nil
	}); err != nil {
		return nil, err
	}

	// the booker may go away mid-request; the outcome must still be recorded
	detached := context.WithoutCancel(ctx)
	created, submitErr := u.reservations.CreateReservation(detached, req, idempotencyKey)

	w, err := u.update(detached, id, func(w *wizard.Wizard) error {
		if submitErr != nil {
			msg, missing := submissionFailure(submitErr)
			w.FailSubmit(msg, missing)
			return nil
		}
		w.CompleteSubmit(u.clock.Now(), u.successHold)
		return nil
	})
	if err != nil {
		u.logger.Error("failed to record submission outcome",
			slog.String("session_id", id.String()),
			slog.Bool("reserved", submitErr == nil),
			slog.String("error", err.Error()))
		if submitErr != nil {
			return nil, submitErr
		}
		return nil, err
	}

	if submitErr != nil {
		return nil, submitErr
	}

	u.logger.Info("wizard booking submitted",
		slog.String("session_id", id.String()),
		slog.Int("event_type_id", req.EventTypeID),
		slog.Bool("replayed", created.IsReplayed))

	return &SubmitResult{View: u.view(w), Booking: created.Booking, IsReplayed: created.IsReplayed}, nil
}

// submissionFailure picks the text shown to the booker for a failed submission.
func submissionFailure(err error) (string, []string) {
	if v, ok := errs.AsValidation(err); ok {
		return v.Message, v.MissingFields
	}
	if up, ok := errs.AsUpstream(err); ok {
		return up.Message, nil
	}
	if errs.Is(err, errs.ErrNoSlotsAvailable) ||
		errs.Is(err, errs.ErrDuplicateReservation) ||
		errs.Is(err, errs.ErrIdempotencyInProgress) {
		return err.Error(), nil
	}
	return "", nil
}

func (u *wizardUseCaseImpl) Close(ctx context.Context, id uuid.UUID) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return u.storeError(err)
	}
	return nil
}

// mutate applies fn, then fetches whatever availability the change made stale
// and applies it in a second write. Results of queries overtaken by a later
// change are dropped by the wizard's tickets.
func (u *wizardUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, fn func(w *wizard.Wizard) error) (*WizardView, error) {
	var pending pendingQueries
	w, err := u.update(ctx, id, func(w *wizard.Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		pending = issueQueries(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if pending.empty() {
		return u.view(w), nil
	}

	results := u.fetch(ctx, w, pending)

	w, err = u.update(ctx, id, func(w *wizard.Wizard) error {
		results.apply(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.view(w), nil
}

// update is a retried optimistic write that also stamps the wizard.
func (u *wizardUseCaseImpl) update(ctx context.Context, id uuid.UUID, fn func(w *wizard.Wizard) error) (*wizard.Wizard, error) {
	w, err := shared.WithDefaultRetry(ctx, func(ctx context.Context) (*wizard.Wizard, error) {
		return u.store.Update(ctx, id, func(w *wizard.Wizard) error {
			now := u.clock.Now()
			if w.IsClosed(now) {
				return errs.ErrSessionNotFound
			}
			if w.ReleaseStaleSubmit(now, u.submitTimeout) {
				u.logger.Warn("released stale submission lock", slog.String("session_id", id.String()))
			}
			if err := fn(w); err != nil {
				return err
			}
			w.Touch(now)
			return nil
		})
	})
	if err != nil {
		return nil, u.storeError(err)
	}
	return w, nil
}

type pendingQueries struct {
	slots     *wizard.Ticket
	dates     *wizard.Ticket
	seatsFor  int
	needSeats bool
}

func (p pendingQueries) empty() bool {
	return p.slots == nil && p.dates == nil && !p.needSeats
}

// issueQueries takes tickets for every query whose inputs changed, and
// re-issues one left loading by an interrupted request.
func issueQueries(w *wizard.Wizard) pendingQueries {
	var p pendingQueries
	if t, ok := w.RefreshSlots(); ok {
		p.slots = &t
	} else if w.Flags().SlotsLoading {
		if t, ok := w.BeginSlotQuery(); ok {
			p.slots = &t
		}
	}
	if t, ok := w.RefreshDates(); ok {
		p.dates = &t
	} else if w.Flags().DatesLoading {
		if t, ok := w.BeginDatesQuery(); ok {
			p.dates = &t
		}
	}
	p.seatsFor, p.needSeats = w.NeedsSeatCount()
	return p
}

type fetchedResults struct {
	slotTicket  *wizard.Ticket
	slots       []string
	datesTicket *wizard.Ticket
	dates       []string
	seatsFor    int
	seats       *int
}

func (r fetchedResults) apply(w *wizard.Wizard) {
	if r.slotTicket != nil {
		w.ApplySlots(*r.slotTicket, r.slots)
	}
	if r.datesTicket != nil {
		w.ApplyAvailableDates(*r.datesTicket, r.dates)
	}
	if r.seats != nil {
		w.ApplyBookingCount(r.seatsFor, *r.seats)
	}
}

func (u *wizardUseCaseImpl) fetch(ctx context.Context, w *wizard.Wizard, p pendingQueries) fetchedResults {
	var r fetchedResults

	if p.slots != nil {
		raw, err := u.availability.SlotsForDate(ctx, queries.SlotsForDateInput{
			EventTypeID: p.slots.Key.OfferingID,
			Date:        p.slots.Key.Scope,
			Duration:    booking.CodeForMinutes(p.slots.Key.DurationMinutes),
		})
		if err != nil {
			u.logger.Warn("slot refresh failed", slog.String("session_id", w.ID().String()), slog.String("error", err.Error()))
			raw = nil
		}
		r.slotTicket = p.slots
		r.slots = clockTimes(raw, u.loc)
	}

	if p.dates != nil {
		view := w.CalendarView()
		dates, err := u.availability.AvailableDates(ctx, queries.AvailableDatesInput{
			EventTypeID: p.dates.Key.OfferingID,
			Month:       int(view.Month) - 1,
			Year:        view.Year,
			Duration:    booking.CodeForMinutes(p.dates.Key.DurationMinutes),
		})
		if err != nil {
			u.logger.Warn("available dates refresh failed", slog.String("session_id", w.ID().String()), slog.String("error", err.Error()))
			dates = []string{}
		}
		r.datesTicket = p.dates
		r.dates = dates
	}

	if p.needSeats {
		count, err := u.bookings.CountParticipants(ctx, p.seatsFor)
		if err != nil {
			u.logger.Warn("participant count failed",
				slog.String("session_id", w.ID().String()),
				slog.Int("event_type_id", p.seatsFor),
				slog.String("error", err.Error()))
		} else {
			r.seatsFor = p.seatsFor
			r.seats = &count.BookingCount
		}
	}
	return r
}

// clockTimes renders provider timestamps as sorted, distinct local "HH:MM" values.
func clockTimes(raw []string, loc *time.Location) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		c := queries.Clock(s, loc)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (u *wizardUseCaseImpl) view(w *wizard.Wizard) *WizardView {
	now := u.clock.Now()
	return &WizardView{
		Wizard: w,
		Quote:  w.Quote(u.prices),
		Grid:   w.CalendarGrid(now, u.loc),
		Steps:  w.StepInfo(),
		Today:  clock.Today(u.clock, u.loc),
	}
}

func (u *wizardUseCaseImpl) storeError(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrSessionNotFound)
	}
	if _, ok := infra.AsRepositoryError(err); ok {
		return errs.Mark(err, errs.ErrSessionStoreFailure)
	}
	return err
}
