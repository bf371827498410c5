package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

type AvailabilityQueries interface {
	// SlotsForDate returns provider slot timestamps for one local date.
	SlotsForDate(ctx context.Context, in SlotsForDateInput) ([]string, error)
	// AvailableDates returns the local dates of a month that have any slot.
	AvailableDates(ctx context.Context, in AvailableDatesInput) ([]string, error)
	// Location is the business time zone every window is computed in.
	Location() *time.Location
}

type SlotSource interface {
	FindSlots(ctx context.Context, w SlotWindow) (SlotSet, error)
}

type availabilityQueriesImpl struct {
	source SlotSource
	loc    *time.Location
	logger *slog.Logger
}

func NewAvailabilityQueries(source SlotSource, loc *time.Location, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{source: source, loc: loc, logger: logger}
}

func (q *availabilityQueriesImpl) Location() *time.Location {
	return q.loc
}

// SlotsForDate fails open: a provider failure is logged and yields no slots.
func (q *availabilityQueriesImpl) SlotsForDate(ctx context.Context, in SlotsForDateInput) ([]string, error) {
	if in.EventTypeID == 0 || in.Date == "" || in.Duration.IsZero() {
		return nil, errs.NewValidationError(booking.MsgMissingFields)
	}
	day, err := time.ParseInLocation(booking.DateLayout, in.Date, q.loc)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid date"), errs.ErrValidationFailed)
	}

	window := SlotWindow{
		EventTypeID:     in.EventTypeID,
		Start:           day,
		End:             time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, q.loc),
		TimeZone:        q.loc.String(),
		DurationMinutes: in.Duration.Minutes(),
	}
	set, err := q.source.FindSlots(ctx, window)
	if err != nil {
		q.failOpen("slots for date", in.EventTypeID, err)
		return []string{}, nil
	}

	slots := set.ForDate(in.Date)
	if slots == nil {
		return []string{}, nil
	}
	return slots, nil
}

// AvailableDates fails open like SlotsForDate.
func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, in AvailableDatesInput) ([]string, error) {
	if in.EventTypeID == 0 || in.Year == 0 || in.Duration.IsZero() {
		return nil, errs.NewValidationError(booking.MsgMissingFields)
	}
	if in.Month < 0 || in.Month > 11 {
		return nil, errs.Mark(errs.Newf("month %d out of range", in.Month), errs.ErrValidationFailed)
	}

	first := time.Date(in.Year, time.Month(in.Month+1), 1, 0, 0, 0, 0, q.loc)
	window := SlotWindow{
		EventTypeID:     in.EventTypeID,
		Start:           first,
		End:             first.AddDate(0, 1, 0).Add(-time.Millisecond),
		TimeZone:        q.loc.String(),
		DurationMinutes: in.Duration.Minutes(),
	}
	set, err := q.source.FindSlots(ctx, window)
	if err != nil {
		q.failOpen("available dates", in.EventTypeID, err)
		return []string{}, nil
	}
	return set.Dates(q.loc), nil
}

func (q *availabilityQueriesImpl) failOpen(op string, eventTypeID int, err error) {
	q.logger.Warn("availability query failed, returning no availability",
		slog.String("op", op),
		slog.Int("event_type_id", eventTypeID),
		slog.String("error", errs.Mark(err, errs.ErrAvailabilityQueryFailed).Error()))
}
