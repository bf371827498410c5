package queries

import (
	"sort"
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
)

// SlotWindow is one provider slot query.
type SlotWindow struct {
	EventTypeID     int
	Start           time.Time
	End             time.Time
	TimeZone        string
	DurationMinutes int
}

// SlotSet is a provider slot answer in either of its shapes: keyed by
// business-local date or a flat list of timestamps.
type SlotSet struct {
	Keyed  bool
	ByDate map[string][]string
	Flat   []string
}

// ForDate returns the timestamps for one date. A flat answer is already
// scoped to the queried window, so all of it is returned.
func (s SlotSet) ForDate(date string) []string {
	if s.Keyed {
		return s.ByDate[date]
	}
	return s.Flat
}

// Dates lists the dates with at least one slot, ascending. Flat timestamps
// are bucketed by their date in loc.
func (s SlotSet) Dates(loc *time.Location) []string {
	seen := make(map[string]struct{})
	if s.Keyed {
		for date, slots := range s.ByDate {
			if len(slots) > 0 {
				seen[date] = struct{}{}
			}
		}
	} else {
		for _, raw := range s.Flat {
			if t, ok := ParseSlotTime(raw); ok {
				seen[t.In(loc).Format(booking.DateLayout)] = struct{}{}
			}
		}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Grouped parses every timestamp and groups it by date key, each group sorted by time.
func (s SlotSet) Grouped(loc *time.Location) map[string][]time.Time {
	out := make(map[string][]time.Time)
	add := func(key, raw string) {
		if t, ok := ParseSlotTime(raw); ok {
			out[key] = append(out[key], t)
		}
	}
	if s.Keyed {
		for date, slots := range s.ByDate {
			for _, raw := range slots {
				add(date, raw)
			}
		}
	} else {
		for _, raw := range s.Flat {
			if t, ok := ParseSlotTime(raw); ok {
				add(t.In(loc).Format(booking.DateLayout), raw)
			}
		}
	}
	for key := range out {
		slots := out[key]
		sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	}
	return out
}

func ParseSlotTime(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clock renders a slot timestamp as local "HH:MM"; unparsable input is returned unchanged.
func Clock(raw string, loc *time.Location) string {
	t, ok := ParseSlotTime(raw)
	if !ok {
		return raw
	}
	return t.In(loc).Format("15:04")
}

type SlotsForDateInput struct {
	EventTypeID int
	Date        string
	Duration    booking.DurationCode
}

type AvailableDatesInput struct {
	EventTypeID int
	// Month is zero-based, January = 0.
	Month    int
	Year     int
	Duration booking.DurationCode
}

type BookingCountView struct {
	BookingCount int `json:"bookingCount"`
	EventTypeID  int `json:"eventTypeId"`
}
