package wizard

import (
	"fmt"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/calendar"
)

// QueryKey identifies the inputs an availability result was computed for.
type QueryKey struct {
	OfferingID      int    `json:"offeringId"`
	Scope           string `json:"scope"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Ticket tags one issued availability query. A result is applied only while
// its ticket is still the newest and its key still matches the draft.
type Ticket struct {
	Generation uint64   `json:"generation"`
	Key        QueryKey `json:"key"`
}

func monthScope(v calendar.View) string {
	return fmt.Sprintf("%04d-%02d", v.Year, int(v.Month))
}

func (w *Wizard) slotKey() (QueryKey, bool) {
	offering := w.ActiveOffering()
	d := w.draft
	if offering == nil || d.Duration().IsZero() || d.Date() == "" || d.IsSlotDelegated() {
		return QueryKey{}, false
	}
	return QueryKey{OfferingID: offering.ID, Scope: d.Date(), DurationMinutes: d.Duration().Minutes()}, true
}

func (w *Wizard) datesKey() (QueryKey, bool) {
	offering := w.ActiveOffering()
	if offering == nil || w.draft.Duration().IsZero() || w.calendarView.IsZero() {
		return QueryKey{}, false
	}
	return QueryKey{
		OfferingID:      offering.ID,
		Scope:           monthScope(w.calendarView),
		DurationMinutes: w.draft.Duration().Minutes(),
	}, true
}

// BeginSlotQuery issues a ticket for the slot list of the current date. When
// the draft cannot be queried yet the slot list is cleared and ok is false.
func (w *Wizard) BeginSlotQuery() (Ticket, bool) {
	key, ok := w.slotKey()
	if !ok {
		w.slots = nil
		w.flags.SlotsLoading = false
		return Ticket{}, false
	}
	w.slotGeneration++
	w.flags.SlotsLoading = true
	w.lastSlotKey = &key
	return Ticket{Generation: w.slotGeneration, Key: key}, true
}

// RefreshSlots issues a slot ticket only when the slot key changed since the last one.
func (w *Wizard) RefreshSlots() (Ticket, bool) {
	key, ok := w.slotKey()
	if ok && w.lastSlotKey != nil && *w.lastSlotKey == key {
		return Ticket{}, false
	}
	if !ok {
		w.lastSlotKey = nil
	}
	return w.BeginSlotQuery()
}

// ApplySlots stores a slot list unless a newer query was issued or the draft
// moved on; it reports whether the result was applied.
func (w *Wizard) ApplySlots(t Ticket, slots []string) bool {
	current, ok := w.slotKey()
	if t.Generation != w.slotGeneration || !ok || current != t.Key {
		return false
	}
	w.slots = append([]string{}, slots...)
	w.flags.SlotsLoading = false
	if w.draft.Time() != "" && !contains(w.slots, w.draft.Time()) {
		_ = w.draft.SelectTime("")
	}
	return true
}

// SlotQueryPending reports whether the current slot key has no applied result yet.
func (w *Wizard) SlotQueryPending() bool {
	return w.flags.SlotsLoading
}

// BeginDatesQuery issues a ticket for the available dates of the displayed month.
func (w *Wizard) BeginDatesQuery() (Ticket, bool) {
	key, ok := w.datesKey()
	if !ok {
		w.availableDates = nil
		w.flags.DatesLoading = false
		return Ticket{}, false
	}
	w.datesGeneration++
	w.flags.DatesLoading = true
	w.lastDatesKey = &key
	return Ticket{Generation: w.datesGeneration, Key: key}, true
}

// RefreshDates issues a dates ticket only when the month key changed since the last one.
func (w *Wizard) RefreshDates() (Ticket, bool) {
	key, ok := w.datesKey()
	if ok && w.lastDatesKey != nil && *w.lastDatesKey == key {
		return Ticket{}, false
	}
	if !ok {
		w.lastDatesKey = nil
	}
	return w.BeginDatesQuery()
}

func (w *Wizard) ApplyAvailableDates(t Ticket, dates []string) bool {
	current, ok := w.datesKey()
	if t.Generation != w.datesGeneration || !ok || current != t.Key {
		return false
	}
	w.availableDates = append([]string{}, dates...)
	w.flags.DatesLoading = false
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
