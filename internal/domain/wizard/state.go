package wizard

import (
	"time"

	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/calendar"
)

// State is the persisted form of a Wizard.
type State struct {
	ID              uuid.UUID             `json:"id"`
	Step            Step                  `json:"step"`
	Draft           booking.DraftSnapshot `json:"draft"`
	EmailError      string                `json:"emailError,omitempty"`
	Catalog         booking.Catalog       `json:"catalog"`
	CatalogError    string                `json:"catalogError,omitempty"`
	Slots           []string              `json:"slots"`
	AvailableDates  []string              `json:"availableDates"`
	CalendarView    calendar.View         `json:"calendarView"`
	Flags           Flags                 `json:"flags"`
	SlotGeneration  uint64                `json:"slotGeneration"`
	DatesGeneration uint64                `json:"datesGeneration"`
	LastSlotKey     *QueryKey             `json:"lastSlotKey,omitempty"`
	LastDatesKey    *QueryKey             `json:"lastDatesKey,omitempty"`
	Seats           *seatCount            `json:"seats,omitempty"`
	Notice          *Notice               `json:"notice,omitempty"`
	SubmitStartedAt *time.Time            `json:"submitStartedAt,omitempty"`
	ClosesAt        *time.Time            `json:"closesAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func (w *Wizard) State() State {
	return State{
		ID:              w.id,
		Step:            w.step,
		Draft:           w.draft.Snapshot(),
		EmailError:      w.emailError,
		Catalog:         w.catalog,
		CatalogError:    w.catalogError,
		Slots:           w.slots,
		AvailableDates:  w.availableDates,
		CalendarView:    w.calendarView,
		Flags:           w.flags,
		SlotGeneration:  w.slotGeneration,
		DatesGeneration: w.datesGeneration,
		LastSlotKey:     w.lastSlotKey,
		LastDatesKey:    w.lastDatesKey,
		Seats:           w.seats,
		Notice:          w.notice,
		SubmitStartedAt: w.submitStartedAt,
		ClosesAt:        w.closesAt,
		CreatedAt:       w.createdAt,
		UpdatedAt:       w.updatedAt,
	}
}

// Restore rebuilds a Wizard from stored state. An out-of-range step falls
// back to the first one.
func Restore(s State) *Wizard {
	step := s.Step
	if !step.IsValid() {
		step = StepServiceSelection
	}
	return &Wizard{
		id:              s.ID,
		step:            step,
		draft:           booking.ReconstructDraft(s.Draft),
		emailError:      s.EmailError,
		catalog:         s.Catalog,
		catalogError:    s.CatalogError,
		slots:           s.Slots,
		availableDates:  s.AvailableDates,
		calendarView:    s.CalendarView,
		flags:           s.Flags,
		slotGeneration:  s.SlotGeneration,
		datesGeneration: s.DatesGeneration,
		lastSlotKey:     s.LastSlotKey,
		lastDatesKey:    s.LastDatesKey,
		seats:           s.Seats,
		notice:          s.Notice,
		submitStartedAt: s.SubmitStartedAt,
		closesAt:        s.ClosesAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}
