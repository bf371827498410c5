package response

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/calendar"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/wizard"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
)

type DraftResponse struct {
	SessionKind     string `json:"sessionKind"`
	Software        string `json:"software,omitempty"`
	GroupEventID    *int   `json:"groupEventId,omitempty"`
	Duration        string `json:"duration,omitempty"`
	Location        string `json:"location,omitempty"`
	LocationAddress string `json:"locationAddress,omitempty"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes"`
}

type CellResponse struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	CurrentMonth bool   `json:"currentMonth"`
	Weekend      bool   `json:"weekend"`
	Disabled     bool   `json:"disabled"`
	Today        bool   `json:"today"`
	Selected     bool   `json:"selected"`
}

// CalendarResponse reports the month as 1-12.
type CalendarResponse struct {
	Month         int            `json:"month"`
	Year          int            `json:"year"`
	MonthName     string         `json:"monthName"`
	WeekdayLabels []string       `json:"weekdayLabels"`
	YearOptions   []int          `json:"yearOptions"`
	Cells         []CellResponse `json:"cells"`
}

type StepResponse struct {
	Number     int      `json:"number"`
	Title      string   `json:"title"`
	Active     bool     `json:"active"`
	Completed  bool     `json:"completed"`
	Selections []string `json:"selections"`
}

type NoticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type FlagsResponse struct {
	CatalogLoading bool `json:"catalogLoading"`
	SlotsLoading   bool `json:"slotsLoading"`
	DatesLoading   bool `json:"datesLoading"`
	Submitting     bool `json:"submitting"`
}

type WizardResponse struct {
	ID             string             `json:"id"`
	Step           int                `json:"step"`
	StepTitle      string             `json:"stepTitle"`
	CanProceed     bool               `json:"canProceed"`
	Draft          DraftResponse      `json:"draft"`
	EmailError     string             `json:"emailError,omitempty"`
	Offerings      []OfferingResponse `json:"offerings"`
	CatalogError   string             `json:"catalogError,omitempty"`
	Slots          []string           `json:"slots"`
	AvailableDates []string           `json:"availableDates"`
	Calendar       CalendarResponse   `json:"calendar"`
	Steps          []StepResponse     `json:"steps"`
	Flags          FlagsResponse      `json:"flags"`
	Price          string             `json:"price"`
	SeatsRemaining *int               `json:"seatsRemaining,omitempty"`
	LocationLabel  string             `json:"locationLabel,omitempty"`
	RunningPeriod  string             `json:"runningPeriod,omitempty"`
	Notice         *NoticeResponse    `json:"notice,omitempty"`
	ClosesAt       *time.Time         `json:"closesAt,omitempty"`
}

type StartWizardResponse struct {
	Token  string         `json:"token"`
	Wizard WizardResponse `json:"wizard"`
}

type SubmitWizardResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Wizard  WizardResponse `json:"wizard"`
}

func FromWizardView(v *commands.WizardView) (WizardResponse, error) {
	w := v.Wizard
	res := WizardResponse{
		ID:             w.ID().String(),
		Step:           int(w.Step()),
		StepTitle:      w.Step().Title(),
		CanProceed:     w.CanProceed(),
		EmailError:     w.EmailError(),
		CatalogError:   w.CatalogError(),
		Slots:          nonNil(w.Slots()),
		AvailableDates: nonNil(w.AvailableDates()),
		Price:          v.Quote.String(),
		SeatsRemaining: w.SeatsRemaining(),
		LocationLabel:  w.LocationLabel(),
		RunningPeriod:  w.RunningPeriod(),
		ClosesAt:       w.ClosesAt(),
	}

	var err error
	if res.Draft, err = fromDraft(w.Draft()); err != nil {
		return WizardResponse{}, err
	}
	if res.Offerings, err = FromCatalog(w.Catalog()); err != nil {
		return WizardResponse{}, err
	}
	if res.Calendar, err = fromGrid(v.Grid, v.Today); err != nil {
		return WizardResponse{}, err
	}
	if res.Steps, err = fromSteps(v.Steps); err != nil {
		return WizardResponse{}, err
	}

	f := w.Flags()
	res.Flags = FlagsResponse{
		CatalogLoading: f.CatalogLoading,
		SlotsLoading:   f.SlotsLoading,
		DatesLoading:   f.DatesLoading,
		Submitting:     f.Submitting,
	}
	if n := w.Notice(); n != nil {
		res.Notice = &NoticeResponse{Kind: string(n.Kind), Message: n.Message}
	}
	return res, nil
}

func fromDraft(d booking.DraftSnapshot) (DraftResponse, error) {
	var res DraftResponse
	if err := copier.Copy(&res, &d); err != nil {
		return DraftResponse{}, errs.Wrap(err, "failed to map draft")
	}
	res.SessionKind = string(d.SessionKind)
	res.Duration = string(d.Duration)
	if d.Software != nil {
		res.Software = string(*d.Software)
	}
	return res, nil
}

func fromGrid(g calendar.Grid, today time.Time) (CalendarResponse, error) {
	res := CalendarResponse{
		Month:         int(g.View.Month),
		Year:          g.View.Year,
		MonthName:     g.View.Month.String(),
		WeekdayLabels: calendar.WeekdayLabels(),
		YearOptions:   calendar.YearOptions(today.Year()),
	}
	if err := copier.Copy(&res.Cells, &g.Cells); err != nil {
		return CalendarResponse{}, errs.Wrap(err, "failed to map calendar cells")
	}
	return res, nil
}

func fromSteps(steps []wizard.StepSummary) ([]StepResponse, error) {
	out := make([]StepResponse, 0, len(steps))
	if err := copier.Copy(&out, &steps); err != nil {
		return nil, errs.Wrap(err, "failed to map steps")
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
