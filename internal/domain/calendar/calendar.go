package calendar

import (
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

const (
	gridWeeks   = 6
	gridCells   = gridWeeks * 7
	yearOptions = 10
	isoLayout   = "2006-01-02"
)

var ErrInvalidMonth = errs.Mark(errs.New("invalid month"), errs.ErrValidationFailed)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// View is the month currently displayed by the selector.
type View struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

func ViewOf(t time.Time) View {
	return View{Month: t.Month(), Year: t.Year()}
}

func NewView(month time.Month, year int) (View, error) {
	if month < time.January || month > time.December || year < 1 {
		return View{}, ErrInvalidMonth
	}
	return View{Month: month, Year: year}, nil
}

func (v View) Prev() View {
	if v.Month == time.January {
		return View{Month: time.December, Year: v.Year - 1}
	}
	return View{Month: v.Month - 1, Year: v.Year}
}

func (v View) Next() View {
	if v.Month == time.December {
		return View{Month: time.January, Year: v.Year + 1}
	}
	return View{Month: v.Month + 1, Year: v.Year}
}

func (v View) IsZero() bool {
	return v.Year == 0
}

// FirstDay returns the first day of the month at midnight in loc.
func (v View) FirstDay(loc *time.Location) time.Time {
	return time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, loc)
}

// LastInstant returns the last millisecond of the month in loc.
func (v View) LastInstant(loc *time.Location) time.Time {
	return v.FirstDay(loc).AddDate(0, 1, 0).Add(-time.Millisecond)
}

type Cell struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	CurrentMonth bool   `json:"currentMonth"`
	Weekend      bool   `json:"weekend"`
	Disabled     bool   `json:"disabled"`
	Today        bool   `json:"today"`
	Selected     bool   `json:"selected"`
}

// Options drive which cells are legal to pick. A nil Available set means no
// availability data was supplied, so only the minimum date and weekends apply.
type Options struct {
	Today     time.Time
	MinDate   time.Time
	Available map[string]struct{}
	Selected  string
}

type Grid struct {
	View  View   `json:"view"`
	Cells []Cell `json:"cells"`
}

// BuildGrid lays out a Monday-first 6x7 month grid including the tail of the
// previous month and the head of the next one.
func BuildGrid(v View, loc *time.Location, opts Options) Grid {
	first := v.FirstDay(loc)
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	minDate := opts.MinDate
	if minDate.IsZero() {
		minDate = opts.Today
	}
	minDate = midnight(minDate, loc)
	today := midnight(opts.Today, loc)

	cells := make([]Cell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		day := start.AddDate(0, 0, i)
		iso := day.Format(isoLayout)
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		disabled := day.Before(minDate) || weekend
		if opts.Available != nil {
			if _, ok := opts.Available[iso]; !ok {
				disabled = true
			}
		}

		cells = append(cells, Cell{
			Date:         iso,
			Day:          day.Day(),
			CurrentMonth: day.Month() == v.Month,
			Weekend:      weekend,
			Disabled:     disabled,
			Today:        !opts.Today.IsZero() && day.Equal(today),
			Selected:     iso == opts.Selected,
		})
	}
	return Grid{View: v, Cells: cells}
}

// Select returns the ISO date of a legal cell: enabled and inside the displayed month.
func (g Grid) Select(iso string) (string, error) {
	for _, c := range g.Cells {
		if c.Date != iso {
			continue
		}
		if c.Disabled || !c.CurrentMonth {
			return "", errs.ErrDateNotSelectable
		}
		return c.Date, nil
	}
	return "", errs.ErrDateNotSelectable
}

func (g Grid) Selectable() []string {
	var out []string
	for _, c := range g.Cells {
		if !c.Disabled && c.CurrentMonth {
			out = append(out, c.Date)
		}
	}
	return out
}

func AvailabilitySet(dates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// YearOptions lists the current year and the nine following.
func YearOptions(current int) []int {
	years := make([]int, yearOptions)
	for i := range years {
		years[i] = current + i
	}
	return years
}

func MonthNames() []string {
	names := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		names[m-1] = m.String()
	}
	return names
}

func WeekdayLabels() []string {
	out := make([]string, len(weekdayLabels))
	copy(out, weekdayLabels)
	return out
}

func midnight(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
