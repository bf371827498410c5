package wizard

import (
	"strings"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
)

// StepSummary is the header of one step with the values chosen in it so far.
type StepSummary struct {
	Number     int      `json:"number"`
	Title      string   `json:"title"`
	Active     bool     `json:"active"`
	Completed  bool     `json:"completed"`
	Selections []string `json:"selections"`
}

func (w *Wizard) StepInfo() []StepSummary {
	out := make([]StepSummary, 0, len(AllSteps()))
	for _, s := range AllSteps() {
		out = append(out, StepSummary{
			Number:     int(s),
			Title:      s.Title(),
			Active:     s == w.step,
			Completed:  s < w.step,
			Selections: w.selectionsFor(s),
		})
	}
	return out
}

func (w *Wizard) selectionsFor(s Step) []string {
	d := w.draft
	var out []string
	switch s {
	case StepServiceSelection:
		if o := w.ActiveOffering(); o != nil && d.IsGroup() {
			out = append(out, o.Title)
		} else if sw := d.Software(); sw != nil {
			out = append(out, sw.Title())
		}
		if !d.Duration().IsZero() {
			out = append(out, booking.FormatDuration(d.Duration()))
		}
		if d.Location() != "" {
			out = append(out, w.LocationLabel())
		}
	case StepDateTime:
		if d.IsSlotDelegated() {
			if o := w.ActiveOffering(); o != nil {
				if period, ok := o.DescriptionField(booking.DescriptionRunningPeriod); ok {
					out = append(out, period)
				}
			}
			break
		}
		if d.Date() != "" {
			out = append(out, d.Date())
		}
		if d.Time() != "" {
			out = append(out, booking.FormatTimeRange(d.Time(), d.Duration()))
		}
	case StepContactInfo:
		if d.FirstName() != "" || d.LastName() != "" {
			out = append(out, strings.TrimSpace(d.FullName()))
		}
		if d.Email() != "" {
			out = append(out, d.Email())
		}
	}
	return out
}

// LocationLabel is the display name of the chosen location.
func (w *Wizard) LocationLabel() string {
	key := w.draft.Location()
	if o := w.ActiveOffering(); o != nil {
		if l, ok := o.FindLocation(key); ok {
			return l.Label()
		}
	}
	return booking.FormatLocationName(key)
}

// RunningPeriod exposes the group offering's running period, if described.
func (w *Wizard) RunningPeriod() string {
	o := w.ActiveOffering()
	if o == nil {
		return ""
	}
	period, _ := o.DescriptionField(booking.DescriptionRunningPeriod)
	return period
}
