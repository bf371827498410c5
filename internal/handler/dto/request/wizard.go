package request

import (
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
)

// WizardPatchRequest carries only the fields the booker changed.
type WizardPatchRequest struct {
	SessionKind  *string `json:"sessionKind" binding:"omitempty,oneof=individual group"`
	Software     *string `json:"software"`
	GroupEventID *int    `json:"groupEventId" binding:"omitempty,min=1"`
	Duration     *string `json:"duration"`
	Location     *string `json:"location"`
	Date         *string `json:"date" binding:"omitempty,isodate"`
	Time         *string `json:"time" binding:"omitempty,clocktime"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Notes        *string `json:"notes"`
	EmailBlurred bool    `json:"emailBlurred"`
}

func (r WizardPatchRequest) ToPatch() commands.WizardPatch {
	p := commands.WizardPatch{
		GroupEventID: r.GroupEventID,
		Location:     r.Location,
		Date:         r.Date,
		Time:         r.Time,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Notes:        r.Notes,
		EmailBlurred: r.EmailBlurred,
	}
	if r.SessionKind != nil {
		k := booking.SessionKind(*r.SessionKind)
		p.SessionKind = &k
	}
	if r.Software != nil {
		s := booking.Software(*r.Software)
		p.Software = &s
	}
	if r.Duration != nil {
		d := booking.DurationCode(*r.Duration)
		p.Duration = &d
	}
	return p
}

// CalendarNavigateRequest takes either a direction or a month (1-12) and year.
type CalendarNavigateRequest struct {
	Direction string `json:"direction" binding:"omitempty,oneof=prev next"`
	Month     *int   `json:"month" binding:"omitempty,min=1,max=12"`
	Year      *int   `json:"year" binding:"omitempty,min=1"`
}

func (r CalendarNavigateRequest) ToInput() commands.NavigateInput {
	in := commands.NavigateInput{Direction: r.Direction, Year: r.Year}
	if r.Month != nil {
		m := time.Month(*r.Month)
		in.Month = &m
	}
	return in
}
