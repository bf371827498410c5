package wizard

import "github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"

// CanProceedStep1 requires an offering selection (software or group), a duration and a location.
func CanProceedStep1(d booking.DraftSnapshot) bool {
	switch d.SessionKind {
	case booking.SessionKindGroup:
		if d.GroupEventID == nil {
			return false
		}
	default:
		if d.Software == nil {
			return false
		}
	}
	return d.Duration != "" && d.Location != ""
}

// CanProceedStep2 requires date and time on the individual path only.
func CanProceedStep2(d booking.DraftSnapshot) bool {
	if d.SessionKind == booking.SessionKindGroup {
		return true
	}
	return d.Date != "" && d.Time != ""
}

// CanProceedStep3 requires names and a well-formed email with no pending email error.
func CanProceedStep3(d booking.DraftSnapshot, emailError string) bool {
	return d.FirstName != "" &&
		d.LastName != "" &&
		d.Email != "" &&
		booking.IsValidEmail(d.Email) &&
		emailError == ""
}

func canLeave(step Step, d booking.DraftSnapshot, emailError string) bool {
	switch step {
	case StepServiceSelection:
		return CanProceedStep1(d)
	case StepDateTime:
		return CanProceedStep2(d)
	case StepContactInfo:
		return CanProceedStep3(d, emailError)
	default:
		return false
	}
}
