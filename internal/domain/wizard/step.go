package wizard

type Step int

const (
	StepServiceSelection Step = iota + 1
	StepDateTime
	StepContactInfo
	StepOverview
)

func (s Step) String() string {
	switch s {
	case StepServiceSelection:
		return "serviceSelection"
	case StepDateTime:
		return "dateTime"
	case StepContactInfo:
		return "contactInfo"
	case StepOverview:
		return "overview"
	default:
		return "unknown"
	}
}

func (s Step) Title() string {
	switch s {
	case StepServiceSelection:
		return "Service Selection"
	case StepDateTime:
		return "Date & Time"
	case StepContactInfo:
		return "Contact Info"
	case StepOverview:
		return "Overview"
	default:
		return ""
	}
}

func (s Step) IsValid() bool {
	return s >= StepServiceSelection && s <= StepOverview
}

func AllSteps() []Step {
	return []Step{StepServiceSelection, StepDateTime, StepContactInfo, StepOverview}
}
