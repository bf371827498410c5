package booking

import (
	"strconv"
	"strings"
)

// DurationCode is the short duration form carried by drafts and requests:
// "1h", "2h" or a raw minute count such as "90m".
type DurationCode string

const (
	DurationOneHour  DurationCode = "1h"
	DurationTwoHours DurationCode = "2h"

	// unknown codes book the long session, matching the provider setup
	fallbackDurationMinutes = 120
)

func CodeForMinutes(minutes int) DurationCode {
	switch minutes {
	case 60:
		return DurationOneHour
	case 120:
		return DurationTwoHours
	default:
		return DurationCode(strconv.Itoa(minutes) + "m")
	}
}

func (d DurationCode) Minutes() int {
	switch d {
	case DurationOneHour:
		return 60
	case DurationTwoHours:
		return 120
	}
	s := string(d)
	if n, ok := parseUnit(s, "m"); ok {
		return n
	}
	if n, ok := parseUnit(s, "h"); ok {
		return n * 60
	}
	return fallbackDurationMinutes
}

func (d DurationCode) IsZero() bool {
	return d == ""
}

func (d DurationCode) String() string {
	return string(d)
}

func parseUnit(s, unit string) (int, bool) {
	if !strings.HasSuffix(s, unit) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, unit))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
