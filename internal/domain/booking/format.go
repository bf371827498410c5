package booking

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// FormatDuration renders a duration code as minutes followed by a prime, e.g. "60'".
func FormatDuration(code DurationCode) string {
	return fmt.Sprintf("%d'", code.Minutes())
}

// FormatTimeRange renders "H:MM-H:MM" for a start clock time and duration.
// The end wraps on a 24h clock with no day rollover marker.
// An unparsable start is returned unchanged, as is any start without a duration.
func FormatTimeRange(start string, code DurationCode) string {
	if code.IsZero() {
		return start
	}
	startMinutes, ok := ParseClock(start)
	if !ok {
		return start
	}
	endMinutes := (startMinutes + code.Minutes()) % minutesPerDay
	return formatClock(startMinutes) + "-" + formatClock(endMinutes)
}

// FormatLocationName turns a provider location type into its display label.
func FormatLocationName(locationType string) string {
	if locationType == LocationTypeInPerson {
		return "In-Person"
	}
	if strings.HasPrefix(locationType, integrationPrefix) {
		parts := strings.Split(locationType, ":")[1:]
		for i, p := range parts {
			parts[i] = CapitalizeFirst(p)
		}
		return strings.Join(parts, " ")
	}
	if locationType == "" {
		return "Online"
	}
	return locationType
}

// CapitalizeFirst upper-cases the first character and keeps the rest as typed.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
