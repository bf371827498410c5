package booking

import (
	"regexp"
	"strings"
)

const (
	LocationTypeInPerson = "inPerson"
	integrationPrefix    = "integrations:"

	DescriptionCost          = "Cost"
	DescriptionRunningPeriod = "Running Period"
)

// slug fragments that identify the offerings this business sells
var bookableSlugMarkers = []string{"blender", "photoshop", "premiere", "after-effects", "group"}

// ****Label:**** value
var descriptionFieldPattern = regexp.MustCompile(`\*{4}\s*([^*:\n]+?)\s*:\s*\*{4}\s*([^\n]*)`)

type Location struct {
	Type    string `json:"type,omitempty"`
	Address string `json:"address,omitempty"`
	Link    string `json:"link,omitempty"`
}

// Key is the value stored in a draft when this location is chosen.
func (l Location) Key() string {
	if l.Type == "" && l.Link != "" {
		return l.Link
	}
	return l.Type
}

func (l Location) IsLinkOnly() bool {
	return l.Type == "" && l.Link != ""
}

// Label is the display name for the location option.
func (l Location) Label() string {
	if l.IsLinkOnly() {
		return "Custom Link"
	}
	return FormatLocationName(l.Type)
}

// Offering is a bookable event type published by the provider.
type Offering struct {
	ID                 int        `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Length             int        `json:"length"`
	Locations          []Location `json:"locations"`
	SeatsPerTimeSlot   *int       `json:"seatsPerTimeSlot"`
	AvailableDurations []int      `json:"availableDurations"`
}

func IsBookableSlug(slug string) bool {
	for _, marker := range bookableSlugMarkers {
		if strings.Contains(slug, marker) {
			return true
		}
	}
	return false
}

func (o Offering) IsGroup() bool {
	return strings.Contains(o.Slug, "group")
}

// HasSeats reports whether participants share one provider time slot.
func (o Offering) HasSeats() bool {
	return o.SeatsPerTimeSlot != nil && *o.SeatsPerTimeSlot > 1
}

// Durations falls back to the nominal length when the provider exposes no variants.
func (o Offering) Durations() []int {
	if len(o.AvailableDurations) > 0 {
		return o.AvailableDurations
	}
	if o.Length > 0 {
		return []int{o.Length}
	}
	return nil
}

func (o Offering) SupportsDuration(minutes int) bool {
	for _, d := range o.Durations() {
		if d == minutes {
			return true
		}
	}
	return false
}

func (o Offering) FindLocation(key string) (Location, bool) {
	for _, l := range o.Locations {
		if l.Key() == key {
			return l, true
		}
	}
	return Location{}, false
}

// DescriptionField extracts a "****Label:**** value" entry from the description.
func (o Offering) DescriptionField(label string) (string, bool) {
	for _, m := range descriptionFieldPattern.FindAllStringSubmatch(o.Description, -1) {
		if strings.EqualFold(strings.TrimSpace(m[1]), label) {
			value := strings.TrimSpace(m[2])
			return value, value != ""
		}
	}
	return "", false
}

type Catalog []Offering

func (c Catalog) FindBySlug(slug string) (Offering, bool) {
	for _, o := range c {
		if o.Slug == slug {
			return o, true
		}
	}
	return Offering{}, false
}

func (c Catalog) FindByID(id int) (Offering, bool) {
	for _, o := range c {
		if o.ID == id {
			return o, true
		}
	}
	return Offering{}, false
}

func (c Catalog) Groups() Catalog {
	var out Catalog
	for _, o := range c {
		if o.IsGroup() {
			out = append(out, o)
		}
	}
	return out
}
