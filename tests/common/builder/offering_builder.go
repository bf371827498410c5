//go:build unit || e2e

package builder

import (
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/ptr"
)

const (
	BlenderID   = 1
	PhotoshopID = 2
	GroupID     = 10
	IntroCallID = 99
)

type OfferingBuilder struct {
	offering booking.Offering
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		offering: booking.Offering{
			ID:        PhotoshopID,
			Slug:      "photoshop-private",
			Title:     "Photoshop",
			Length:    60,
			Locations: []booking.Location{{Type: booking.LocationTypeInPerson, Address: "Studio 4"}},
		},
	}
}

func (b *OfferingBuilder) WithID(id int) *OfferingBuilder {
	b.offering.ID = id
	return b
}

func (b *OfferingBuilder) WithSlug(slug string) *OfferingBuilder {
	b.offering.Slug = slug
	return b
}

func (b *OfferingBuilder) WithTitle(title string) *OfferingBuilder {
	b.offering.Title = title
	return b
}

func (b *OfferingBuilder) WithLength(minutes int) *OfferingBuilder {
	b.offering.Length = minutes
	return b
}

func (b *OfferingBuilder) WithDurations(minutes ...int) *OfferingBuilder {
	b.offering.AvailableDurations = minutes
	return b
}

func (b *OfferingBuilder) WithLocations(locs ...booking.Location) *OfferingBuilder {
	b.offering.Locations = locs
	return b
}

func (b *OfferingBuilder) WithSeats(seats int) *OfferingBuilder {
	b.offering.SeatsPerTimeSlot = ptr.Of(seats)
	return b
}

func (b *OfferingBuilder) WithDescription(desc string) *OfferingBuilder {
	b.offering.Description = desc
	return b
}

func (b *OfferingBuilder) Build() booking.Offering {
	o := b.offering
	o.Locations = append([]booking.Location(nil), b.offering.Locations...)
	o.AvailableDurations = append([]int(nil), b.offering.AvailableDurations...)
	if len(o.AvailableDurations) == 0 {
		o.AvailableDurations = nil
	}
	return o
}

// StandardCatalog is a two-duration Blender offering, a single-option
// Photoshop offering and a seat-managed group class.
func StandardCatalog() booking.Catalog {
	return booking.Catalog{
		NewOfferingBuilder().
			WithID(BlenderID).WithSlug("blender-private").WithTitle("Blender").
			WithDurations(60, 120).
			WithLocations(
				booking.Location{Type: booking.LocationTypeInPerson, Address: "Athens"},
				booking.Location{Type: "integrations:google:meet"},
			).
			Build(),
		NewOfferingBuilder().Build(),
		NewOfferingBuilder().
			WithID(GroupID).WithSlug("group-blender").WithTitle("Blender Group").
			WithLength(120).WithSeats(8).
			WithDescription("****Running Period:**** March - June\n****Cost:**** €120").
			WithLocations(booking.Location{Type: booking.LocationTypeInPerson, Address: "Athens"}).
			Build(),
	}
}

// UnbookableOffering is published by the provider but not sold through the wizard.
func UnbookableOffering() booking.Offering {
	return NewOfferingBuilder().WithID(IntroCallID).WithSlug("intro-call").WithTitle("Intro call").Build()
}
