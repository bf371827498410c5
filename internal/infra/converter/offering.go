package converter

import (
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/ptr"
)

func OfferingFromEventType(et calcom.EventType) booking.Offering {
	o := booking.Offering{
		ID:     et.ID,
		Slug:   et.Slug,
		Title:  et.Title,
		Length: et.Length,
	}
	if et.Description != nil {
		o.Description = *et.Description
	}
	// non-positive counts are dropped; a count of one is kept as reported
	// and HasSeats still treats it as one-to-one
	if et.SeatsPerTimeSlot != nil && *et.SeatsPerTimeSlot > 0 {
		o.SeatsPerTimeSlot = ptr.Of(*et.SeatsPerTimeSlot)
	}
	if et.Metadata != nil && len(et.Metadata.MultipleDuration) > 0 {
		o.AvailableDurations = append([]int{}, et.Metadata.MultipleDuration...)
	}
	if len(et.Locations) > 0 {
		o.Locations = make([]booking.Location, len(et.Locations))
		for i, l := range et.Locations {
			o.Locations[i] = booking.Location{Type: l.Type, Address: l.Address, Link: l.Link}
		}
	}
	return o
}

func CatalogFromEventTypes(ets []calcom.EventType) booking.Catalog {
	catalog := make(booking.Catalog, len(ets))
	for i, et := range ets {
		catalog[i] = OfferingFromEventType(et)
	}
	return catalog
}
