package response

import (
	"github.com/jinzhu/copier"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

type LocationResponse struct {
	Type    string `json:"type,omitempty"`
	Address string `json:"address,omitempty"`
	Link    string `json:"link,omitempty"`
}

type OfferingResponse struct {
	ID                 int                `json:"id"`
	Slug               string             `json:"slug"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Length             int                `json:"length"`
	Locations          []LocationResponse `json:"locations"`
	SeatsPerTimeSlot   *int               `json:"seatsPerTimeSlot"`
	AvailableDurations []int              `json:"availableDurations,omitempty"`
}

type EventTypesResponse struct {
	EventTypes []OfferingResponse `json:"eventTypes"`
}

func FromOffering(o booking.Offering) (OfferingResponse, error) {
	var res OfferingResponse
	if err := copier.CopyWithOption(&res, &o, copier.Option{DeepCopy: true}); err != nil {
		return OfferingResponse{}, errs.Wrap(err, "failed to map offering")
	}
	if res.Locations == nil {
		res.Locations = []LocationResponse{}
	}
	return res, nil
}

func FromCatalog(c booking.Catalog) ([]OfferingResponse, error) {
	out := make([]OfferingResponse, len(c))
	for i, o := range c {
		res, err := FromOffering(o)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}
