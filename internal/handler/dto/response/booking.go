package response

import (
	"encoding/json"
)

type SlotResponse struct {
	Time string `json:"time"`
}

type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func FromSlotTimes(times []string) SlotsResponse {
	slots := make([]SlotResponse, len(times))
	for i, t := range times {
		slots[i] = SlotResponse{Time: t}
	}
	return SlotsResponse{Slots: slots}
}

type AvailableDatesResponse struct {
	AvailableDates []string `json:"availableDates"`
}

type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking json.RawMessage `json:"booking" swaggertype:"object"`
	Message string          `json:"message"`
}

type BookingCountResponse struct {
	BookingCount int `json:"bookingCount"`
	EventTypeID  int `json:"eventTypeId"`
}
