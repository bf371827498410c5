package converter

import (
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

func SlotSetFromInfra(s calcom.Slots) queries.SlotSet {
	if !s.IsKeyed() {
		return queries.SlotSet{Flat: slotTimes(s.Flat)}
	}
	byDate := make(map[string][]string, len(s.ByDate))
	for date, slots := range s.ByDate {
		byDate[date] = slotTimes(slots)
	}
	return queries.SlotSet{Keyed: true, ByDate: byDate}
}

func SlotQueryToInfra(w queries.SlotWindow) calcom.SlotQuery {
	return calcom.SlotQuery{
		EventTypeID:     w.EventTypeID,
		Start:           w.Start,
		End:             w.End,
		TimeZone:        w.TimeZone,
		DurationMinutes: w.DurationMinutes,
	}
}

func slotTimes(slots []calcom.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Time != "" {
			out = append(out, s.Time)
		}
	}
	return out
}
