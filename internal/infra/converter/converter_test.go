//go:build unit

package converter_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/converter"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/ptr"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

func TestOfferingFromEventType(t *testing.T) {
	tests := []struct {
		name string
		in   calcom.EventType
		want booking.Offering
	}{
		{
			name: "multi-duration private lesson",
			in: calcom.EventType{
				ID: 1, Slug: "blender-private", Title: "Blender", Length: 60,
				Description: ptr.Of("Modelling basics"),
				Locations:   []calcom.Location{{Type: "inPerson", Address: "Athens"}, {Type: "integrations:google:meet"}},
				Metadata:    &calcom.EventTypeMetadata{MultipleDuration: []int{60, 120}},
			},
			want: booking.Offering{
				ID: 1, Slug: "blender-private", Title: "Blender", Length: 60,
				Description:        "Modelling basics",
				Locations:          []booking.Location{{Type: "inPerson", Address: "Athens"}, {Type: "integrations:google:meet"}},
				AvailableDurations: []int{60, 120},
			},
		},
		{
			name: "seated group class",
			in:   calcom.EventType{ID: 10, Slug: "group-blender", Length: 120, SeatsPerTimeSlot: ptr.Of(8)},
			want: booking.Offering{ID: 10, Slug: "group-blender", Length: 120, SeatsPerTimeSlot: ptr.Of(8)},
		},
		{
			name: "single seat is kept as reported",
			in:   calcom.EventType{ID: 4, Slug: "one-seat", SeatsPerTimeSlot: ptr.Of(1)},
			want: booking.Offering{ID: 4, Slug: "one-seat", SeatsPerTimeSlot: ptr.Of(1)},
		},
		{
			name: "zero seats is not seat-managed",
			in:   calcom.EventType{ID: 3, SeatsPerTimeSlot: ptr.Of(0), Metadata: &calcom.EventTypeMetadata{}},
			want: booking.Offering{ID: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := converter.OfferingFromEventType(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("offering mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogFromEventTypes(t *testing.T) {
	catalog := converter.CatalogFromEventTypes([]calcom.EventType{{ID: 1}, {ID: 2}})

	require.Len(t, catalog, 2)
	assert.Equal(t, 2, catalog[1].ID)
	assert.Empty(t, converter.CatalogFromEventTypes(nil))
}

func TestExistingBookingsFromInfra(t *testing.T) {
	got := converter.ExistingBookingsFromInfra([]calcom.Booking{
		{ID: 1, EventTypeID: ptr.Of(10), Status: "ACCEPTED", StartTime: "2025-03-21T08:00:00.000Z",
			Attendees: []calcom.Attendee{{Email: "a@x.gr"}, {Email: "b@x.gr"}}},
		{ID: 2, Status: "PENDING", StartTime: "2025-03-22T08:00:00Z"},
		{ID: 3, EventTypeID: ptr.Of(10), Status: "ACCEPTED", StartTime: "tomorrow"},
	})

	want := []booking.ExistingBooking{
		{ID: 1, EventTypeID: 10, Status: "ACCEPTED", StartTime: time.Date(2025, 3, 21, 8, 0, 0, 0, time.UTC), Attendees: 2},
		{ID: 2, Status: "PENDING", StartTime: time.Date(2025, 3, 22, 8, 0, 0, 0, time.UTC)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bookings mismatch (-want +got):\n%s", diff)
	}
}

func TestSlotSetFromInfra(t *testing.T) {
	decode := func(t *testing.T, raw string) calcom.Slots {
		t.Helper()
		var s calcom.Slots
		require.NoError(t, json.Unmarshal([]byte(raw), &s))
		return s
	}

	tests := []struct {
		name string
		raw  string
		want queries.SlotSet
	}{
		{
			name: "keyed",
			raw:  `{"2025-03-14":[{"time":"2025-03-14T08:00:00Z"},{"time":""}],"2025-03-15":[]}`,
			want: queries.SlotSet{Keyed: true, ByDate: map[string][]string{
				"2025-03-14": {"2025-03-14T08:00:00Z"},
				"2025-03-15": {},
			}},
		},
		{
			name: "flat with bare strings",
			raw:  `["2025-03-14T08:00:00Z",{"time":"2025-03-14T10:00:00Z"}]`,
			want: queries.SlotSet{Flat: []string{"2025-03-14T08:00:00Z", "2025-03-14T10:00:00Z"}},
		},
		{
			name: "null",
			raw:  `null`,
			want: queries.SlotSet{Flat: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := converter.SlotSetFromInfra(decode(t, tt.raw))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("slot set mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlotQueryToInfra(t *testing.T) {
	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	w := queries.SlotWindow{EventTypeID: 2, Start: start, End: start.Add(time.Hour), TimeZone: "Europe/Athens", DurationMinutes: 90}

	assert.Equal(t, calcom.SlotQuery{EventTypeID: 2, Start: start, End: start.Add(time.Hour), TimeZone: "Europe/Athens", DurationMinutes: 90},
		converter.SlotQueryToInfra(w))
}
