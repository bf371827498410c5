//go:build unit

package wizard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/domain/wizard"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/ptr"
)

const groupID = 10

func testCatalog() booking.Catalog {
	return booking.Catalog{
		{
			ID: 1, Slug: "blender-private", Title: "Blender", Length: 60,
			AvailableDurations: []int{60, 120},
			Locations: []booking.Location{
				{Type: booking.LocationTypeInPerson, Address: "Athens"},
				{Type: "integrations:google:meet"},
			},
		},
		{
			ID: 2, Slug: "photoshop-private", Title: "Photoshop", Length: 60,
			Locations: []booking.Location{{Type: booking.LocationTypeInPerson, Address: "Studio 4"}},
		},
		{
			ID: groupID, Slug: "group-blender", Title: "Blender Group", Length: 120,
			Description:      "****Running Period:**** March - June",
			SeatsPerTimeSlot: ptr.Of(8),
			Locations:        []booking.Location{{Type: booking.LocationTypeInPerson, Address: "Athens"}},
		},
	}
}

type fixture struct {
	w   *wizard.Wizard
	now time.Time
	loc *time.Location
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, loc)
	w := wizard.New(uuid.New(), now, loc)
	w.ApplyCatalog(testCatalog(), nil)
	return fixture{w: w, now: now, loc: loc}
}

func TestWizardIndividualFlow(t *testing.T) {
	f := newFixture(t)
	w := f.w

	t.Run("auto-fill single duration and location", func(t *testing.T) {
		require.NoError(t, w.SelectSoftware(booking.SoftwarePhotoshop))
		d := w.Draft()
		assert.Equal(t, booking.DurationOneHour, d.Duration)
		assert.Equal(t, booking.LocationTypeInPerson, d.Location)
		assert.Equal(t, "Studio 4", d.LocationAddress)
		require.NotNil(t, w.ActiveOffering())
		assert.Equal(t, 2, w.ActiveOffering().ID)
		assert.Equal(t, "€30", w.Quote(booking.NewDefaultPriceCalculator()).String())
	})

	t.Run("step 1 to step 2", func(t *testing.T) {
		require.NoError(t, w.Next())
		assert.Equal(t, wizard.StepDateTime, w.Step())
		assert.True(t, errs.Is(w.Next(), errs.ErrStepLocked))
	})

	t.Run("dates and slots", func(t *testing.T) {
		dt, ok := w.BeginDatesQuery()
		require.True(t, ok)
		assert.Equal(t, "2025-03", dt.Key.Scope)
		assert.True(t, w.Flags().DatesLoading)
		require.True(t, w.ApplyAvailableDates(dt, []string{"2025-03-13", "2025-03-14"}))

		assert.True(t, errs.Is(w.SelectDate("2025-03-17", f.now, f.loc), errs.ErrDateNotSelectable))
		require.NoError(t, w.SelectDate("2025-03-14", f.now, f.loc))

		st, ok := w.BeginSlotQuery()
		require.True(t, ok)
		assert.Equal(t, wizard.QueryKey{OfferingID: 2, Scope: "2025-03-14", DurationMinutes: 60}, st.Key)
		require.True(t, w.ApplySlots(st, []string{"10:00", "11:00"}))
		assert.False(t, w.Flags().SlotsLoading)

		assert.True(t, errs.Is(w.SelectTime("12:00"), errs.ErrValidationFailed))
		require.NoError(t, w.SelectTime("10:00"))
		require.NoError(t, w.Next())
		assert.Equal(t, wizard.StepContactInfo, w.Step())
	})

	t.Run("contact details gate on email", func(t *testing.T) {
		w.SetFirstName("ann")
		w.SetLastName("lee")
		w.SetEmail("ann@")
		assert.Equal(t, wizard.EmailErrorMessage, w.EmailError())
		assert.True(t, errs.Is(w.Next(), errs.ErrStepLocked))

		w.SetEmail("ann@lee.gr")
		assert.Empty(t, w.EmailError())
		require.NoError(t, w.Next())
		assert.Equal(t, wizard.StepOverview, w.Step())
	})

	t.Run("step summaries", func(t *testing.T) {
		info := w.StepInfo()
		require.Len(t, info, 4)
		assert.Equal(t, []string{"Photoshop", "60'", "In-Person"}, info[0].Selections)
		assert.Equal(t, []string{"2025-03-14", "10:00-11:00"}, info[1].Selections)
		assert.Equal(t, []string{"Ann Lee", "ann@lee.gr"}, info[2].Selections)
		assert.True(t, info[3].Active)
		assert.True(t, info[0].Completed)
	})

	t.Run("single-flight submission", func(t *testing.T) {
		req, err := w.BeginSubmit(f.now)
		require.NoError(t, err)
		assert.Equal(t, 2, req.EventTypeID)
		assert.Equal(t, "2025-03-14", req.Date)
		assert.NoError(t, req.Validate())

		_, err = w.BeginSubmit(f.now)
		assert.True(t, errs.Is(err, errs.ErrSubmissionInFlight))
		assert.True(t, errs.Is(w.Back(), errs.ErrStepLocked))

		w.CompleteSubmit(f.now, 3*time.Second)
		require.NotNil(t, w.Notice())
		assert.Equal(t, booking.MsgBookingConfirmed, w.Notice().Message)
		assert.Equal(t, wizard.StepServiceSelection, w.Step())
		assert.Nil(t, w.Draft().Software)
		assert.False(t, w.Flags().Submitting)
		assert.False(t, w.IsClosed(f.now.Add(2*time.Second)))
		assert.True(t, w.IsClosed(f.now.Add(3*time.Second)))
	})
}

func TestWizardGroupFlow(t *testing.T) {
	f := newFixture(t)
	w := f.w

	require.NoError(t, w.SetSessionKind(booking.SessionKindGroup))
	assert.True(t, errs.Is(w.SelectGroupOffering(1), wizard.ErrUnknownOffering))
	require.NoError(t, w.SelectGroupOffering(groupID))

	d := w.Draft()
	assert.Equal(t, booking.DurationTwoHours, d.Duration)
	assert.Equal(t, booking.LocationTypeInPerson, d.Location)

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	d = w.Draft()
	assert.Equal(t, booking.GroupSessionDate, d.Date)
	assert.Equal(t, booking.GroupSessionTime, d.Time)
	assert.Equal(t, "March - June", w.RunningPeriod())

	_, ok := w.BeginSlotQuery()
	assert.False(t, ok)

	w.ApplyBookingCount(groupID, 3)
	require.NotNil(t, w.SeatsRemaining())
	assert.Equal(t, 5, *w.SeatsRemaining())

	w.SetFirstName("Nik")
	w.SetLastName("Pap")
	w.SetEmail("nik@pap.gr")
	require.NoError(t, w.Next())

	req, err := w.BeginSubmit(f.now)
	require.NoError(t, err)
	assert.True(t, req.IsGroup())
	assert.Equal(t, groupID, req.EventTypeID)

	w.FailSubmit("ignored", []string{"email", "location"})
	require.NotNil(t, w.Notice())
	assert.Equal(t, wizard.NoticeError, w.Notice().Kind)
	assert.Equal(t, "Missing fields: email, location", w.Notice().Message)
	assert.False(t, w.Flags().Submitting)

	w.DismissNotice()
	assert.Nil(t, w.Notice())
}

// walkToOverview books Blender, which has two durations and two locations,
// so nothing is auto-filled.
func walkToOverview(t *testing.T) fixture {
	t.Helper()
	f := newFixture(t)
	w := f.w
	require.NoError(t, w.SelectSoftware(booking.SoftwareBlender))
	require.NoError(t, w.SelectDuration(booking.DurationOneHour))
	require.NoError(t, w.SelectLocation(booking.LocationTypeInPerson))
	require.NoError(t, w.Next())
	dt, ok := w.BeginDatesQuery()
	require.True(t, ok)
	require.True(t, w.ApplyAvailableDates(dt, []string{"2025-03-14"}))
	require.NoError(t, w.SelectDate("2025-03-14", f.now, f.loc))
	st, ok := w.BeginSlotQuery()
	require.True(t, ok)
	require.True(t, w.ApplySlots(st, []string{"10:00"}))
	require.NoError(t, w.SelectTime("10:00"))
	require.NoError(t, w.Next())
	w.SetFirstName("ann")
	w.SetLastName("lee")
	w.SetEmail("ann@lee.gr")
	require.NoError(t, w.Next())
	require.Equal(t, wizard.StepOverview, w.Step())
	return f
}

func TestStageGates(t *testing.T) {
	individual := func() booking.DraftSnapshot {
		return booking.DraftSnapshot{
			SessionKind: booking.SessionKindIndividual,
			Software:    ptr.Of(booking.SoftwareBlender),
			Duration:    booking.DurationOneHour,
			Location:    booking.LocationTypeInPerson,
			Date:        "2025-03-14",
			Time:        "10:00",
			FirstName:   "Ann",
			LastName:    "Lee",
			Email:       "ann@lee.gr",
		}
	}
	group := func() booking.DraftSnapshot {
		return booking.DraftSnapshot{
			SessionKind:  booking.SessionKindGroup,
			GroupEventID: ptr.Of(groupID),
			Duration:     booking.DurationTwoHours,
			Location:     booking.LocationTypeInPerson,
			Date:         booking.GroupSessionDate,
			Time:         booking.GroupSessionTime,
			FirstName:    "Nik",
			LastName:     "Pap",
			Email:        "nik@pap.gr",
		}
	}

	tests := []struct {
		name       string
		base       func() booking.DraftSnapshot
		edit       func(d *booking.DraftSnapshot)
		emailError string
		want       [3]bool
	}{
		{name: "individual complete", base: individual, edit: func(*booking.DraftSnapshot) {}, want: [3]bool{true, true, true}},
		{name: "individual without software", base: individual, edit: func(d *booking.DraftSnapshot) { d.Software = nil }, want: [3]bool{false, true, true}},
		{name: "individual with only a group offering", base: individual, edit: func(d *booking.DraftSnapshot) { d.Software = nil; d.GroupEventID = ptr.Of(groupID) }, want: [3]bool{false, true, true}},
		{name: "individual without duration", base: individual, edit: func(d *booking.DraftSnapshot) { d.Duration = "" }, want: [3]bool{false, true, true}},
		{name: "individual without location", base: individual, edit: func(d *booking.DraftSnapshot) { d.Location = "" }, want: [3]bool{false, true, true}},
		{name: "individual without date", base: individual, edit: func(d *booking.DraftSnapshot) { d.Date = "" }, want: [3]bool{true, false, true}},
		{name: "individual without time", base: individual, edit: func(d *booking.DraftSnapshot) { d.Time = "" }, want: [3]bool{true, false, true}},
		{name: "individual without first name", base: individual, edit: func(d *booking.DraftSnapshot) { d.FirstName = "" }, want: [3]bool{true, true, false}},
		{name: "individual without last name", base: individual, edit: func(d *booking.DraftSnapshot) { d.LastName = "" }, want: [3]bool{true, true, false}},
		{name: "individual without email", base: individual, edit: func(d *booking.DraftSnapshot) { d.Email = "" }, want: [3]bool{true, true, false}},
		{name: "individual malformed email", base: individual, edit: func(d *booking.DraftSnapshot) { d.Email = "not-an-email" }, want: [3]bool{true, true, false}},
		{name: "individual pending email error", base: individual, edit: func(*booking.DraftSnapshot) {}, emailError: wizard.EmailErrorMessage, want: [3]bool{true, true, false}},
		{name: "group complete", base: group, edit: func(*booking.DraftSnapshot) {}, want: [3]bool{true, true, true}},
		{name: "group without offering", base: group, edit: func(d *booking.DraftSnapshot) { d.GroupEventID = nil }, want: [3]bool{false, true, true}},
		{name: "group with only software", base: group, edit: func(d *booking.DraftSnapshot) { d.GroupEventID = nil; d.Software = ptr.Of(booking.SoftwareBlender) }, want: [3]bool{false, true, true}},
		{name: "group without duration", base: group, edit: func(d *booking.DraftSnapshot) { d.Duration = "" }, want: [3]bool{false, true, true}},
		{name: "group without location", base: group, edit: func(d *booking.DraftSnapshot) { d.Location = "" }, want: [3]bool{false, true, true}},
		{name: "group before slot delegation", base: group, edit: func(d *booking.DraftSnapshot) { d.Date = ""; d.Time = "" }, want: [3]bool{true, true, true}},
		{name: "group without first name", base: group, edit: func(d *booking.DraftSnapshot) { d.FirstName = "" }, want: [3]bool{true, true, false}},
		{name: "group without last name", base: group, edit: func(d *booking.DraftSnapshot) { d.LastName = "" }, want: [3]bool{true, true, false}},
		{name: "group malformed email", base: group, edit: func(d *booking.DraftSnapshot) { d.Email = "nik@" }, want: [3]bool{true, true, false}},
		{name: "group pending email error", base: group, edit: func(*booking.DraftSnapshot) {}, emailError: wizard.EmailErrorMessage, want: [3]bool{true, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.base()
			tt.edit(&d)

			got := [3]bool{
				wizard.CanProceedStep1(d),
				wizard.CanProceedStep2(d),
				wizard.CanProceedStep3(d, tt.emailError),
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelegatedGroupSlotPassesDateStep(t *testing.T) {
	d := booking.NewDraft()
	_, err := d.SetSessionKind(booking.SessionKindGroup)
	require.NoError(t, err)
	_, err = d.SelectGroupOffering(groupID)
	require.NoError(t, err)

	d.DelegateGroupSlot()

	snap := d.Snapshot()
	assert.Equal(t, booking.GroupSessionDate, snap.Date)
	assert.Equal(t, booking.GroupSessionTime, snap.Time)
	assert.True(t, wizard.CanProceedStep2(snap))
}

func TestSubmitRechecksEarlierSteps(t *testing.T) {
	tests := []struct {
		name     string
		edit     func(t *testing.T, f fixture)
		wantStep wizard.Step
	}{
		{
			name:     "malformed email",
			edit:     func(t *testing.T, f fixture) { f.w.SetEmail("not-an-email") },
			wantStep: wizard.StepContactInfo,
		},
		{
			name:     "cleared last name",
			edit:     func(t *testing.T, f fixture) { f.w.SetLastName("") },
			wantStep: wizard.StepContactInfo,
		},
		{
			name:     "duration change clears the schedule",
			edit:     func(t *testing.T, f fixture) { require.NoError(t, f.w.SelectDuration(booking.DurationTwoHours)) },
			wantStep: wizard.StepDateTime,
		},
		{
			name:     "cleared date",
			edit:     func(t *testing.T, f fixture) { require.NoError(t, f.w.SelectDate("", f.now, f.loc)) },
			wantStep: wizard.StepDateTime,
		},
		{
			name:     "cleared location",
			edit:     func(t *testing.T, f fixture) { require.NoError(t, f.w.SelectLocation("")) },
			wantStep: wizard.StepServiceSelection,
		},
		{
			name:     "switch to group without an offering",
			edit:     func(t *testing.T, f fixture) { require.NoError(t, f.w.SetSessionKind(booking.SessionKindGroup)) },
			wantStep: wizard.StepServiceSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := walkToOverview(t)
			tt.edit(t, f)

			_, err := f.w.BeginSubmit(f.now)

			assert.True(t, errs.Is(err, errs.ErrStepLocked), "got %v", err)
			assert.False(t, f.w.Flags().Submitting)

			f.w.Rewind()
			assert.Equal(t, tt.wantStep, f.w.Step())
		})
	}

	t.Run("edits that keep every gate stay at the overview", func(t *testing.T) {
		f := walkToOverview(t)
		f.w.SetNotes("first lesson")
		f.w.SetPhone("+30 210 123")
		f.w.SetFirstName("anna")

		f.w.Rewind()

		assert.Equal(t, wizard.StepOverview, f.w.Step())
		req, err := f.w.BeginSubmit(f.now)
		require.NoError(t, err)
		assert.Equal(t, "Anna", req.FirstName)
		assert.Equal(t, "30210123", req.Phone)
	})

	t.Run("group slot is delegated again after the schedule is cleared", func(t *testing.T) {
		f := newFixture(t)
		w := f.w
		require.NoError(t, w.SetSessionKind(booking.SessionKindGroup))
		require.NoError(t, w.SelectGroupOffering(groupID))
		require.NoError(t, w.Next())
		require.NoError(t, w.Next())
		w.SetFirstName("Nik")
		w.SetLastName("Pap")
		w.SetEmail("nik@pap.gr")
		require.NoError(t, w.Next())

		require.NoError(t, w.SelectDate("", f.now, f.loc))
		w.Rewind()

		assert.Equal(t, wizard.StepOverview, w.Step())
		assert.Equal(t, booking.GroupSessionDate, w.Draft().Date)
		req, err := w.BeginSubmit(f.now)
		require.NoError(t, err)
		assert.Equal(t, booking.GroupSessionTime, req.Time)
	})
}

func TestReleaseStaleSubmit(t *testing.T) {
	f := walkToOverview(t)
	w := f.w
	_, err := w.BeginSubmit(f.now)
	require.NoError(t, err)

	assert.False(t, w.ReleaseStaleSubmit(f.now.Add(59*time.Second), time.Minute))
	assert.True(t, w.Flags().Submitting)

	// the start time survives the session store
	restored := wizard.Restore(w.State())
	later := f.now.Add(time.Minute)
	assert.True(t, restored.ReleaseStaleSubmit(later, time.Minute))
	assert.False(t, restored.Flags().Submitting)
	require.NotNil(t, restored.Notice())
	assert.Equal(t, wizard.MsgSubmitUnconfirmed, restored.Notice().Message)
	assert.False(t, restored.ReleaseStaleSubmit(later, time.Minute))

	_, err = restored.BeginSubmit(later)
	assert.NoError(t, err)
}

func TestWizardStaleness(t *testing.T) {
	f := newFixture(t)
	w := f.w
	require.NoError(t, w.SelectSoftware(booking.SoftwareBlender))
	require.NoError(t, w.SelectDuration(booking.DurationOneHour))
	require.NoError(t, w.SelectLocation(booking.LocationTypeInPerson))
	require.NoError(t, w.Next())

	require.NoError(t, w.SelectDate("2025-03-13", f.now, f.loc))
	first, ok := w.BeginSlotQuery()
	require.True(t, ok)
	require.NoError(t, w.SelectDate("2025-03-14", f.now, f.loc))
	second, ok := w.BeginSlotQuery()
	require.True(t, ok)

	t.Run("older ticket is dropped", func(t *testing.T) {
		assert.False(t, w.ApplySlots(first, []string{"09:00"}))
		assert.Empty(t, w.Slots())
		assert.True(t, w.Flags().SlotsLoading)
	})

	t.Run("latest ticket applies", func(t *testing.T) {
		assert.True(t, w.ApplySlots(second, []string{"13:00"}))
		assert.Equal(t, []string{"13:00"}, w.Slots())
	})

	t.Run("result for a changed key is dropped", func(t *testing.T) {
		third, ok := w.BeginSlotQuery()
		require.True(t, ok)
		require.NoError(t, w.SelectDuration(booking.DurationTwoHours))
		assert.False(t, w.ApplySlots(third, []string{"15:00"}))
		assert.Empty(t, w.Draft().Date)
		assert.Empty(t, w.Slots())
	})

	t.Run("dates result after navigation is dropped", func(t *testing.T) {
		dt, ok := w.BeginDatesQuery()
		require.True(t, ok)
		w.NavigateCalendar(w.CalendarView().Next())
		assert.False(t, w.ApplyAvailableDates(dt, []string{"2025-03-20"}))
		assert.Nil(t, w.AvailableDates())
	})
}

func TestWizardSelections(t *testing.T) {
	t.Run("switching software clears dependent selections", func(t *testing.T) {
		f := newFixture(t)
		w := f.w
		require.NoError(t, w.SelectSoftware(booking.SoftwareBlender))
		require.NoError(t, w.SelectDuration(booking.DurationTwoHours))
		require.NoError(t, w.SelectLocation("integrations:google:meet"))

		require.NoError(t, w.SelectSoftware(booking.SoftwarePhotoshop))
		d := w.Draft()
		assert.Equal(t, booking.DurationOneHour, d.Duration)
		assert.Equal(t, booking.LocationTypeInPerson, d.Location)
	})

	t.Run("unsupported duration and location are rejected", func(t *testing.T) {
		f := newFixture(t)
		w := f.w
		require.NoError(t, w.SelectSoftware(booking.SoftwareBlender))
		assert.True(t, errs.Is(w.SelectDuration("90m"), booking.ErrInvalidDuration))
		assert.True(t, errs.Is(w.SelectLocation("phone"), errs.ErrValidationFailed))
	})

	t.Run("back at the first step is locked", func(t *testing.T) {
		f := newFixture(t)
		assert.True(t, errs.Is(f.w.Back(), errs.ErrStepLocked))
	})

	t.Run("email validated on blur", func(t *testing.T) {
		f := newFixture(t)
		w := f.w
		w.SetEmail("")
		w.BlurEmail()
		assert.Empty(t, w.EmailError())
		w.SetEmail("x@y")
		w.BlurEmail()
		assert.Equal(t, wizard.EmailErrorMessage, w.EmailError())
	})

	t.Run("catalog failure leaves no offerings", func(t *testing.T) {
		f := newFixture(t)
		w := f.w
		w.ApplyCatalog(nil, errors.New("boom"))
		assert.Equal(t, booking.MsgCatalogUnavailable, w.CatalogError())
		assert.Empty(t, w.Catalog())
		assert.False(t, w.Flags().CatalogLoading)
		require.NoError(t, w.SelectSoftware(booking.SoftwareBlender))
		assert.Nil(t, w.ActiveOffering())
		assert.False(t, w.CanProceed())
	})
}

func TestRestore(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.w.SelectSoftware(booking.SoftwarePhotoshop))
	require.NoError(t, f.w.Next())

	restored := wizard.Restore(f.w.State())
	if diff := cmp.Diff(f.w.State(), restored.State()); diff != "" {
		t.Errorf("State mismatch (-want +got):\n%s", diff)
	}

	broken := f.w.State()
	broken.Step = 9
	assert.Equal(t, wizard.StepServiceSelection, wizard.Restore(broken).Step())
}
