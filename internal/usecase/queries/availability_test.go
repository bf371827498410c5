//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/testutil"
	queriesmock "github.com/KostasTheodoro/GArts-Edu/tests/mock/queries"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSource *queriesmock.MockSlotSource
	loc        *time.Location
	queries    queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(s.T(), err)
	s.loc = loc
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = queriesmock.NewMockSlotSource(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.mockSource, loc, testutil.DiscardLogger())
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestSlotsForDate() {
	valid := queries.SlotsForDateInput{EventTypeID: 2, Date: "2025-03-14", Duration: booking.DurationOneHour}

	s.Run("queries the whole local day", func() {
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w queries.SlotWindow) (queries.SlotSet, error) {
				assert.Equal(s.T(), 2, w.EventTypeID)
				assert.Equal(s.T(), time.Date(2025, 3, 14, 0, 0, 0, 0, s.loc), w.Start)
				assert.Equal(s.T(), time.Date(2025, 3, 14, 23, 59, 59, 0, s.loc), w.End)
				assert.Equal(s.T(), "Europe/Athens", w.TimeZone)
				assert.Equal(s.T(), 60, w.DurationMinutes)
				return queries.SlotSet{Keyed: true, ByDate: map[string][]string{
					"2025-03-14": {"2025-03-14T10:00:00+02:00", "2025-03-14T12:00:00+02:00"},
					"2025-03-15": {"2025-03-15T10:00:00+02:00"},
				}}, nil
			})

		got, err := s.queries.SlotsForDate(s.T().Context(), valid)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{"2025-03-14T10:00:00+02:00", "2025-03-14T12:00:00+02:00"}, got)
	})

	s.Run("flat answers are returned whole", func() {
		flat := []string{"2025-03-14T08:00:00Z"}
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).Return(queries.SlotSet{Flat: flat}, nil)

		got, err := s.queries.SlotsForDate(s.T().Context(), valid)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), flat, got)
	})

	s.Run("no slots on the date is an empty list", func() {
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).
			Return(queries.SlotSet{Keyed: true, ByDate: map[string][]string{}}, nil)

		got, err := s.queries.SlotsForDate(s.T().Context(), valid)

		require.NoError(s.T(), err)
		assert.NotNil(s.T(), got)
		assert.Empty(s.T(), got)
	})

	s.Run("provider failure fails open", func() {
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).
			Return(queries.SlotSet{}, errs.New("connection refused"))

		got, err := s.queries.SlotsForDate(s.T().Context(), valid)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{}, got)
	})

	s.Run("missing fields", func() {
		for _, in := range []queries.SlotsForDateInput{
			{Date: "2025-03-14", Duration: booking.DurationOneHour},
			{EventTypeID: 2, Duration: booking.DurationOneHour},
			{EventTypeID: 2, Date: "2025-03-14"},
		} {
			_, err := s.queries.SlotsForDate(s.T().Context(), in)

			v, ok := errs.AsValidation(err)
			require.True(s.T(), ok)
			assert.Equal(s.T(), booking.MsgMissingFields, v.Message)
		}
	})

	s.Run("unparsable date", func() {
		_, err := s.queries.SlotsForDate(s.T().Context(), queries.SlotsForDateInput{
			EventTypeID: 2, Date: "14/03/2025", Duration: booking.DurationOneHour,
		})

		assert.True(s.T(), errs.Is(err, errs.ErrValidationFailed))
	})
}

func (s *AvailabilityQueriesTestSuite) TestAvailableDates() {
	s.Run("zero-based month covers the whole local month", func() {
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w queries.SlotWindow) (queries.SlotSet, error) {
				assert.Equal(s.T(), time.Date(2025, 4, 1, 0, 0, 0, 0, s.loc), w.Start)
				assert.Equal(s.T(), time.Date(2025, 4, 30, 23, 59, 59, int(999*time.Millisecond), s.loc), w.End)
				assert.Equal(s.T(), 120, w.DurationMinutes)
				return queries.SlotSet{Keyed: true, ByDate: map[string][]string{
					"2025-04-09": {"2025-04-09T10:00:00+03:00"},
					"2025-04-02": {"2025-04-02T10:00:00+03:00"},
					"2025-04-05": {},
				}}, nil
			})

		got, err := s.queries.AvailableDates(s.T().Context(), queries.AvailableDatesInput{
			EventTypeID: 1, Month: 3, Year: 2025, Duration: booking.DurationTwoHours,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{"2025-04-02", "2025-04-09"}, got)
	})

	s.Run("flat timestamps bucket by business-local date", func() {
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).Return(queries.SlotSet{Flat: []string{
			"2025-03-13T22:30:00Z",
			"2025-03-14T09:00:00Z",
			"not-a-time",
		}}, nil)

		got, err := s.queries.AvailableDates(s.T().Context(), queries.AvailableDatesInput{
			EventTypeID: 1, Month: 2, Year: 2025, Duration: booking.DurationOneHour,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{"2025-03-14"}, got)
	})

	s.Run("provider failure fails open", func() {
		s.mockSource.EXPECT().FindSlots(gomock.Any(), gomock.Any()).
			Return(queries.SlotSet{}, errs.New("timeout"))

		got, err := s.queries.AvailableDates(s.T().Context(), queries.AvailableDatesInput{
			EventTypeID: 1, Month: 2, Year: 2025, Duration: booking.DurationOneHour,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{}, got)
	})

	s.Run("month out of range", func() {
		for _, month := range []int{-1, 12} {
			_, err := s.queries.AvailableDates(s.T().Context(), queries.AvailableDatesInput{
				EventTypeID: 1, Month: month, Year: 2025, Duration: booking.DurationOneHour,
			})

			assert.True(s.T(), errs.Is(err, errs.ErrValidationFailed))
		}
	})

	s.Run("missing fields", func() {
		_, err := s.queries.AvailableDates(s.T().Context(), queries.AvailableDatesInput{Month: 2, Year: 2025})

		v, ok := errs.AsValidation(err)
		require.True(s.T(), ok)
		assert.Equal(s.T(), booking.MsgMissingFields, v.Message)
	})
}

func TestLocation(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	q := queries.NewAvailabilityQueries(nil, loc, testutil.DiscardLogger())

	assert.Same(t, loc, q.Location())
}
