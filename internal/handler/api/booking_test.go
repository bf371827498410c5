//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/api"
	reqdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/request"
	resdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/response"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/ptr"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/builder"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/httptest"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/testutil"
	commandsmock "github.com/KostasTheodoro/GArts-Edu/tests/mock/commands"
	queriesmock "github.com/KostasTheodoro/GArts-Edu/tests/mock/queries"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCatalog      *queriesmock.MockCatalogQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockBookings     *queriesmock.MockBookingQueries
	mockReservations *commandsmock.MockReservationCommands
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)

	catalogHandler := api.NewCatalogHandler(s.mockCatalog)
	availabilityHandler := api.NewAvailabilityHandler(s.mockAvailability)
	bookingHandler := api.NewBookingHandler(s.mockReservations, s.mockBookings)

	s.router.GET("/api/bookings/event-types", catalogHandler.ListEventTypes)
	s.router.POST("/api/bookings/availability", availabilityHandler.Slots)
	s.router.POST("/api/bookings/available-dates", availabilityHandler.AvailableDates)
	s.router.POST("/api/bookings/create", bookingHandler.Create)
	s.router.POST("/api/bookings/booking-count", bookingHandler.Count)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestListEventTypes
// ================================================================================

func (s *BookingHandlerTestSuite) TestListEventTypes() {
	url := "/api/bookings/event-types"

	s.Run("success: returns the bookable catalog", func() {
		s.mockCatalog.EXPECT().ListOfferings(gomock.Any()).Return(builder.StandardCatalog(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.EventTypesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.EventTypes, 3)
		s.Equal("blender-private", body.EventTypes[0].Slug)
		s.Equal([]int{60, 120}, body.EventTypes[0].AvailableDurations)
		s.Require().NotNil(body.EventTypes[2].SeatsPerTimeSlot)
		s.Equal(8, *body.EventTypes[2].SeatsPerTimeSlot)
	})

	s.Run("error: upstream status and body are mirrored", func() {
		s.mockCatalog.EXPECT().ListOfferings(gomock.Any()).Return(nil,
			errs.NewUpstreamError(errs.New("401"), http.StatusUnauthorized, queries.MsgCatalogFetchFailed, `{"message":"invalid api key"}`))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, queries.MsgCatalogFetchFailed)
		s.JSONEq(`{"message":"invalid api key"}`, string(body.Details))
	})

	s.Run("error: plain-text upstream body is kept as a string", func() {
		s.mockCatalog.EXPECT().ListOfferings(gomock.Any()).Return(nil,
			errs.NewUpstreamError(errs.New("503"), http.StatusServiceUnavailable, queries.MsgCatalogFetchFailed, "maintenance"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, queries.MsgCatalogFetchFailed)
		s.JSONEq(`"maintenance"`, string(body.Details))
	})
}

// ================================================================================
// TestSlots / TestAvailableDates
// ================================================================================

func (s *BookingHandlerTestSuite) TestSlots() {
	url := "/api/bookings/availability"
	reqBody := reqdto.AvailabilityRequest{EventTypeID: builder.PhotoshopID, Date: "2025-03-14", Duration: "1h"}

	s.Run("success: returns slot timestamps", func() {
		s.mockAvailability.EXPECT().SlotsForDate(gomock.Any(), queries.SlotsForDateInput{
			EventTypeID: builder.PhotoshopID, Date: "2025-03-14", Duration: booking.DurationOneHour,
		}).Return([]string{"2025-03-14T10:00:00+02:00"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.SlotResponse{{Time: "2025-03-14T10:00:00+02:00"}}, body.Slots)
	})

	s.Run("success: no slots is an empty list", func() {
		s.mockAvailability.EXPECT().SlotsForDate(gomock.Any(), gomock.Any()).Return([]string{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"slots":[]}`, rec.Body.String())
	})

	s.Run("error: missing fields are listed together", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("eventTypeId", nil), testutil.Field("duration", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.MsgMissingFields)
		s.ElementsMatch([]string{"eventTypeId", "duration"}, body.MissingFields)
	})

	s.Run("error: malformed date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "14-03-2025"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *BookingHandlerTestSuite) TestAvailableDates() {
	url := "/api/bookings/available-dates"
	reqBody := reqdto.AvailableDatesRequest{EventTypeID: builder.BlenderID, Month: ptr.Of(0), Year: 2026, Duration: "2h"}

	s.Run("success: zero-based month is passed through", func() {
		s.mockAvailability.EXPECT().AvailableDates(gomock.Any(), queries.AvailableDatesInput{
			EventTypeID: builder.BlenderID, Month: 0, Year: 2026, Duration: booking.DurationTwoHours,
		}).Return([]string{"2026-01-08"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.AvailableDatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"2026-01-08"}, body.AvailableDates)
	})

	s.Run("success: nil result is an empty list", func() {
		s.mockAvailability.EXPECT().AvailableDates(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"availableDates":[]}`, rec.Body.String())
	})

	s.Run("error: month out of range", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("month", 12))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid month")
	})

	s.Run("error: missing month", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("month", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.MsgMissingFields)
		s.Equal([]string{"month"}, body.MissingFields)
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings/create"
	reqBody := builder.NewBookingBuilder().BuildDTO()
	created := json.RawMessage(`{"id":501,"status":"ACCEPTED"}`)

	s.Run("success: returns the provider booking", func() {
		s.mockReservations.EXPECT().CreateReservation(gomock.Any(), builder.NewBookingBuilder().BuildDomain(), nil).
			Return(&commands.CreateReservationResult{Booking: created}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(booking.MsgBookingCreated, body.Message)
		s.JSONEq(string(created), string(body.Booking))
		s.Empty(rec.Header().Get(api.IdempotentReplayHeader))
	})

	s.Run("success: replay is flagged", func() {
		key := uuid.New()
		s.mockReservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), &key).
			Return(&commands.CreateReservationResult{Booking: created, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.IdempotencyKeyHeader: key.String()})

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayHeader: "true"})
	})

	s.Run("error: idempotency key must be a UUID", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.IdempotencyKeyHeader: "not-a-uuid"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: malformed time is rejected before the gateway", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("time", "25:99"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time")
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object", "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantMissing []string
	}{
		{
			name:        "missing fields",
			err:         errs.NewValidationError(booking.MsgMissingFields, "email", "location"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: booking.MsgMissingFields,
			wantMissing: []string{"email", "location"},
		},
		{
			name: "provider rejection keeps its status",
			err: errs.Mark(
				errs.NewUpstreamError(errs.New("400"), http.StatusBadRequest, booking.MsgAlreadyBooked, `{"message":"booker_limit_exceeded_error"}`),
				errs.ErrReservationRejected),
			wantStatus:  http.StatusBadRequest,
			wantMessage: booking.MsgAlreadyBooked,
		},
		{
			name: "transport failure",
			err: errs.Mark(
				errs.NewUpstreamError(errs.New("reset"), http.StatusBadGateway, booking.MsgTransportFailed, ""),
				errs.ErrReservationTransportFailed),
			wantStatus:  http.StatusBadGateway,
			wantMessage: booking.MsgTransportFailed,
		},
		{
			name:        "no group slots",
			err:         errs.Mark(errs.New(booking.MsgNoGroupSlots), errs.ErrNoSlotsAvailable),
			wantStatus:  http.StatusBadRequest,
			wantMessage: booking.MsgNoGroupSlots,
		},
		{
			name:        "duplicate idempotency key",
			err:         errs.Mark(errs.New(commands.MsgDuplicateRequest), errs.ErrDuplicateReservation),
			wantStatus:  http.StatusConflict,
			wantMessage: commands.MsgDuplicateRequest,
		},
		{
			name:        "same idempotency key still in flight",
			err:         errs.Mark(errs.New(commands.MsgRequestInProgress), errs.ErrIdempotencyInProgress),
			wantStatus:  http.StatusConflict,
			wantMessage: commands.MsgRequestInProgress,
		},
		{
			name:        "unparsable start",
			err:         errs.Mark(errs.New("parse start"), errs.ErrValidationFailed),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "unexpected failure",
			err:         errs.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		s.Run("error: "+tt.name, func() {
			s.mockReservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

			body := httptest.AssertErrorResponse(s.T(), rec, tt.wantStatus, tt.wantMessage)
			s.Equal(tt.wantMissing, body.MissingFields)
		})
	}
}

// ================================================================================
// TestCount
// ================================================================================

func (s *BookingHandlerTestSuite) TestCount() {
	url := "/api/bookings/booking-count"

	s.Run("success: returns the participant count", func() {
		s.mockBookings.EXPECT().CountParticipants(gomock.Any(), builder.GroupID).
			Return(&queries.BookingCountView{BookingCount: 3, EventTypeID: builder.GroupID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.BookingCountRequest{EventTypeID: builder.GroupID}, "")

		var body resdto.BookingCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.BookingCountResponse{BookingCount: 3, EventTypeID: builder.GroupID}, body)
	})

	s.Run("error: event type required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, queries.MsgEventTypeRequired)
	})

	s.Run("error: upstream failure", func() {
		s.mockBookings.EXPECT().CountParticipants(gomock.Any(), builder.GroupID).
			Return(nil, errs.NewUpstreamError(errs.New("down"), http.StatusBadGateway, queries.MsgBookingsFetchFailed, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.BookingCountRequest{EventTypeID: builder.GroupID}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, queries.MsgBookingsFetchFailed)
	})
}
