package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	reqdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/request"
	resdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/response"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

type BookingHandler struct {
	reservationCommands commands.ReservationCommands
	bookingQueries      queries.BookingQueries
}

func NewBookingHandler(reservationCommands commands.ReservationCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		reservationCommands: reservationCommands,
		bookingQueries:      bookingQueries,
	}
}

// @Summary Create booking
// @Description Books an individual or group session on Cal.com. Group sessions join an existing seated booking or take the earliest open slot.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional UUID for safe retries"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/create [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortWithUseCaseError(c, reqdto.BindingError(bindErr, booking.MsgMissingFields))
		return
	}

	result, err := h.reservationCommands.CreateReservation(c.Request.Context(), req.ToDomain(), key)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	if result.IsReplayed {
		c.Header(IdempotentReplayHeader, "true")
	}
	c.JSON(http.StatusOK, resdto.CreateBookingResponse{
		Success: true,
		Booking: result.Booking,
		Message: booking.MsgBookingCreated,
	})
}

// @Summary Count participants
// @Description Sums attendees over the active bookings of an event type
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingCountRequest true "Event type"
// @Success 200 {object} resdto.BookingCountResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/booking-count [post]
func (h *BookingHandler) Count(c *gin.Context) {
	var req reqdto.BookingCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithUseCaseError(c, reqdto.BindingError(err, queries.MsgEventTypeRequired))
		return
	}

	view, err := h.bookingQueries.CountParticipants(c.Request.Context(), req.EventTypeID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingCountResponse{
		BookingCount: view.BookingCount,
		EventTypeID:  view.EventTypeID,
	})
}
