package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	reqdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/request"
	resdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/response"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Slots for one date
// @Description Lists open start times of an offering on a local date. Provider failures yield an empty list.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityRequest true "Slot query"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/availability [post]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithUseCaseError(c, reqdto.BindingError(err, booking.MsgMissingFields))
		return
	}

	slots, err := h.availabilityQueries.SlotsForDate(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotTimes(slots))
}

// @Summary Dates with availability in a month
// @Description Lists the local dates of a month (0-based) that have at least one slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.AvailableDatesRequest true "Month query"
// @Success 200 {object} resdto.AvailableDatesResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/available-dates [post]
func (h *AvailabilityHandler) AvailableDates(c *gin.Context) {
	var req reqdto.AvailableDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithUseCaseError(c, reqdto.BindingError(err, booking.MsgMissingFields))
		return
	}

	dates, err := h.availabilityQueries.AvailableDates(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if dates == nil {
		dates = []string{}
	}

	c.JSON(http.StatusOK, resdto.AvailableDatesResponse{AvailableDates: dates})
}
