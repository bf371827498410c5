package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/httperr"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
)

const (
	IdempotencyKeyHeader    = "Idempotency-Key"
	IdempotentReplayHeader  = "Idempotent-Replayed"
	msgInvalidRequest       = "Invalid request format"
	msgInvalidIdempotency   = "Idempotency-Key must be a UUID"
	msgSubmissionInFlight   = "Booking submission already in progress"
	msgStepLocked           = "Complete the current step before continuing"
	msgDateNotSelectable    = "Selected date is not available"
	msgSessionNotFound      = "Wizard session not found or expired"
	msgSessionStoreDown     = "Wizard sessions are temporarily unavailable"
	msgInternalServerError  = "Internal server error"
	msgSessionContextAbsent = "Wizard session missing from request context"
)

// abortWithUseCaseError maps a use case failure to its HTTP status and the
// error envelope.
func abortWithUseCaseError(c *gin.Context, err error) {
	if v, ok := errs.AsValidation(err); ok {
		httperr.AbortWithResponse(c, err, httperr.Response{
			Status:        http.StatusBadRequest,
			Error:         v.Message,
			MissingFields: v.MissingFields,
		})
		return
	}
	if up, ok := errs.AsUpstream(err); ok {
		httperr.AbortWithError(c, up.Status, err, up.Message, httperr.UpstreamDetails(up.Details))
		return
	}

	switch {
	case errs.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgSessionNotFound, nil)
	case errs.Is(err, errs.ErrSessionStoreFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msgSessionStoreDown, nil)
	case errs.Is(err, errs.ErrSubmissionInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, msgSubmissionInFlight, nil)
	case errs.Is(err, errs.ErrDuplicateReservation):
		httperr.AbortWithError(c, http.StatusConflict, err, commands.MsgDuplicateRequest, nil)
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, commands.MsgRequestInProgress, nil)
	case errs.Is(err, errs.ErrNoSlotsAvailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, booking.MsgNoGroupSlots, nil)
	case errs.Is(err, errs.ErrDateNotSelectable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgDateNotSelectable, nil)
	case errs.Is(err, errs.ErrStepLocked):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgStepLocked, nil)
	case errs.Is(err, errs.ErrValidationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalServerError, nil)
	}
}

// idempotencyKey reads the optional Idempotency-Key header.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(IdempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.NewValidationError(msgInvalidIdempotency)
	}
	return &key, nil
}
