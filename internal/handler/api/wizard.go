package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	reqdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/request"
	resdto "github.com/KostasTheodoro/GArts-Edu/internal/handler/dto/response"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/httperr"
	"github.com/KostasTheodoro/GArts-Edu/internal/handler/middleware"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/cookie"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/commands"
)

type WizardHandler struct {
	wizardCommands commands.WizardCommands
	sessionTokens  usecase.SessionTokens
	cfg            config.Config
}

func NewWizardHandler(wizardCommands commands.WizardCommands, sessionTokens usecase.SessionTokens, cfg config.Config) *WizardHandler {
	return &WizardHandler{
		wizardCommands: wizardCommands,
		sessionTokens:  sessionTokens,
		cfg:            cfg,
	}
}

// @Summary Start booking wizard
// @Description Opens a wizard session, loads the catalog and sets the session cookie
// @Tags wizard
// @Produce json
// @Success 201 {object} resdto.StartWizardResponse
// @Failure 503 {object} httperr.Response
// @Router /api/wizard/sessions [post]
func (h *WizardHandler) Start(c *gin.Context) {
	view, err := h.wizardCommands.Start(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	token, err := h.sessionTokens.IssueToken(view.Wizard.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalServerError, nil)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	cookie.SetSessionCookie(c, h.cfg.Cookie, token, h.sessionTokens.TokenDuration())

	c.JSON(http.StatusCreated, resdto.StartWizardResponse{
		Token:  token,
		Wizard: res,
	})
}

// @Summary Current wizard state
// @Tags wizard
// @Security SessionCookie
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/wizard/session [get]
func (h *WizardHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c, func() (*commands.WizardView, error) {
		return h.wizardCommands.Get(c.Request.Context(), id)
	})
}

// @Summary Change wizard fields
// @Description Applies only the fields present in the body. Slot and date availability reload when their inputs change.
// @Tags wizard
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body reqdto.WizardPatchRequest true "Changed fields"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/session [patch]
func (h *WizardHandler) Patch(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.WizardPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithUseCaseError(c, reqdto.BindingError(err, booking.MsgMissingFields))
		return
	}

	h.respond(c, func() (*commands.WizardView, error) {
		return h.wizardCommands.Patch(c.Request.Context(), id, req.ToPatch())
	})
}

// @Summary Advance one step
// @Tags wizard
// @Security SessionCookie
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/session/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c, func() (*commands.WizardView, error) {
		return h.wizardCommands.Next(c.Request.Context(), id)
	})
}

// @Summary Go back one step
// @Tags wizard
// @Security SessionCookie
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/session/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c, func() (*commands.WizardView, error) {
		return h.wizardCommands.Back(c.Request.Context(), id)
	})
}

// @Summary Month grid
// @Description Month grid of the displayed month with availability applied
// @Tags wizard
// @Security SessionCookie
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Failure 404 {object} httperr.Response
// @Router /api/wizard/session/calendar [get]
func (h *WizardHandler) Calendar(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardCommands.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res.Calendar)
}

// @Summary Navigate the calendar
// @Description Moves the displayed month by direction or to a month (1-12) and year, then reloads available dates
// @Tags wizard
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body reqdto.CalendarNavigateRequest true "Target month"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Router /api/wizard/session/calendar [post]
func (h *WizardHandler) Navigate(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.CalendarNavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithUseCaseError(c, reqdto.BindingError(err, booking.MsgMissingFields))
		return
	}

	h.respond(c, func() (*commands.WizardView, error) {
		return h.wizardCommands.Navigate(c.Request.Context(), id, req.ToInput())
	})
}

// @Summary Dismiss the notice
// @Tags wizard
// @Security SessionCookie
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Router /api/wizard/session/notice/dismiss [post]
func (h *WizardHandler) DismissNotice(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c, func() (*commands.WizardView, error) {
		return h.wizardCommands.DismissNotice(c.Request.Context(), id)
	})
}

// @Summary Submit the booking
// @Description Creates the booking from the wizard draft. Only one submission runs at a time per session.
// @Tags wizard
// @Security SessionCookie
// @Produce json
// @Param Idempotency-Key header string false "Optional UUID for safe retries"
// @Success 200 {object} resdto.SubmitWizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/wizard/session/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	key, err := idempotencyKey(c)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.wizardCommands.Submit(c.Request.Context(), id, key)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromWizardView(result.View)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if result.IsReplayed {
		c.Header(IdempotentReplayHeader, "true")
	}
	c.JSON(http.StatusOK, resdto.SubmitWizardResponse{
		Success: true,
		Message: booking.MsgBookingConfirmed,
		Wizard:  res,
	})
}

// @Summary Close the wizard
// @Description Discards the session and clears the session cookie
// @Tags wizard
// @Security SessionCookie
// @Success 204 "No Content"
// @Router /api/wizard/session [delete]
func (h *WizardHandler) Close(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.wizardCommands.Close(c.Request.Context(), id); err != nil && !errs.Is(err, errs.ErrSessionNotFound) {
		abortWithUseCaseError(c, err)
		return
	}

	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) respond(c *gin.Context, call func() (*commands.WizardView, error)) {
	view, err := call()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *WizardHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrSessionNotFound, msgSessionContextAbsent, nil)
		return uuid.Nil, false
	}
	return id, true
}
