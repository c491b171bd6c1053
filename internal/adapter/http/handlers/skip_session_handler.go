package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	request "skip_selector/internal/adapter/http/dto/request"
	response "skip_selector/internal/adapter/http/dto/response"
	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase"
	"skip_selector/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPriceFilterPayload = pkg.NewDomainErrorSimple("INVALID_PRICE_FILTER_INPUT", "Invalid price filter payload", http.StatusBadRequest)
	errInvalidSelectionPayload   = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)
)

// SkipSessionHandler serves the skip selection step of the booking flow.

type SkipSessionHandler struct {
	usecase usecase.ISkipSelectionUseCase
	waste   response.WasteInfo
}

func NewSkipSessionHandler(uc usecase.ISkipSelectionUseCase, waste response.WasteInfo) *SkipSessionHandler {
	return &SkipSessionHandler{usecase: uc, waste: waste}
}

// StartSession godoc
// @Summary      Start a skip selection session
// @Description  Creates a session and loads the skip offerings for the configured location. A failed load is reported in the body, not as an error status.
// @Tags         skip-sessions
// @Produce      json
// @Success      201  {object}  response.SkipPageResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /skip-sessions [post]
func (h *SkipSessionHandler) StartSession(c *gin.Context) {
	s, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		log.Printf("[skips][handler] start failed err=%v", err)
		appErr := mapSkipSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[skips][handler] start success session_id=%s status=%s", s.ID, s.Status)

	c.JSON(http.StatusCreated, response.FromBookingSession(s, h.waste))
}

// GetSession godoc
// @Summary      Get the skip selection page
// @Tags         skip-sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SkipPageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id} [get]
func (h *SkipSessionHandler) GetSession(c *gin.Context) {
	h.respond(c, h.usecase.GetSession)
}

// Retry godoc
// @Summary      Retry loading the skip offerings
// @Tags         skip-sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SkipPageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id}/retry [post]
func (h *SkipSessionHandler) Retry(c *gin.Context) {
	h.respond(c, h.usecase.Retry)
}

// ApplyPriceFilter godoc
// @Summary      Apply the price filter
// @Description  Bounds are inclusive and compared with the price shown for the current VAT mode. Each bound may be a string or a number; blank or invalid bounds are ignored.
// @Tags         skip-sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session ID"
// @Param        body        body  request.PriceFilterRequest  true  "Raw min/max inputs"
// @Success      200  {object}  response.SkipPageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id}/price-filter [put]
func (h *SkipSessionHandler) ApplyPriceFilter(c *gin.Context) {
	var payload request.PriceFilterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceFilterPayload.HTTPStatus, errInvalidPriceFilterPayload.ToHTTPError())
		return
	}

	h.respond(c, func(ctx context.Context, sessionID string) (entities.BookingSession, error) {
		return h.usecase.ApplyPriceFilter(ctx, sessionID, payload.RawMin(), payload.RawMax())
	})
}

// ClearPriceFilter godoc
// @Summary      Clear the price filter
// @Tags         skip-sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SkipPageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id}/price-filter [delete]
func (h *SkipSessionHandler) ClearPriceFilter(c *gin.Context) {
	h.respond(c, h.usecase.ClearPriceFilter)
}

// ToggleTaxMode godoc
// @Summary      Toggle prices between including and excluding VAT
// @Tags         skip-sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SkipPageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id}/tax-mode/toggle [post]
func (h *SkipSessionHandler) ToggleTaxMode(c *gin.Context) {
	h.respond(c, h.usecase.ToggleTaxMode)
}

// SelectOffering godoc
// @Summary      Select a skip
// @Description  Restricted or unknown skips are ignored and the unchanged page is returned.
// @Tags         skip-sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                    true  "Session ID"
// @Param        body        body  request.SelectionRequest  true  "Offering to select"
// @Success      200  {object}  response.SkipPageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id}/selection [put]
func (h *SkipSessionHandler) SelectOffering(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	h.respond(c, func(ctx context.Context, sessionID string) (entities.BookingSession, error) {
		return h.usecase.SelectOffering(ctx, sessionID, payload.OfferingID)
	})
}

// EndSession godoc
// @Summary      End a skip selection session
// @Tags         skip-sessions
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /skip-sessions/{session_id} [delete]
func (h *SkipSessionHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := h.usecase.EndSession(c.Request.Context(), sessionID); err != nil {
		log.Printf("[skips][handler] end failed session_id=%s err=%v", sessionID, err)
		appErr := mapSkipSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SkipSessionHandler) respond(
	c *gin.Context,
	action func(ctx context.Context, sessionID string) (entities.BookingSession, error),
) {
	sessionID := c.Param("session_id")
	s, err := action(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[skips][handler] request failed method=%s path=%s session_id=%s err=%v", c.Request.Method, c.FullPath(), sessionID, err)
		appErr := mapSkipSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s, h.waste))
}

func mapSkipSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidOfferingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Skip selection session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
