package handlers

import (
	"errors"
	"net/http"

	"eventos_api/internal/adapter/http/dto/request"
	"eventos_api/internal/adapter/http/dto/response"
	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/usecase"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload  = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Invalid status payload", http.StatusBadRequest)
)

// QuoteHandler serves both quote flows: modular ("build your event") and packaged plans.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitModular godoc
// @Summary      Submit a modular quote
// @Description  Prices the selected services, stores the quote and returns the summary and the chat hand-off URL.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        ref   query  string                         false  "Affiliate referral code"
// @Param        body  body   request.ModularQuoteRequest    true   "Quote"
// @Success      201   {object}  response.QuoteSubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitModular(c *gin.Context) {
	var req request.ModularQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	sub, err := h.usecase.SubmitModular(c.Request.Context(), middleware.ActorFrom(c), req.ToInput(c.Query("ref")))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteSubmission(sub))
}

// SubmitPackaged godoc
// @Summary      Submit a packaged quote
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        ref   query  string                          false  "Affiliate referral code"
// @Param        body  body   request.PackagedQuoteRequest    true   "Quote"
// @Success      201   {object}  response.QuoteSubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /packages [post]
func (h *QuoteHandler) SubmitPackaged(c *gin.Context) {
	var req request.PackagedQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	sub, err := h.usecase.SubmitPackaged(c.Request.Context(), middleware.ActorFrom(c), req.ToInput(c.Query("ref")))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteSubmission(sub))
}

// PreviewModular godoc
// @Summary      Price a service selection without saving it
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  request.ModularPreviewRequest  true  "Selection"
// @Success      200   {object}  response.QuotePreviewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) PreviewModular(c *gin.Context) {
	var req request.ModularPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	preview, err := h.usecase.PreviewModular(c.Request.Context(), req.Selections())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePreview(preview))
}

// PreviewPackaged godoc
// @Summary      Price a packaged plan without saving it
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        body  body  request.PackagedPreviewRequest  true  "Plan"
// @Success      200   {object}  response.QuotePreviewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /packages/preview [post]
func (h *QuoteHandler) PreviewPackaged(c *gin.Context) {
	var req request.PackagedPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	preview, err := h.usecase.PreviewPackaged(c.Request.Context(), req.EventCategory, req.PeopleCount, req.ResolveIncludeVenue())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePreview(preview))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListMine godoc
// @Summary      List the caller's quotes
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.QuoteResponse
// @Router       /quotes [get]
func (h *QuoteHandler) ListMine(c *gin.Context) {
	quotes, err := h.usecase.ListMine(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// UpdateStatus godoc
// @Summary      Move a quote through the sales pipeline
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                      true  "Quote id"
// @Param        body  body  request.QuoteStatusRequest  true  "Status"
// @Success      200   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	var req request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidStatusPayload)
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), req.ResolveStatus())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapQuoteAccessError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainError("UNKNOWN_SERVICE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoServicesSelected):
		return pkg.NewDomainErrorSimple("NO_SERVICES_SELECTED", "Select at least one service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Unknown quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotePersistence):
		return pkg.NewDomainError("QUOTE_PERSISTENCE_FAILED", "The quote could not be saved, please try again", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
