package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"eventos_api/internal/adapter/http/dto/response"
	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/usecase"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler charges and lists reservation deposits of a quote.
type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDeposit godoc
// @Summary      Pay the reservation deposit of a quote
// @Description  Body is a Mercado Pago payment request, bare or wrapped in {"mp_payload": ...}. Amount and reference come from the stored quote.
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                         true  "Quote id"
// @Param        body  body  request.DepositCreateRequest  false  "Payment"
// @Success      201   {object}  response.DepositResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotes/{id}/deposits [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	quoteID := c.Param("id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		// The use case decides whether an unreadable payload is acceptable (sandbox) or not.
		_ = c.Error(err)
		mpPayload = nil
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), middleware.ActorFrom(c), quoteID, mpPayload)
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDeposit(created))
}

// ListDeposits godoc
// @Summary      List the deposits of a quote
// @Tags         deposits
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Quote id"
// @Success      200  {array}   response.DepositResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/deposits [get]
func (h *DepositHandler) ListDeposits(c *gin.Context) {
	deposits, err := h.usecase.ListByQuote(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeposits(deposits))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	if appErr, ok := mapQuoteAccessError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotPayable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PAYABLE", "The quote must be closed or under negotiation before paying a deposit", http.StatusConflict)
	default:
		return internalError(err)
	}
}
