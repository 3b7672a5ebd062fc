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

type AffiliateHandler struct {
	usecase usecase.IAffiliateUseCase
}

func NewAffiliateHandler(uc usecase.IAffiliateUseCase) *AffiliateHandler {
	return &AffiliateHandler{usecase: uc}
}

// Register godoc
// @Summary      Join the affiliate program
// @Tags         affiliates
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.AffiliateRegistrationRequest  true  "Registration"
// @Success      201   {object}  response.AffiliateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /affiliates [post]
func (h *AffiliateHandler) Register(c *gin.Context) {
	var req request.AffiliateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_AFFILIATE_INPUT", "Invalid affiliate payload", http.StatusBadRequest))
		return
	}

	a, err := h.usecase.Register(c.Request.Context(), middleware.ActorFrom(c), req.ToInput())
	if err != nil {
		writeError(c, mapAffiliateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAffiliate(a))
}

// GetMine godoc
// @Summary      Affiliate dashboard
// @Tags         affiliates
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.AffiliateOverviewResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /affiliates/me [get]
func (h *AffiliateHandler) GetMine(c *gin.Context) {
	overview, err := h.usecase.GetMine(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, mapAffiliateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAffiliateOverview(overview))
}

func mapAffiliateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAffiliateInput):
		return pkg.NewDomainError("INVALID_AFFILIATE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAffiliateAlreadyExists):
		return pkg.NewDomainErrorSimple("AFFILIATE_ALREADY_EXISTS", "You are already registered as an affiliate", http.StatusConflict)
	case errors.Is(err, usecase.ErrAffiliateNotFound):
		return pkg.NewDomainErrorSimple("AFFILIATE_NOT_FOUND", "You are not registered as an affiliate", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAffiliateCodeUnavailable):
		return pkg.NewDomainError("AFFILIATE_CODE_UNAVAILABLE", "Could not allocate a referral code, please try again", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
