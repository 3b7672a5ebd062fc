package handlers

import (
	"net/http"

	"eventos_api/internal/adapter/http/dto/request"
	"eventos_api/internal/adapter/http/dto/response"
	"eventos_api/internal/usecase"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// Recommend godoc
// @Summary      Suggest events for free-text interests
// @Description  Returns an empty list when nothing matches or the model is unavailable.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body  request.RecommendationRequest  true  "Interests"
// @Success      200   {object}  response.RecommendationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req request.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	c.JSON(http.StatusOK, response.RecommendationResponse{Events: h.usecase.Recommend(c.Request.Context(), req.Interests)})
}
