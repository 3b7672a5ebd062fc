package handlers

import (
	"io"
	"net/http"

	"eventos_api/internal/adapter/http/dto/request"
	"eventos_api/internal/adapter/http/dto/response"
	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the signed-in user's own profile.
type ProfileHandler struct {
	usecase usecase.IAuthUseCase
}

func NewProfileHandler(uc usecase.IAuthUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetProfile godoc
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ProfileResponse
// @Router       /me/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.usecase.GetProfile(c.Request.Context(), middleware.ActorFrom(c).UserID)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// UpdateProfile godoc
// @Summary      Update name and phone
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.ProfileUpdateRequest  true  "Profile"
// @Success      200   {object}  response.ProfileResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /me/profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req request.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidAuthPayload)
		return
	}

	p, err := h.usecase.UpdateProfile(c.Request.Context(), middleware.ActorFrom(c), req.Name, req.Phone)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// StreamProfile godoc
// @Summary      Live profile updates
// @Description  Server-sent events. The first "profile" event is the current snapshot; later events follow every change.
// @Tags         profile
// @Produce      text/event-stream
// @Security     Bearer
// @Success      200  {object}  response.ProfileResponse
// @Router       /me/profile/stream [get]
func (h *ProfileHandler) StreamProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sub, err := h.usecase.SubscribeProfile(ctx, middleware.ActorFrom(c).UserID)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	defer sub.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	updates := sub.Updates()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case p, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("profile", response.FromProfile(p))
			return true
		}
	})
}
