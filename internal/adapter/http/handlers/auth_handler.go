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

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// AuthHandler exposes account sign-up, sessions and password reset.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SignUp godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.SignUpRequest  true  "Account"
// @Success      201   {object}  response.AuthResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req request.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidAuthPayload)
		return
	}

	res, err := h.usecase.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAuthResult(res))
}

// SignIn godoc
// @Summary      Sign in with e-mail and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.SignInRequest  true  "Credentials"
// @Success      200   {object}  response.AuthResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req request.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidAuthPayload)
		return
	}

	res, err := h.usecase.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// SignOut godoc
// @Summary      Revoke the current session
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		writeError(c, errUnauthenticated)
		return
	}
	if err := h.usecase.SignOut(c.Request.Context(), claims); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestPasswordReset godoc
// @Summary      Send a password reset e-mail
// @Description  Always answers 202 so the endpoint cannot be used to discover which e-mails exist.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.PasswordResetRequest  true  "E-mail"
// @Success      202   {object}  response.MessageResponse
// @Router       /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req request.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidAuthPayload)
		return
	}
	if err := h.usecase.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.MessageResponse{Message: "If the e-mail is registered, a reset link is on its way"})
}

// ConfirmPasswordReset godoc
// @Summary      Set a new password with a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  request.PasswordResetConfirmRequest  true  "Token and password"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req request.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidAuthPayload)
		return
	}
	if err := h.usecase.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignUp), errors.Is(err, usecase.ErrInvalidProfileInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password must have at least 8 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "An account with this e-mail already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid e-mail or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidResetToken):
		return pkg.NewDomainErrorSimple("INVALID_RESET_TOKEN", "The reset link is invalid or has expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
