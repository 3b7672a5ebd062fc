package handlers

import (
	"errors"
	"net/http"

	"eventos_api/internal/usecase"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// writeError renders appErr and attaches it to the context so the request logger records the cause.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapQuoteAccessError covers the lookups shared by every quote sub-resource.
func mapQuoteAccessError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrQuoteForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "This quote belongs to another user", http.StatusForbidden), true
	}
	return nil, false
}
