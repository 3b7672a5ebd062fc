package middleware

import (
	"net/http"
	"slices"
	"strings"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth.claims"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired session", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
)

// RequireAuth validates the bearer token and stores its claims in the context.
// Browsers cannot set headers on EventSource, so an access_token query parameter is accepted as well.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetClaims(c *gin.Context, claims entities.TokenClaims) {
	c.Set(claimsKey, claims)
}

func ClaimsFrom(c *gin.Context) (entities.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return entities.TokenClaims{}, false
	}
	claims, ok := v.(entities.TokenClaims)
	return claims, ok
}

// ActorFrom returns the authenticated caller. The zero Actor is returned for anonymous requests.
func ActorFrom(c *gin.Context) usecase.Actor {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return usecase.Actor{}
	}
	return usecase.Actor{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(c.Query("access_token"))
}
