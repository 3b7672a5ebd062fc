package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/domain/entities"
	"eventos_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	customerClaims = entities.TokenClaims{TokenID: "jti-1", UserID: "user-1", Email: "ana@example.com", Role: entities.RoleCustomer}
	adminClaims    = entities.TokenClaims{TokenID: "jti-2", UserID: "admin-1", Email: "ops@example.com", Role: entities.RoleAdmin}
)

// newRouter returns a gin engine whose requests are authenticated as claims.
// Zero claims leave the request anonymous.
func newRouter(claims entities.TokenClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if claims.UserID != "" {
		r.Use(func(c *gin.Context) {
			middleware.SetClaims(c, claims)
			c.Next()
		})
	}
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}
