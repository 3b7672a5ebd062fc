package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventos_api/internal/adapter/http/handlers/mocks"
	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProtectedRouter(auth usecase.IAuthUseCase, roles ...entities.Role) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{RequireAuth(auth)}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		actor := ActorFrom(c)
		c.String(http.StatusOK, actor.UserID+"|"+string(actor.Role))
	})
	r.GET("/protected", chain...)
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := newProtectedRouter(auth)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := newProtectedRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("revoked token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.TokenClaims{}, usecase.ErrUnauthorized)
		r := newProtectedRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.TokenClaims{UserID: "u1", Role: entities.RoleCustomer}, nil)
		r := newProtectedRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "u1|customer" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("query token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "qtok").Return(entities.TokenClaims{UserID: "u2", Role: entities.RoleCustomer}, nil)
		r := newProtectedRouter(auth)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?access_token=qtok", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.TokenClaims{UserID: "u1", Role: entities.RoleCustomer}, nil)
		r := newProtectedRouter(auth, entities.RoleAdmin)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.TokenClaims{UserID: "a1", Role: entities.RoleAdmin}, nil)
		r := newProtectedRouter(auth, entities.RoleAdmin)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("without auth", func(t *testing.T) {
		r := gin.New()
		r.GET("/admin", RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestActorFrom_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if actor := ActorFrom(c); actor != (usecase.Actor{}) {
		t.Fatalf("expected zero actor, got %+v", actor)
	}
	c.Set(claimsKey, "not claims")
	if _, ok := ClaimsFrom(c); ok {
		t.Fatalf("expected type mismatch to be ignored")
	}
}
