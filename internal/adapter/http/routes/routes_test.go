package routes

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventos_api/internal/adapter/http/handlers"
	"eventos_api/internal/adapter/http/handlers/mocks"
	"eventos_api/internal/domain/entities"
	"eventos_api/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	router *gin.Engine
	auth   *mocks.MockIAuthUseCase
	quotes *mocks.MockIQuoteUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	auth := mocks.NewMockIAuthUseCase(ctrl)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	h := Handlers{
		Catalog:         handlers.NewCatalogHandler(),
		Quotes:          handlers.NewQuoteHandler(quotes),
		Export:          handlers.NewExportHandler(mocks.NewMockIExportUseCase(ctrl)),
		Deposits:        handlers.NewDepositHandler(mocks.NewMockIDepositUseCase(ctrl)),
		Auth:            handlers.NewAuthHandler(auth),
		Profile:         handlers.NewProfileHandler(auth),
		Affiliates:      handlers.NewAffiliateHandler(mocks.NewMockIAffiliateUseCase(ctrl)),
		Recommendations: handlers.NewRecommendationHandler(mocks.NewMockIRecommendationUseCase(ctrl)),
	}
	router := NewRouter(h, Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		Authenticator:  auth,
		Metrics:        metrics.New(),
		Log:            zap.NewNop(),
	})
	return fixture{router: router, auth: auth, quotes: quotes}
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	f := newFixture(t)

	w := serve(f.router, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = serve(f.router, httptest.NewRequest(http.MethodGet, "/v1/catalog/services", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(f.router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")
}

func TestNewRouter_ProtectedRoutes(t *testing.T) {
	f := newFixture(t)

	w := serve(f.router, httptest.NewRequest(http.MethodGet, "/v1/quotes", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(f.router, httptest.NewRequest(http.MethodGet, "/v1/me/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.auth.EXPECT().Authenticate(gomock.Any(), "customer-token").
		Return(entities.TokenClaims{UserID: "user-1", Role: entities.RoleCustomer}, nil)
	req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/EV-1/status", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Authorization", "Bearer customer-token")
	req.Header.Set("Content-Type", "application/json")
	w = serve(f.router, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").
		Return(entities.TokenClaims{UserID: "admin-1", Role: entities.RoleAdmin}, nil)
	f.quotes.EXPECT().UpdateStatus(gomock.Any(), "EV-1", entities.QuoteStatusClosed).
		Return(entities.Quote{ID: "EV-1", Status: entities.QuoteStatusClosed}, nil)
	req = httptest.NewRequest(http.MethodPatch, "/v1/quotes/EV-1/status", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Authorization", "Bearer admin-token")
	req.Header.Set("Content-Type", "application/json")
	w = serve(f.router, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := serve(f.router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, http.NotFoundHandler(), port, time.Second, zap.NewNop())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
