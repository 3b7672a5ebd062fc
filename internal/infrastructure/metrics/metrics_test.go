package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.QuoteSubmitted("modular")
	m.QuoteSubmitted("modular")
	m.QuoteSubmitted("packaged")
	m.QuoteRejected("validation")
	m.Recommendation("empty")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotesSubmitted.WithLabelValues("modular")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesSubmitted.WithLabelValues("packaged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quoteFailures.WithLabelValues("validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues("empty")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `http_request_duration_seconds_count{method="GET",route="/v1/ping",status="204"} 1`), body)
}
