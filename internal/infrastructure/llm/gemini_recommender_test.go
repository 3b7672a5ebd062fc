package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewGeminiRecommender_MissingKey(t *testing.T) {
	_, err := NewGeminiRecommender(context.Background(), "", "", "", zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingGeminiAPIKey)
}

func TestGeminiRecommender_Recommend(t *testing.T) {
	var gotPath, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.Unmarshal(body, &req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"recommendedEvents\":\"[\\\"A beach party\\\"]\"}"}]}}]}`)
	}))
	defer srv.Close()

	rec, err := NewGeminiRecommender(context.Background(), "test-key", "gemini-test", srv.URL, zap.NewNop())
	require.NoError(t, err)

	out, err := rec.Recommend(context.Background(), "sea and sunsets", `[{"description":"A beach party","category":"birthday"}]`)
	require.NoError(t, err)

	assert.JSONEq(t, `{"recommendedEvents":"[\"A beach party\"]"}`, out)
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-test:generateContent"), gotPath)
	assert.Contains(t, gotPrompt, "sea and sunsets")
	assert.Contains(t, gotPrompt, "A beach party")
}

func TestNewGeminiRecommender_NilLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"recommendedEvents\":\"[]\"}"}]}}]}`)
	}))
	defer srv.Close()

	rec, err := NewGeminiRecommender(context.Background(), "test-key", "gemini-test", srv.URL, nil)
	require.NoError(t, err)

	out, err := rec.Recommend(context.Background(), "jazz", "[]")
	require.NoError(t, err)
	assert.JSONEq(t, `{"recommendedEvents":"[]"}`, out)
}

func TestGeminiRecommender_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)
	}))
	defer srv.Close()

	rec, err := NewGeminiRecommender(context.Background(), "test-key", "gemini-test", srv.URL, zap.NewNop())
	require.NoError(t, err)

	_, err = rec.Recommend(context.Background(), "anything", "[]")
	assert.Error(t, err)
}

func TestBuildRecommendationPrompt(t *testing.T) {
	p := BuildRecommendationPrompt("jazz", `[{"description":"x","category":"y"}]`)
	assert.Contains(t, p, "Customer interests:\njazz")
	assert.Contains(t, p, `"recommendedEvents"`)
}
