// Package llm talks to the hosted generative model used for event recommendations.
package llm

import (
	"context"
	"errors"
	"fmt"

	"eventos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

type GeminiRecommender struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

var _ interfaces.IEventRecommender = (*GeminiRecommender)(nil)

// NewGeminiRecommender creates a Gemini API client. baseURL overrides the API host and is empty in production.
func NewGeminiRecommender(ctx context.Context, apiKey, model, baseURL string, log *zap.Logger) (*GeminiRecommender, error) {
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if log == nil {
		log = zap.NewNop()
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiRecommender{client: client, model: model, log: log.Named("gemini")}, nil
}

func (g *GeminiRecommender) Recommend(ctx context.Context, userInterests string, eventsJSON string) (string, error) {
	prompt := BuildRecommendationPrompt(userInterests, eventsJSON)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"recommendedEvents": {Type: genai.TypeString},
			},
			Required: []string{"recommendedEvents"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	g.log.Debug("model response", zap.Int("len", len(text)))
	return text, nil
}
