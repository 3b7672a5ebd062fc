package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"eventos_api/internal/domain/catalog"
	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type RecommendationMetrics interface {
	Recommendation(outcome string)
}

// IRecommendationUseCase suggests catalog events for free-text interests.
// It never fails: anything unexpected yields an empty list.
type IRecommendationUseCase interface {
	Recommend(ctx context.Context, interests string) []entities.EventType
}

type RecommendationUseCase struct {
	recommender interfaces.IEventRecommender
	metrics     RecommendationMetrics
	log         *zap.Logger
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(recommender interfaces.IEventRecommender, metrics RecommendationMetrics, log *zap.Logger) *RecommendationUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommendationUseCase{recommender: recommender, metrics: metrics, log: log.Named("recommendation")}
}

type eventSummary struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (u *RecommendationUseCase) Recommend(ctx context.Context, interests string) []entities.EventType {
	interests = strings.TrimSpace(interests)
	if interests == "" || u.recommender == nil {
		u.metrics.Recommendation("skipped")
		return []entities.EventType{}
	}

	events := catalog.Events()
	eventsJSON, err := catalogEventsJSON(events)
	if err != nil {
		u.log.Warn("encode catalog failed", zap.Error(err))
		u.metrics.Recommendation("error")
		return []entities.EventType{}
	}

	raw, err := u.recommender.Recommend(ctx, interests, eventsJSON)
	if err != nil {
		u.log.Warn("model call failed", zap.Error(err))
		u.metrics.Recommendation("error")
		return []entities.EventType{}
	}

	descriptions, err := parseRecommendedDescriptions(raw)
	if err != nil {
		u.log.Warn("malformed model response", zap.Error(err), zap.Int("response_len", len(raw)))
		u.metrics.Recommendation("malformed")
		return []entities.EventType{}
	}

	matched := matchEvents(events, descriptions)
	u.metrics.Recommendation("ok")
	u.log.Debug("recommendations ready", zap.Int("suggested", len(descriptions)), zap.Int("matched", len(matched)))
	return matched
}

func catalogEventsJSON(events []entities.EventType) (string, error) {
	summaries := make([]eventSummary, len(events))
	for i, e := range events {
		summaries[i] = eventSummary{Description: e.Description, Category: e.Category}
	}
	b, err := json.Marshal(summaries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// parseRecommendedDescriptions reads {"recommendedEvents": "<JSON array of strings>"}.
// A bare array in place of the string is accepted too.
func parseRecommendedDescriptions(raw string) ([]string, error) {
	body := extractJSONObject(raw)
	if body == "" {
		return nil, errors.New("no JSON object in response")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, err
	}
	field, ok := envelope["recommendedEvents"]
	if !ok {
		return nil, errors.New("missing recommendedEvents")
	}

	var inner string
	if err := json.Unmarshal(field, &inner); err == nil {
		field = json.RawMessage(inner)
	}

	var descriptions []string
	if err := json.Unmarshal(field, &descriptions); err != nil {
		return nil, errors.New("recommendedEvents is not an array of strings")
	}
	return descriptions, nil
}

func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// matchEvents keeps catalog order and returns each event at most once.
// Descriptions must match exactly.
func matchEvents(events []entities.EventType, descriptions []string) []entities.EventType {
	wanted := make(map[string]struct{}, len(descriptions))
	for _, d := range descriptions {
		wanted[d] = struct{}{}
	}
	out := make([]entities.EventType, 0, len(wanted))
	seen := make(map[string]struct{}, len(wanted))
	for _, e := range events {
		if _, ok := wanted[e.Description]; !ok {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}
