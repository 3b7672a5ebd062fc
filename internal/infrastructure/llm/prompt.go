package llm

import "fmt"

const recommendationPrompt = `You are an event planning assistant.

A customer described what they like. Pick the events from the catalog that best match their interests.

Rules:
- Only use descriptions that appear in the catalog, copied exactly.
- Return at most 5 events, best match first.
- Output MUST be a JSON object with a single field "recommendedEvents".
- "recommendedEvents" MUST be a string containing a JSON array of event descriptions.
- If nothing matches, "recommendedEvents" MUST be "[]".
- NO explanations. NO markdown.

Customer interests:
%s

Event catalog (JSON array of {"description","category"}):
%s
`

// BuildRecommendationPrompt fills the fixed recommendation template.
func BuildRecommendationPrompt(userInterests, eventsJSON string) string {
	return fmt.Sprintf(recommendationPrompt, userInterests, eventsJSON)
}
