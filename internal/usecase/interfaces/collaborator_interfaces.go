package interfaces

import (
	"context"

	"eventos_api/internal/domain/entities"
)

// IEventRecommender calls the hosted generative model.
//
// It returns the raw model text, expected to be a JSON object with a
// "recommendedEvents" field holding a JSON array string of event descriptions.
type IEventRecommender interface {
	Recommend(ctx context.Context, userInterests string, eventsJSON string) (string, error)
}

// IDocumentRenderer renders a quote to a printable PDF.
type IDocumentRenderer interface {
	RenderQuote(q entities.Quote) ([]byte, error)
}

// IDocumentStore keeps exported documents and returns their location.
type IDocumentStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}
