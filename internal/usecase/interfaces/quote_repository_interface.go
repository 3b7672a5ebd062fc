package interfaces

import (
	"context"

	"eventos_api/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Create assigns the human-readable id and timestamps, and writes the quote
// together with its tracking record. Lookups return a zero Quote when nothing matches.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Quote, error)
	ListByOrigin(ctx context.Context, origin string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
