package interfaces

import (
	"context"

	"eventos_api/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.
type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error)
}
