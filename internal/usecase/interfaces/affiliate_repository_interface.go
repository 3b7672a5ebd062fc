package interfaces

import (
	"context"

	"eventos_api/internal/domain/entities"
)

// IAffiliateRepository abstracts DynamoDB persistence for Affiliate.
// Create fails with ErrConflict when the user or the code is already registered.
type IAffiliateRepository interface {
	Create(ctx context.Context, a entities.Affiliate) (entities.Affiliate, error)
	GetByUserID(ctx context.Context, userID string) (entities.Affiliate, error)
	GetByCode(ctx context.Context, code string) (entities.Affiliate, error)
}
