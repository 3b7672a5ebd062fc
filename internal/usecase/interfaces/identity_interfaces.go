package interfaces

import (
	"context"
	"time"

	"eventos_api/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for UserProfile.
// Create fails with ErrConflict when the e-mail is already registered.
type IUserRepository interface {
	Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, email, name, phone string) (entities.UserProfile, error)
	UpdateRole(ctx context.Context, email string, role entities.Role) error
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}

// ISessionStore keeps short-lived identity state: revoked tokens and password reset tokens.
type ISessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error
	// ConsumeResetToken returns the e-mail bound to token and deletes it. Empty when unknown or expired.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

// ProfileSubscription is a live feed of profile snapshots. Close must be called to release it.
type ProfileSubscription interface {
	Updates() <-chan entities.UserProfile
	Close() error
}

// IProfileFeed pushes profile changes to subscribers keyed by user id.
type IProfileFeed interface {
	Publish(ctx context.Context, profile entities.UserProfile) error
	Subscribe(ctx context.Context, userID string) (ProfileSubscription, error)
}

// IMailer sends transactional e-mail.
type IMailer interface {
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error
}

// ITokenManager issues and verifies signed access tokens.
type ITokenManager interface {
	Issue(user entities.UserProfile) (string, entities.TokenClaims, error)
	Parse(token string) (entities.TokenClaims, error)
}
