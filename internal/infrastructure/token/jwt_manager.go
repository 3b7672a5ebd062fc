// Package token signs and verifies HS256 access tokens.
package token

import (
	"errors"
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenManager = (*JWTManager)(nil)

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *JWTManager) Issue(user entities.UserProfile) (string, entities.TokenClaims, error) {
	if user.ID == "" {
		return "", entities.TokenClaims{}, errors.New("empty user id passed to Issue")
	}
	now := m.now()
	exp := now.Add(m.ttl)
	c := claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", entities.TokenClaims{}, err
	}
	return signed, toTokenClaims(c), nil
}

func (m *JWTManager) Parse(tokenString string) (entities.TokenClaims, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return entities.TokenClaims{}, ErrInvalidToken
	}
	if c.Subject == "" || c.ID == "" {
		return entities.TokenClaims{}, ErrInvalidToken
	}
	return toTokenClaims(c), nil
}

func toTokenClaims(c claims) entities.TokenClaims {
	out := entities.TokenClaims{
		TokenID: c.ID,
		UserID:  c.Subject,
		Email:   c.Email,
		Role:    entities.Role(c.Role),
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
