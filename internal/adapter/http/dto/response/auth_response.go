package response

import (
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type AuthResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      ProfileResponse `json:"user"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		TokenType: "Bearer",
		ExpiresAt: r.ExpiresAt,
		User:      FromProfile(r.User),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
