package request

import "eventos_api/internal/usecase"

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

func (r SignUpRequest) ToInput() usecase.SignUpInput {
	return usecase.SignUpInput{Email: r.Email, Password: r.Password, Name: r.Name, Phone: r.Phone}
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ProfileUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}
