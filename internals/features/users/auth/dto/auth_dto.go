package dto

import (
	"time"

	userModel "panditku_backend/internals/features/users/user/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin owner"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ============================
// Response DTO
// ============================

type AuthUserDTO struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         AuthUserDTO `json:"user"`
}

func ToAuthUserDTO(u userModel.UserModel) AuthUserDTO {
	return AuthUserDTO{
		ID:       u.ID.String(),
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
