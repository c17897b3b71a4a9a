package dto

import (
	"time"

	"simitra_backend/internals/features/users/auth/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest: identifier boleh username ATAU email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserDTOs(ms []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToUserDTO(m))
	}
	return out
}
