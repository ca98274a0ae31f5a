package users_dto

import (
	"time"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Token    string    `json:"token"`
}

type ChangePasswordRequestDTO struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type UserProfileResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
