package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	HashedPassword       string    `json:"-"         gorm:"column:hashed_password"`
	PasswordCreationTime time.Time `json:"-"         gorm:"column:password_creation_time"`
	CreatedAt            time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
