package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	OwnerUserID uuid.UUID `json:"ownerUserId" gorm:"column:owner_user_id"`
	Name        string    `json:"name"        gorm:"column:name"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Project) TableName() string {
	return "projects"
}
