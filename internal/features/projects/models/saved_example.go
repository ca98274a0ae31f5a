package projects_models

import (
	"time"

	assistant "codetutor/internal/features/assistant"

	"github.com/google/uuid"
)

// SavedExample is a user-curated result persisted into a project through
// an explicit save action.
type SavedExample struct {
	ID            uuid.UUID               `json:"id"            gorm:"column:id"`
	ProjectID     uuid.UUID               `json:"projectId"     gorm:"column:project_id"`
	OperationType assistant.OperationType `json:"operationType" gorm:"column:operation_type"`
	Language      assistant.Language      `json:"language"      gorm:"column:language"`
	InputText     string                  `json:"inputText"     gorm:"column:input_text"`
	OutputCode    *string                 `json:"outputCode"    gorm:"column:output_code"`
	Explanation   *string                 `json:"explanation"   gorm:"column:explanation"`
	CreatedAt     time.Time               `json:"createdAt"     gorm:"column:created_at"`
}

func (SavedExample) TableName() string {
	return "saved_examples"
}
