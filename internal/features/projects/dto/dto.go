package projects_dto

import (
	"time"

	assistant "codetutor/internal/features/assistant"
	projects_models "codetutor/internal/features/projects/models"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type ProjectResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

type ProjectDetailResponseDTO struct {
	ID            uuid.UUID                      `json:"id"`
	Name          string                         `json:"name"`
	CreatedAt     time.Time                      `json:"createdAt"`
	SavedExamples []*projects_models.SavedExample `json:"savedExamples"`
}

// SaveExampleRequestDTO is the explicit save action: the user submits a
// result they already received from the assistant.
type SaveExampleRequestDTO struct {
	OperationType assistant.OperationType `json:"operationType" binding:"required"`
	Language      assistant.Language      `json:"language"      binding:"required"`
	InputText     string                  `json:"inputText"     binding:"required"`
	OutputCode    *string                 `json:"outputCode"`
	Explanation   *string                 `json:"explanation"`
}
