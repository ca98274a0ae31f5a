package prompt_logs

import (
	"time"

	assistant "codetutor/internal/features/assistant"

	"github.com/google/uuid"
)

// PromptLog is an immutable record of one completion gateway invocation.
// Rows are only ever inserted, never updated.
type PromptLog struct {
	ID            uuid.UUID               `json:"id"            gorm:"column:id"`
	UserID        *uuid.UUID              `json:"userId"        gorm:"column:user_id"`
	OperationType assistant.OperationType `json:"operationType" gorm:"column:operation_type"`
	Language      assistant.Language      `json:"language"      gorm:"column:language"`
	InputText     string                  `json:"inputText"     gorm:"column:input_text"`
	FullPrompt    string                  `json:"fullPrompt"    gorm:"column:full_prompt"`
	ResponseText  string                  `json:"responseText"  gorm:"column:response_text"`
	OutputCode    *string                 `json:"outputCode"    gorm:"column:output_code"`
	Explanation   *string                 `json:"explanation"   gorm:"column:explanation"`
	Success       bool                    `json:"success"       gorm:"column:success"`
	ErrorMessage  *string                 `json:"errorMessage"  gorm:"column:error_message"`
	TokensUsed    *int64                  `json:"tokensUsed"    gorm:"column:tokens_used"`
	ModelUsed     string                  `json:"modelUsed"     gorm:"column:model_used"`
	CreatedAt     time.Time               `json:"createdAt"     gorm:"column:created_at"`
}

func (PromptLog) TableName() string {
	return "prompt_logs"
}
