package prompt_logs

import (
	assistant "codetutor/internal/features/assistant"
)

// GetPromptLogsRequest enumerates the supported monitor filters explicitly.
type GetPromptLogsRequest struct {
	OperationType *assistant.OperationType `form:"operationType" json:"operationType"`
	Language      *assistant.Language      `form:"language"      json:"language"`
	SuccessOnly   bool                     `form:"successOnly"   json:"successOnly"`
	Limit         int                      `form:"limit"         json:"limit"`
}

type GetPromptLogsResponse struct {
	PromptLogs []*PromptLog `json:"promptLogs"`
	Total      int64        `json:"total"`
	Limit      int          `json:"limit"`
}
