package assistant

import (
	"github.com/google/uuid"
)

// PromptLogRecord captures one gateway invocation, successful or not.
type PromptLogRecord struct {
	UserID        *uuid.UUID
	OperationType OperationType
	Language      Language
	InputText     string
	FullPrompt    string
	ResponseText  string
	OutputCode    *string
	Explanation   *string
	Success       bool
	ErrorMessage  *string
	TokensUsed    *int64
	ModelUsed     string
}

// PromptLogWriter persists prompt log records. Implementations must not
// propagate storage failures to the caller.
type PromptLogWriter interface {
	WritePromptLog(record *PromptLogRecord)
}
