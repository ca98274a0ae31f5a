package prompt_logs

import (
	"fmt"
	"log/slog"
	"time"

	assistant "codetutor/internal/features/assistant"
	users_models "codetutor/internal/features/users/models"
)

var allowedLimits = []int{25, 50, 100, 200}

const defaultLimit = 50

type PromptLogService struct {
	promptLogRepository *PromptLogRepository
	logger              *slog.Logger
}

// WritePromptLog persists one record per gateway invocation. A storage
// failure here must never mask the AI result, so it is only reported to
// the operational log.
func (s *PromptLogService) WritePromptLog(record *assistant.PromptLogRecord) {
	promptLog := &PromptLog{
		UserID:        record.UserID,
		OperationType: record.OperationType,
		Language:      record.Language,
		InputText:     record.InputText,
		FullPrompt:    record.FullPrompt,
		ResponseText:  record.ResponseText,
		OutputCode:    record.OutputCode,
		Explanation:   record.Explanation,
		Success:       record.Success,
		ErrorMessage:  record.ErrorMessage,
		TokensUsed:    record.TokensUsed,
		ModelUsed:     record.ModelUsed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.promptLogRepository.Create(promptLog); err != nil {
		s.logger.Error("failed to create prompt log", "error", err)
		return
	}
}

// GetUserPromptLogs returns the caller's own prompt logs, newest first.
// Entries without a user are invisible to everyone.
func (s *PromptLogService) GetUserPromptLogs(
	user *users_models.User,
	request *GetPromptLogsRequest,
) (*GetPromptLogsResponse, error) {
	if request.OperationType != nil && !request.OperationType.IsValid() {
		return nil, fmt.Errorf("invalid operation type filter: %s", *request.OperationType)
	}

	if request.Language != nil && !request.Language.IsValid() {
		return nil, fmt.Errorf("invalid language filter: %s", *request.Language)
	}

	limit := normalizeLimit(request.Limit)

	promptLogs, err := s.promptLogRepository.GetByUser(user.ID, request, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt logs: %w", err)
	}

	return &GetPromptLogsResponse{
		PromptLogs: promptLogs,
		Total:      int64(len(promptLogs)),
		Limit:      limit,
	}, nil
}

func normalizeLimit(limit int) int {
	for _, allowed := range allowedLimits {
		if limit == allowed {
			return limit
		}
	}

	return defaultLimit
}
