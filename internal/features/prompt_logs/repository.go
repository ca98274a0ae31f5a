package prompt_logs

import (
	"codetutor/internal/storage"

	"github.com/google/uuid"
)

type PromptLogRepository struct{}

func (r *PromptLogRepository) Create(promptLog *PromptLog) error {
	if promptLog.ID == uuid.Nil {
		promptLog.ID = uuid.New()
	}

	return storage.GetDb().Create(promptLog).Error
}

// GetByUser returns only rows attributed to the given user. Anonymous rows
// (user_id IS NULL) never match the equality condition, so they are excluded
// for every caller.
func (r *PromptLogRepository) GetByUser(
	userID uuid.UUID,
	request *GetPromptLogsRequest,
	limit int,
) ([]*PromptLog, error) {
	var promptLogs = make([]*PromptLog, 0)

	query := storage.GetDb().
		Where("user_id = ?", userID)

	if request.OperationType != nil {
		query = query.Where("operation_type = ?", *request.OperationType)
	}

	if request.Language != nil {
		query = query.Where("language = ?", *request.Language)
	}

	if request.SuccessOnly {
		query = query.Where("success = ?", true)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&promptLogs).Error

	return promptLogs, err
}
