package prompt_logs

import (
	assistant "codetutor/internal/features/assistant"
	"codetutor/internal/util/logger"
)

var promptLogRepository = &PromptLogRepository{}
var promptLogService = &PromptLogService{
	promptLogRepository: promptLogRepository,
	logger:              logger.GetLogger(),
}
var promptLogController = &PromptLogController{
	promptLogService: promptLogService,
}

func GetPromptLogService() *PromptLogService {
	return promptLogService
}

func GetPromptLogController() *PromptLogController {
	return promptLogController
}

func SetupDependencies() {
	assistant.GetAssistantService().SetPromptLogWriter(promptLogService)
}
