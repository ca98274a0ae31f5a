package assistant

import (
	"codetutor/internal/util/logger"
	"codetutor/internal/util/rate_limit"
)

var assistantService = &AssistantService{
	gateway: &GeminiGateway{},
	logger:  logger.GetLogger(),
}

var assistantController = &AssistantController{
	assistantService: assistantService,
	rateLimiter:      rate_limit.NewRateLimiter(),
}

func GetAssistantService() *AssistantService {
	return assistantService
}

func GetAssistantController() *AssistantController {
	return assistantController
}
