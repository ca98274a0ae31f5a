package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	users_models "codetutor/internal/features/users/models"

	"github.com/google/uuid"
)

// ErrGatewayUnavailable is returned when the completion service call fails.
// The failure is already recorded in the prompt log by the time it is returned.
var ErrGatewayUnavailable = errors.New("completion service is unavailable")

type AssistantService struct {
	gateway CompletionGateway
	logger  *slog.Logger
	// prompt log writer is never nil, DI always sets it
	promptLogWriter PromptLogWriter
}

func (s *AssistantService) SetPromptLogWriter(writer PromptLogWriter) {
	s.promptLogWriter = writer
}

func (s *AssistantService) GenerateCode(
	ctx context.Context,
	request *GenerateCodeRequestDTO,
	user *users_models.User,
) (*AssistantResponseDTO, error) {
	if !request.Language.IsValid() {
		return nil, errors.New("invalid language, expected python, javascript or html")
	}

	description := strings.TrimSpace(request.Description)
	if description == "" {
		return nil, errors.New("description is required")
	}

	prompt := BuildGeneratePrompt(request.Language, description)

	return s.complete(ctx, prompt, user)
}

func (s *AssistantService) ExplainCode(
	ctx context.Context,
	request *ExplainCodeRequestDTO,
	user *users_models.User,
) (*AssistantResponseDTO, error) {
	if !request.Language.IsValid() {
		return nil, errors.New("invalid language, expected python, javascript or html")
	}

	code := strings.TrimSpace(request.Code)
	if code == "" {
		return nil, errors.New("code is required")
	}

	prompt := BuildExplainPrompt(request.Language, code)

	return s.complete(ctx, prompt, user)
}

// complete invokes the gateway and records exactly one prompt log entry,
// whether the call succeeds or fails.
func (s *AssistantService) complete(
	ctx context.Context,
	prompt Prompt,
	user *users_models.User,
) (*AssistantResponseDTO, error) {
	var userID *uuid.UUID
	if user != nil {
		userID = &user.ID
	}

	result, err := s.gateway.Complete(ctx, prompt)
	if err != nil {
		errorMessage := err.Error()
		s.promptLogWriter.WritePromptLog(&PromptLogRecord{
			UserID:        userID,
			OperationType: prompt.OperationType,
			Language:      prompt.Language,
			InputText:     prompt.InputText,
			FullPrompt:    prompt.FullText(),
			Success:       false,
			ErrorMessage:  &errorMessage,
		})

		s.logger.Error("completion gateway call failed",
			"operationType", string(prompt.OperationType),
			"error", err)

		return nil, ErrGatewayUnavailable
	}

	s.promptLogWriter.WritePromptLog(&PromptLogRecord{
		UserID:        userID,
		OperationType: prompt.OperationType,
		Language:      prompt.Language,
		InputText:     prompt.InputText,
		FullPrompt:    prompt.FullText(),
		ResponseText:  result.ResponseText,
		OutputCode:    result.OutputCode,
		Explanation:   result.Explanation,
		Success:       true,
		TokensUsed:    result.TokensUsed,
		ModelUsed:     result.ModelUsed,
	})

	return &AssistantResponseDTO{
		OperationType: prompt.OperationType,
		Language:      prompt.Language,
		InputText:     prompt.InputText,
		OutputCode:    result.OutputCode,
		Explanation:   result.Explanation,
		TokensUsed:    result.TokensUsed,
		ModelUsed:     result.ModelUsed,
	}, nil
}
