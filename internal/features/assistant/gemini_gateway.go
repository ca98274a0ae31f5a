package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"codetutor/internal/config"

	"google.golang.org/genai"
)

type GeminiGateway struct {
	once   sync.Once
	client *genai.Client
	err    error
}

type geminiResponsePayload struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

func (g *GeminiGateway) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: config.GetEnv().GeminiAPIKey,
		})
	})

	return g.client, g.err
}

func (g *GeminiGateway) Complete(ctx context.Context, prompt Prompt) (*CompletionResult, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	modelName := config.GetEnv().GeminiModel

	result, err := client.Models.GenerateContent(
		ctx,
		modelName,
		genai.Text(prompt.UserContent),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prompt.SystemInstruction}}},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	responseText := result.Text()

	completion := &CompletionResult{
		ResponseText: responseText,
		ModelUsed:    modelName,
	}

	if result.ModelVersion != "" {
		completion.ModelUsed = result.ModelVersion
	}

	if result.UsageMetadata != nil {
		totalTokens := int64(result.UsageMetadata.TotalTokenCount)
		completion.TokensUsed = &totalTokens
	}

	switch prompt.OperationType {
	case OperationTypeGenerate:
		code := parseGeneratedCode(responseText)
		if code == "" {
			return nil, fmt.Errorf("completion response contained no code")
		}
		completion.OutputCode = &code
	case OperationTypeExplain:
		explanation := parseExplanation(responseText)
		if explanation == "" {
			return nil, fmt.Errorf("completion response contained no explanation")
		}
		completion.Explanation = &explanation
	}

	return completion, nil
}

func parseGeneratedCode(responseText string) string {
	var payload geminiResponsePayload
	if err := json.Unmarshal([]byte(responseText), &payload); err == nil && payload.Code != "" {
		return payload.Code
	}

	// Models sometimes ignore the JSON contract and answer with a fenced block
	if code := extractFencedBlock(responseText); code != "" {
		return code
	}

	return strings.TrimSpace(responseText)
}

func parseExplanation(responseText string) string {
	var payload geminiResponsePayload
	if err := json.Unmarshal([]byte(responseText), &payload); err == nil && payload.Explanation != "" {
		return payload.Explanation
	}

	return strings.TrimSpace(responseText)
}

func extractFencedBlock(text string) string {
	parts := strings.Split(text, "```")
	if len(parts) < 3 {
		return ""
	}

	block := parts[1]

	// Drop the language identifier line if present
	if newline := strings.Index(block, "\n"); newline != -1 {
		firstLine := strings.TrimSpace(block[:newline])
		if firstLine != "" && !strings.ContainsAny(firstLine, " \t{}();") {
			block = block[newline+1:]
		}
	}

	return strings.TrimSpace(block)
}
