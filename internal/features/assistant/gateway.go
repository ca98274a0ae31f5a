package assistant

import "context"

// Prompt is the fully constructed request sent to the completion service.
type Prompt struct {
	OperationType     OperationType
	Language          Language
	InputText         string
	SystemInstruction string
	UserContent       string
}

// FullText is the prompt representation stored in prompt logs.
func (p Prompt) FullText() string {
	return p.SystemInstruction + "\n\n" + p.UserContent
}

// CompletionResult is a successful gateway response. Exactly one of
// OutputCode or Explanation is set, depending on the operation type.
type CompletionResult struct {
	ResponseText string
	OutputCode   *string
	Explanation  *string
	TokensUsed   *int64
	ModelUsed    string
}

// CompletionGateway is the external AI completion service boundary.
// Implementations perform the network call and nothing else: no logging,
// no persistence, no retries.
type CompletionGateway interface {
	Complete(ctx context.Context, prompt Prompt) (*CompletionResult, error)
}
