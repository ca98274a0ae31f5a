package assistant

type GenerateCodeRequestDTO struct {
	Language    Language `json:"language"    binding:"required"`
	Description string   `json:"description" binding:"required"`
}

type ExplainCodeRequestDTO struct {
	Language Language `json:"language" binding:"required"`
	Code     string   `json:"code"     binding:"required"`
}

type AssistantResponseDTO struct {
	OperationType OperationType `json:"operationType"`
	Language      Language      `json:"language"`
	InputText     string        `json:"inputText"`
	OutputCode    *string       `json:"outputCode,omitempty"`
	Explanation   *string       `json:"explanation,omitempty"`
	TokensUsed    *int64        `json:"tokensUsed,omitempty"`
	ModelUsed     string        `json:"modelUsed"`
}
