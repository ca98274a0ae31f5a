package assistant

type OperationType string

const (
	OperationTypeGenerate OperationType = "generate"
	OperationTypeExplain  OperationType = "explain"
)

func (o OperationType) IsValid() bool {
	return o == OperationTypeGenerate || o == OperationTypeExplain
}

type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavascript Language = "javascript"
	LanguageHTML       Language = "html"
)

func (l Language) IsValid() bool {
	return l == LanguagePython || l == LanguageJavascript || l == LanguageHTML
}
