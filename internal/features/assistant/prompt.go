package assistant

import "fmt"

const generateSystemInstruction = `
You are a programming tutor that generates code for students learning to program.
The response MUST be a valid JSON object with one key:
1. code: the generated code as a single string, with detailed comments explaining
   what each section does, following best practices for the requested language.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.
`

const explainSystemInstruction = `
You are a programming tutor that explains code to students learning to program.
The response MUST be a valid JSON object with one key:
1. explanation: a clear, detailed explanation of what the code does overall, how each
   major section works, and the key programming concepts, patterns and techniques used.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.
`

func BuildGeneratePrompt(language Language, description string) Prompt {
	userContent := fmt.Sprintf(
		"Generate %s code based on the following description: %s",
		language,
		description,
	)

	return Prompt{
		OperationType:     OperationTypeGenerate,
		Language:          language,
		InputText:         description,
		SystemInstruction: generateSystemInstruction,
		UserContent:       userContent,
	}
}

func BuildExplainPrompt(language Language, code string) Prompt {
	userContent := fmt.Sprintf(
		"Explain the following %s code in detail:\n\n%s",
		language,
		code,
	)

	return Prompt{
		OperationType:     OperationTypeExplain,
		Language:          language,
		InputText:         code,
		SystemInstruction: explainSystemInstruction,
		UserContent:       userContent,
	}
}
