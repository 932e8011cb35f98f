package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"prompt-tutor-be/pkg/llm"
	"prompt-tutor-be/pkg/tutor/slots"
)

// LLMClassifier classifies a user turn into one slot category using the
// generation model itself. Far more accurate than pattern matching, but
// may fail; the Extractor handles every failure mode.
type LLMClassifier struct {
	provider llm.LLMProvider
}

func NewLLMClassifier(provider llm.LLMProvider) *LLMClassifier {
	return &LLMClassifier{provider: provider}
}

var _ Classifier = &LLMClassifier{}

// Classify performs one classification call. Low temperature for
// deterministic output.
func (c *LLMClassifier) Classify(ctx context.Context, userText string, collected slots.SlotSet) (*Result, error) {
	prompt := c.buildPrompt(userText, collected)

	response, err := c.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "You are an assistant that extracts structured information. Respond ONLY with valid JSON."},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.3), llm.WithMaxTokens(200))
	if err != nil {
		return nil, fmt.Errorf("classification call failed: %w", err)
	}

	return parseResult(response)
}

func (c *LLMClassifier) buildPrompt(userText string, collected slots.SlotSet) string {
	collectedJSON, err := json.MarshalIndent(map[string]string(collected), "", "  ")
	if err != nil {
		collectedJSON = []byte("{}")
	}

	var prompt strings.Builder

	prompt.WriteString("Analyze the following user reply and extract structured information for building an optimal prompt.\n\n")

	prompt.WriteString("USER REPLY:\n")
	prompt.WriteString("\"" + userText + "\"\n\n")

	prompt.WriteString("INFORMATION ALREADY COLLECTED:\n")
	prompt.Write(collectedJSON)
	prompt.WriteString("\n\n")

	prompt.WriteString("TASK:\n")
	prompt.WriteString("Identify what kind of information the user provides and classify it into ONE of these categories:\n")
	prompt.WriteString("- objective: the main goal/task (e.g. \"write an article\", \"generate code\", \"draft an email\")\n")
	prompt.WriteString("- context: usage scenario, target audience, background (e.g. \"for students\", \"in a corporate setting\")\n")
	prompt.WriteString("- constraints: limits on length, tone, style (e.g. \"500 words\", \"formal tone\", \"keep it simple\")\n")
	prompt.WriteString("- output_format: desired response format (e.g. \"bullet list\", \"JSON\", \"markdown\")\n")
	prompt.WriteString("- role: the persona the AI should adopt (e.g. \"marketing expert\", \"patient tutor\")\n\n")

	prompt.WriteString("Respond ONLY with JSON in this format:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"category\": \"objective|context|constraints|output_format|role|none\",\n")
	prompt.WriteString("  \"value\": \"text extracted from the user reply (use their words, do not paraphrase)\",\n")
	prompt.WriteString("  \"confidence\": 0.0-1.0\n")
	prompt.WriteString("}\n\n")

	prompt.WriteString("RULES:\n")
	prompt.WriteString("- If the reply contains no useful information, use category=\"none\"\n")
	prompt.WriteString("- Keep the user's original wording in \"value\"\n")
	prompt.WriteString("- Never invent information that is not present\n")
	prompt.WriteString("- If the user provides several things, pick the most relevant one")

	return prompt.String()
}

func parseResult(response string) (*Result, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var result Result
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	result.Category = strings.ToLower(strings.TrimSpace(result.Category))
	if result.Category == "" {
		result.Category = slots.CategoryNone
	}
	if !slots.IsValidCategory(result.Category) && result.Category != slots.CategoryNone {
		return nil, fmt.Errorf("unknown category %q", result.Category)
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		return nil, fmt.Errorf("confidence %.2f outside [0,1]", result.Confidence)
	}

	return &result, nil
}

// extractJSON slices the first top-level JSON object out of a model reply,
// tolerating markdown fences and prose around it.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
