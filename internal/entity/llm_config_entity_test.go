package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullContext(t *testing.T) {
	tests := []struct {
		name       string
		system     string
		additional string
		want       string
	}{
		{"both empty", "", "", ""},
		{"system only", "You are a tutor.", "", "You are a tutor."},
		{"additional only", "", "Company tone: casual.", "Additional information:\nCompany tone: casual."},
		{"both set", "You are a tutor.", "Company tone: casual.", "You are a tutor.\n\nAdditional information:\nCompany tone: casual."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &LLMConfiguration{SystemPrompt: tt.system, AdditionalContext: tt.additional}
			assert.Equal(t, tt.want, c.FullContext())
		})
	}
}

func TestAPIParametersOpenAIIncludesPenalties(t *testing.T) {
	c := &LLMConfiguration{
		Provider:         ProviderOpenAI,
		ModelName:        "gpt-4o-mini",
		Temperature:      0.7,
		MaxTokens:        512,
		TopP:             1.0,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.2,
		Stream:           true,
	}

	params := c.APIParameters()

	assert.Equal(t, "gpt-4o-mini", params["model"])
	assert.Equal(t, 0.5, params["frequency_penalty"])
	assert.Equal(t, 0.2, params["presence_penalty"])
	assert.Equal(t, true, params["stream"])
}

func TestAPIParametersOllamaExcludesPenalties(t *testing.T) {
	c := &LLMConfiguration{
		Provider:  ProviderOllama,
		ModelName: "llama3",
	}

	params := c.APIParameters()

	assert.NotContains(t, params, "frequency_penalty")
	assert.NotContains(t, params, "presence_penalty")
}

func TestAPIParametersModelParametersOverride(t *testing.T) {
	c := &LLMConfiguration{
		Provider:        ProviderOllama,
		ModelName:       "llama3",
		Temperature:     0.7,
		ModelParameters: map[string]interface{}{"temperature": 0.1, "num_ctx": 8192},
	}

	params := c.APIParameters()

	assert.Equal(t, 0.1, params["temperature"])
	assert.Equal(t, 8192, params["num_ctx"])
}

func TestEnabledToolsFilters(t *testing.T) {
	c := &LLMConfiguration{
		Provider: ProviderOpenAI,
		Tools: []Tool{
			{Name: "web_search", Provider: ProviderUniversal, IsActive: true},
			{Name: "code_interpreter", Provider: ProviderOpenAI, IsActive: true},
			{Name: "disabled_tool", Provider: ProviderOpenAI, IsActive: false},
			{Name: "anthropic_only", Provider: ProviderAnthropic, IsActive: true},
		},
	}

	tools := c.EnabledTools()

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"web_search", "code_interpreter"}, names)
}

func TestEnabledToolsEmpty(t *testing.T) {
	c := &LLMConfiguration{Provider: ProviderOllama}
	assert.Empty(t, c.EnabledTools())
}
