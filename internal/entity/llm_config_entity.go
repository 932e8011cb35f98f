package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider constants for LLMConfiguration and Tool
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderOllama    = "ollama"
	ProviderCustom    = "custom"

	// ProviderUniversal marks tools usable with any provider.
	ProviderUniversal = "universal"
)

// LLMConfiguration is an admin-managed profile: which model to call, how
// to call it, and which tools it may use. At most one configuration holds
// IsDefault; the repository enforces that on SetDefault.
type LLMConfiguration struct {
	Id          uuid.UUID
	Name        string
	Description string

	Provider  string
	ModelName string
	APIKey    string
	BaseURL   string

	SystemPrompt      string
	AdditionalContext string

	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	ModelParameters  map[string]interface{}

	Stream         bool
	TimeoutSeconds int
	RetryAttempts  int

	IsActive  bool
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt *time.Time

	Tools []Tool
}

// FullContext joins the system prompt and additional context for use as a
// fallback system message when no phase template applies.
func (c *LLMConfiguration) FullContext() string {
	if c.SystemPrompt == "" && c.AdditionalContext == "" {
		return ""
	}
	if c.AdditionalContext == "" {
		return c.SystemPrompt
	}
	if c.SystemPrompt == "" {
		return "Additional information:\n" + c.AdditionalContext
	}
	return c.SystemPrompt + "\n\nAdditional information:\n" + c.AdditionalContext
}

// APIParameters merges the base sampling parameters with provider-specific
// ones and any extra model parameters configured by the admin.
func (c *LLMConfiguration) APIParameters() map[string]interface{} {
	params := map[string]interface{}{
		"model":       c.ModelName,
		"temperature": c.Temperature,
		"max_tokens":  c.MaxTokens,
		"top_p":       c.TopP,
		"stream":      c.Stream,
	}

	if c.Provider == ProviderOpenAI {
		params["frequency_penalty"] = c.FrequencyPenalty
		params["presence_penalty"] = c.PresencePenalty
	}

	for k, v := range c.ModelParameters {
		params[k] = v
	}

	return params
}

// EnabledTools returns active tools compatible with this configuration's
// provider. Universal tools always pass.
func (c *LLMConfiguration) EnabledTools() []Tool {
	var out []Tool
	for _, t := range c.Tools {
		if !t.IsActive {
			continue
		}
		if t.Provider != c.Provider && t.Provider != ProviderUniversal {
			continue
		}
		out = append(out, t)
	}
	return out
}
