package factory

import (
	"fmt"
	"time"

	"prompt-tutor-be/pkg/llm"
	"prompt-tutor-be/pkg/llm/ollama"
	"prompt-tutor-be/pkg/llm/openai"
)

// ProviderConfig carries everything needed to construct a concrete backend.
type ProviderConfig struct {
	Provider  string // "openai", "custom", "ollama"
	ModelName string
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.ModelName, cfg.Timeout), nil
	case "custom":
		// OpenAI-compatible endpoint with a mandatory base URL
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("custom provider requires a base URL")
		}
		return openai.NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.ModelName, cfg.Timeout), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.ModelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
