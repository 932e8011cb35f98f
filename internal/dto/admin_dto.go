package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConfigurationRequest struct {
	Name              string                 `json:"name" validate:"required"`
	Description       string                 `json:"description"`
	Provider          string                 `json:"provider" validate:"required,oneof=openai anthropic google ollama custom"`
	ModelName         string                 `json:"model_name" validate:"required"`
	APIKey            string                 `json:"api_key"`
	BaseURL           string                 `json:"base_url"`
	SystemPrompt      string                 `json:"system_prompt"`
	AdditionalContext string                 `json:"additional_context"`
	Temperature       *float64               `json:"temperature"`
	MaxTokens         *int                   `json:"max_tokens"`
	TopP              *float64               `json:"top_p"`
	FrequencyPenalty  *float64               `json:"frequency_penalty"`
	PresencePenalty   *float64               `json:"presence_penalty"`
	ModelParameters   map[string]interface{} `json:"model_parameters"`
	Stream            *bool                  `json:"stream"`
	TimeoutSeconds    *int                   `json:"timeout_seconds"`
	RetryAttempts     *int                   `json:"retry_attempts"`
	IsActive          *bool                  `json:"is_active"`
	IsDefault         bool                   `json:"is_default"`
	ToolIds           []uuid.UUID            `json:"tool_ids"`
}

type UpdateConfigurationRequest struct {
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	Provider          *string                `json:"provider" validate:"omitempty,oneof=openai anthropic google ollama custom"`
	ModelName         *string                `json:"model_name"`
	APIKey            *string                `json:"api_key"`
	BaseURL           *string                `json:"base_url"`
	SystemPrompt      *string                `json:"system_prompt"`
	AdditionalContext *string                `json:"additional_context"`
	Temperature       *float64               `json:"temperature"`
	MaxTokens         *int                   `json:"max_tokens"`
	TopP              *float64               `json:"top_p"`
	FrequencyPenalty  *float64               `json:"frequency_penalty"`
	PresencePenalty   *float64               `json:"presence_penalty"`
	ModelParameters   map[string]interface{} `json:"model_parameters"`
	Stream            *bool                  `json:"stream"`
	TimeoutSeconds    *int                   `json:"timeout_seconds"`
	RetryAttempts     *int                   `json:"retry_attempts"`
	IsActive          *bool                  `json:"is_active"`
	ToolIds           []uuid.UUID            `json:"tool_ids"`
}

type ConfigurationResponse struct {
	Id                uuid.UUID              `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	Provider          string                 `json:"provider"`
	ModelName         string                 `json:"model_name"`
	BaseURL           string                 `json:"base_url"`
	SystemPrompt      string                 `json:"system_prompt"`
	AdditionalContext string                 `json:"additional_context"`
	Temperature       float64                `json:"temperature"`
	MaxTokens         int                    `json:"max_tokens"`
	TopP              float64                `json:"top_p"`
	FrequencyPenalty  float64                `json:"frequency_penalty"`
	PresencePenalty   float64                `json:"presence_penalty"`
	ModelParameters   map[string]interface{} `json:"model_parameters"`
	Stream            bool                   `json:"stream"`
	TimeoutSeconds    int                    `json:"timeout_seconds"`
	RetryAttempts     int                    `json:"retry_attempts"`
	IsActive          bool                   `json:"is_active"`
	IsDefault         bool                   `json:"is_default"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         *time.Time             `json:"updated_at"`
	Tools             []ToolResponse         `json:"tools"`
}

type CreateToolRequest struct {
	Name          string                 `json:"name" validate:"required"`
	DisplayName   string                 `json:"display_name" validate:"required"`
	Description   string                 `json:"description"`
	Provider      string                 `json:"provider"`
	ToolType      string                 `json:"tool_type" validate:"required"`
	Configuration map[string]interface{} `json:"configuration"`
	IsActive      *bool                  `json:"is_active"`
}

type ToolResponse struct {
	Id            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	DisplayName   string                 `json:"display_name"`
	Description   string                 `json:"description"`
	Provider      string                 `json:"provider"`
	ToolType      string                 `json:"tool_type"`
	Configuration map[string]interface{} `json:"configuration"`
	IsActive      bool                   `json:"is_active"`
}
