package mapper

import (
	"encoding/json"
	"time"

	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/model"

	"gorm.io/datatypes"
)

type ConfigMapper struct{}

func NewConfigMapper() *ConfigMapper {
	return &ConfigMapper{}
}

func (m *ConfigMapper) ConfigurationToEntity(c *model.LLMConfiguration) *entity.LLMConfiguration {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	params := map[string]interface{}{}
	if len(c.ModelParameters) > 0 {
		_ = json.Unmarshal(c.ModelParameters, &params)
	}

	tools := make([]entity.Tool, 0, len(c.Tools))
	for i := range c.Tools {
		tools = append(tools, *m.ToolToEntity(&c.Tools[i]))
	}

	return &entity.LLMConfiguration{
		Id:                c.Id,
		Name:              c.Name,
		Description:       c.Description,
		Provider:          c.Provider,
		ModelName:         c.ModelName,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		SystemPrompt:      c.SystemPrompt,
		AdditionalContext: c.AdditionalContext,
		Temperature:       c.Temperature,
		MaxTokens:         c.MaxTokens,
		TopP:              c.TopP,
		FrequencyPenalty:  c.FrequencyPenalty,
		PresencePenalty:   c.PresencePenalty,
		ModelParameters:   params,
		Stream:            c.Stream,
		TimeoutSeconds:    c.TimeoutSeconds,
		RetryAttempts:     c.RetryAttempts,
		IsActive:          c.IsActive,
		IsDefault:         c.IsDefault,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
		Tools:             tools,
	}
}

func (m *ConfigMapper) ConfigurationToModel(c *entity.LLMConfiguration) *model.LLMConfiguration {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	params := c.ModelParameters
	if params == nil {
		params = map[string]interface{}{}
	}
	paramsJSON, _ := json.Marshal(params)

	tools := make([]model.Tool, 0, len(c.Tools))
	for i := range c.Tools {
		tools = append(tools, *m.ToolToModel(&c.Tools[i]))
	}

	return &model.LLMConfiguration{
		Id:                c.Id,
		Name:              c.Name,
		Description:       c.Description,
		Provider:          c.Provider,
		ModelName:         c.ModelName,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		SystemPrompt:      c.SystemPrompt,
		AdditionalContext: c.AdditionalContext,
		Temperature:       c.Temperature,
		MaxTokens:         c.MaxTokens,
		TopP:              c.TopP,
		FrequencyPenalty:  c.FrequencyPenalty,
		PresencePenalty:   c.PresencePenalty,
		ModelParameters:   datatypes.JSON(paramsJSON),
		Stream:            c.Stream,
		TimeoutSeconds:    c.TimeoutSeconds,
		RetryAttempts:     c.RetryAttempts,
		IsActive:          c.IsActive,
		IsDefault:         c.IsDefault,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
		Tools:             tools,
	}
}

func (m *ConfigMapper) ToolToEntity(t *model.Tool) *entity.Tool {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	config := map[string]interface{}{}
	if len(t.Configuration) > 0 {
		_ = json.Unmarshal(t.Configuration, &config)
	}

	return &entity.Tool{
		Id:            t.Id,
		Name:          t.Name,
		DisplayName:   t.DisplayName,
		Description:   t.Description,
		Provider:      t.Provider,
		ToolType:      t.ToolType,
		Configuration: config,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ConfigMapper) ToolToModel(t *entity.Tool) *model.Tool {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	config := t.Configuration
	if config == nil {
		config = map[string]interface{}{}
	}
	configJSON, _ := json.Marshal(config)

	return &model.Tool{
		Id:            t.Id,
		Name:          t.Name,
		DisplayName:   t.DisplayName,
		Description:   t.Description,
		Provider:      t.Provider,
		ToolType:      t.ToolType,
		Configuration: datatypes.JSON(configJSON),
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}
