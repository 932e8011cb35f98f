package service

import (
	"context"
	"fmt"
	"time"

	"prompt-tutor-be/internal/dto"
	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/pkg/logger"
	"prompt-tutor-be/internal/repository/specification"
	"prompt-tutor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListConfigurations(ctx context.Context) ([]*dto.ConfigurationResponse, error)
	GetConfiguration(ctx context.Context, id uuid.UUID) (*dto.ConfigurationResponse, error)
	CreateConfiguration(ctx context.Context, request *dto.CreateConfigurationRequest) (*dto.ConfigurationResponse, error)
	UpdateConfiguration(ctx context.Context, id uuid.UUID, request *dto.UpdateConfigurationRequest) (*dto.ConfigurationResponse, error)
	DeleteConfiguration(ctx context.Context, id uuid.UUID) error
	SetDefaultConfiguration(ctx context.Context, id uuid.UUID) error

	ListTools(ctx context.Context) ([]*dto.ToolResponse, error)
	CreateTool(ctx context.Context, request *dto.CreateToolRequest) (*dto.ToolResponse, error)
	DeleteTool(ctx context.Context, id uuid.UUID) error

	ListSessions(ctx context.Context, limit, offset int) ([]*dto.ChatSessionResponse, error)
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (as *adminService) ListConfigurations(ctx context.Context) ([]*dto.ConfigurationResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	configs, err := uow.LLMConfigRepository().FindAll(ctx,
		specification.WithTools{},
		specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConfigurationResponse, len(configs))
	for i, c := range configs {
		responses[i] = configToResponse(c)
	}
	return responses, nil
}

func (as *adminService) GetConfiguration(ctx context.Context, id uuid.UUID) (*dto.ConfigurationResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.LLMConfigRepository().FindOne(ctx, specification.ByID{ID: id}, specification.WithTools{})
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration not found")
	}
	return configToResponse(cfg), nil
}

func (as *adminService) CreateConfiguration(ctx context.Context, request *dto.CreateConfigurationRequest) (*dto.ConfigurationResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LLMConfigRepository()

	cfg := &entity.LLMConfiguration{
		Id:                uuid.New(),
		Name:              request.Name,
		Description:       request.Description,
		Provider:          request.Provider,
		ModelName:         request.ModelName,
		APIKey:            request.APIKey,
		BaseURL:           request.BaseURL,
		SystemPrompt:      request.SystemPrompt,
		AdditionalContext: request.AdditionalContext,
		Temperature:       floatOrDefault(request.Temperature, 0.7),
		MaxTokens:         intOrDefault(request.MaxTokens, 512),
		TopP:              floatOrDefault(request.TopP, 1.0),
		FrequencyPenalty:  floatOrDefault(request.FrequencyPenalty, 0),
		PresencePenalty:   floatOrDefault(request.PresencePenalty, 0),
		ModelParameters:   request.ModelParameters,
		Stream:            boolOrDefault(request.Stream, true),
		TimeoutSeconds:    intOrDefault(request.TimeoutSeconds, 30),
		RetryAttempts:     intOrDefault(request.RetryAttempts, 3),
		IsActive:          boolOrDefault(request.IsActive, true),
		CreatedAt:         time.Now(),
	}

	if err := repo.Create(ctx, cfg); err != nil {
		return nil, err
	}

	if len(request.ToolIds) > 0 {
		if err := repo.ReplaceTools(ctx, cfg.Id, request.ToolIds); err != nil {
			return nil, err
		}
	}

	if request.IsDefault {
		if err := repo.SetDefault(ctx, cfg.Id); err != nil {
			return nil, err
		}
		cfg.IsDefault = true
	}

	as.sysLogger.Info("admin", "Configuration created", map[string]interface{}{
		"id": cfg.Id, "name": cfg.Name, "provider": cfg.Provider,
	})

	return configToResponse(cfg), nil
}

func (as *adminService) UpdateConfiguration(ctx context.Context, id uuid.UUID, request *dto.UpdateConfigurationRequest) (*dto.ConfigurationResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LLMConfigRepository()

	cfg, err := repo.FindOne(ctx, specification.ByID{ID: id}, specification.WithTools{})
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration not found")
	}

	applyString(&cfg.Name, request.Name)
	applyString(&cfg.Description, request.Description)
	applyString(&cfg.Provider, request.Provider)
	applyString(&cfg.ModelName, request.ModelName)
	applyString(&cfg.APIKey, request.APIKey)
	applyString(&cfg.BaseURL, request.BaseURL)
	applyString(&cfg.SystemPrompt, request.SystemPrompt)
	applyString(&cfg.AdditionalContext, request.AdditionalContext)
	applyFloat(&cfg.Temperature, request.Temperature)
	applyInt(&cfg.MaxTokens, request.MaxTokens)
	applyFloat(&cfg.TopP, request.TopP)
	applyFloat(&cfg.FrequencyPenalty, request.FrequencyPenalty)
	applyFloat(&cfg.PresencePenalty, request.PresencePenalty)
	applyBool(&cfg.Stream, request.Stream)
	applyInt(&cfg.TimeoutSeconds, request.TimeoutSeconds)
	applyInt(&cfg.RetryAttempts, request.RetryAttempts)
	applyBool(&cfg.IsActive, request.IsActive)
	if request.ModelParameters != nil {
		cfg.ModelParameters = request.ModelParameters
	}

	if err := repo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	if request.ToolIds != nil {
		if err := repo.ReplaceTools(ctx, cfg.Id, request.ToolIds); err != nil {
			return nil, err
		}
	}

	as.sysLogger.Info("admin", "Configuration updated", map[string]interface{}{"id": cfg.Id})

	return as.GetConfiguration(ctx, id)
}

func (as *adminService) DeleteConfiguration(ctx context.Context, id uuid.UUID) error {
	uow := as.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LLMConfigRepository().Delete(ctx, id); err != nil {
		return err
	}
	as.sysLogger.Info("admin", "Configuration deleted", map[string]interface{}{"id": id})
	return nil
}

func (as *adminService) SetDefaultConfiguration(ctx context.Context, id uuid.UUID) error {
	uow := as.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LLMConfigRepository().SetDefault(ctx, id); err != nil {
		return err
	}
	as.sysLogger.Info("admin", "Default configuration changed", map[string]interface{}{"id": id})
	return nil
}

func (as *adminService) ListTools(ctx context.Context) ([]*dto.ToolResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	tools, err := uow.ToolRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ToolResponse, len(tools))
	for i, t := range tools {
		responses[i] = toolToResponse(t)
	}
	return responses, nil
}

func (as *adminService) CreateTool(ctx context.Context, request *dto.CreateToolRequest) (*dto.ToolResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	provider := request.Provider
	if provider == "" {
		provider = entity.ProviderUniversal
	}

	tool := &entity.Tool{
		Id:            uuid.New(),
		Name:          request.Name,
		DisplayName:   request.DisplayName,
		Description:   request.Description,
		Provider:      provider,
		ToolType:      request.ToolType,
		Configuration: request.Configuration,
		IsActive:      boolOrDefault(request.IsActive, true),
		CreatedAt:     time.Now(),
	}

	if err := uow.ToolRepository().Create(ctx, tool); err != nil {
		return nil, err
	}

	as.sysLogger.Info("admin", "Tool created", map[string]interface{}{
		"id": tool.Id, "name": tool.Name, "type": tool.ToolType,
	})

	return toolToResponse(tool), nil
}

func (as *adminService) DeleteTool(ctx context.Context, id uuid.UUID) error {
	uow := as.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ToolRepository().Delete(ctx, id); err != nil {
		return err
	}
	as.sysLogger.Info("admin", "Tool deleted", map[string]interface{}{"id": id})
	return nil
}

func (as *adminService) ListSessions(ctx context.Context, limit, offset int) ([]*dto.ChatSessionResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = sessionToResponse(s)
	}
	return responses, nil
}

func (as *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return as.sysLogger.GetLogs(level, limit, offset)
}

// Partial update helpers

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func floatOrDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func configToResponse(c *entity.LLMConfiguration) *dto.ConfigurationResponse {
	tools := make([]dto.ToolResponse, len(c.Tools))
	for i := range c.Tools {
		tools[i] = *toolToResponse(&c.Tools[i])
	}
	return &dto.ConfigurationResponse{
		Id:                c.Id,
		Name:              c.Name,
		Description:       c.Description,
		Provider:          c.Provider,
		ModelName:         c.ModelName,
		BaseURL:           c.BaseURL,
		SystemPrompt:      c.SystemPrompt,
		AdditionalContext: c.AdditionalContext,
		Temperature:       c.Temperature,
		MaxTokens:         c.MaxTokens,
		TopP:              c.TopP,
		FrequencyPenalty:  c.FrequencyPenalty,
		PresencePenalty:   c.PresencePenalty,
		ModelParameters:   c.ModelParameters,
		Stream:            c.Stream,
		TimeoutSeconds:    c.TimeoutSeconds,
		RetryAttempts:     c.RetryAttempts,
		IsActive:          c.IsActive,
		IsDefault:         c.IsDefault,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		Tools:             tools,
	}
}

func toolToResponse(t *entity.Tool) *dto.ToolResponse {
	return &dto.ToolResponse{
		Id:            t.Id,
		Name:          t.Name,
		DisplayName:   t.DisplayName,
		Description:   t.Description,
		Provider:      t.Provider,
		ToolType:      t.ToolType,
		Configuration: t.Configuration,
		IsActive:      t.IsActive,
	}
}
