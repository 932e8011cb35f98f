package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"prompt-tutor-be/internal/config"
	"prompt-tutor-be/internal/constant"
	"prompt-tutor-be/internal/dto"
	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/repository/memory"
	"prompt-tutor-be/internal/repository/specification"
	"prompt-tutor-be/internal/repository/unitofwork"
	"prompt-tutor-be/pkg/events"
	"prompt-tutor-be/pkg/llm"
	"prompt-tutor-be/pkg/llm/factory"
	"prompt-tutor-be/pkg/tutor/phase"
	"prompt-tutor-be/pkg/tutor/prompts"
	"prompt-tutor-be/pkg/tutor/session"
	"prompt-tutor-be/pkg/tutor/slots"
	"prompt-tutor-be/pkg/tutor/toolspec"

	"github.com/google/uuid"
)

// StreamEmitter receives every frame of a streamed turn in order.
type StreamEmitter func(frame dto.StreamFrame) error

type IChatService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.ChatSessionResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) (*dto.SessionHistoryResponse, error)
	GetSessionState(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStateResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	StreamChat(ctx context.Context, request *dto.SendChatRequest, emit StreamEmitter) error
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionManager *session.Manager
	stateRepo      *memory.StateRepository
	publisher      IPublisherService
	aiCfg          config.AIConfig
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessionManager *session.Manager,
	stateRepo *memory.StateRepository,
	publisher IPublisherService,
	aiCfg config.AIConfig,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		sessionManager: sessionManager,
		stateRepo:      stateRepo,
		publisher:      publisher,
		aiCfg:          aiCfg,
	}
}

func (cs *chatService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	title := request.Title
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	state := session.NewState()
	chatSession := entity.ChatSession{
		Id:              uuid.New(),
		ConfigurationId: request.ConfigurationId,
		Title:           title,
		AgentPhase:      string(state.Phase),
		CollectedInfo:   map[string]string{},
		CreatedAt:       time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}

	cs.stateRepo.Save(chatSession.Id.String(), state)

	return sessionToResponse(&chatSession), nil
}

func (cs *chatService) GetAllSessions(ctx context.Context) ([]*dto.ChatSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = sessionToResponse(s)
	}
	return responses, nil
}

func (cs *chatService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) (*dto.SessionHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, fmt.Errorf("session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionId{SessionId: sessionId},
		specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	history := &dto.SessionHistoryResponse{
		Session:  *sessionToResponse(chatSession),
		Messages: make([]dto.ChatMessageResponse, len(messages)),
	}
	for i, m := range messages {
		history.Messages[i] = dto.ChatMessageResponse{
			Id:         m.Id,
			Role:       m.Role,
			Content:    m.Content,
			TokensUsed: m.TokensUsed,
			CreatedAt:  m.CreatedAt,
		}
	}
	return history, nil
}

func (cs *chatService) GetSessionState(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStateResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, fmt.Errorf("session not found")
	}

	state := cs.loadState(chatSession)

	return &dto.SessionStateResponse{
		Id:               chatSession.Id,
		AgentPhase:       string(state.Phase),
		CollectedInfo:    state.Info,
		IdentifiedIssues: state.IdentifiedIssues,
		IterationCount:   state.IterationCount,
		ConfidenceScore:  state.ConfidenceScore,
		Draft:            cs.sessionManager.Draft(state),
	}, nil
}

func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	cs.stateRepo.Delete(sessionId.String())
	cs.sessionManager.ReleaseSession(sessionId.String())
	return nil
}

// StreamChat runs one full turn: advance the dialogue state, then stream the
// model reply frame by frame through emit. Persistence and event publishing
// happen after the stream completes so a slow consumer never stalls them.
func (cs *chatService) StreamChat(ctx context.Context, request *dto.SendChatRequest, emit StreamEmitter) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	cfg, err := cs.resolveConfiguration(ctx, uow, request.ConfigurationId)
	if err != nil {
		return err
	}

	chatSession, err := cs.resolveSession(ctx, uow, request, cfg)
	if err != nil {
		return err
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionId{SessionId: chatSession.Id},
		specification.OrderBy{Field: "created_at"})
	if err != nil {
		return err
	}

	state := cs.loadState(chatSession)

	result, err := cs.sessionManager.ProcessTurn(ctx, chatSession.Id.String(), state, request.Prompt)
	if err != nil {
		return err
	}

	if err := emit(dto.StreamFrame{SessionId: chatSession.Id.String(), Phase: string(result.Phase)}); err != nil {
		return err
	}
	confidence := result.Confidence
	if err := emit(dto.StreamFrame{Phase: string(result.Phase), Confidence: &confidence}); err != nil {
		return err
	}

	messages := cs.buildMessages(cfg, state, result, history, request.Prompt)
	provider, err := cs.buildProvider(cfg)
	if err != nil {
		return err
	}

	reply, err := provider.ChatStream(ctx, messages, func(chunk string) error {
		return emit(dto.StreamFrame{Content: chunk})
	}, cs.buildOptions(cfg)...)
	if err != nil {
		// The stream may be half-written; surface the failure in-band too.
		_ = emit(dto.StreamFrame{Error: err.Error()})
		return err
	}

	if err := cs.persistTurn(ctx, uow, chatSession, state, request.Prompt, reply, cfg); err != nil {
		return err
	}
	cs.stateRepo.Save(chatSession.Id.String(), state)

	cs.publishTurn(ctx, chatSession.Id, state, request.Prompt, reply)

	if result.Phase == phase.Complete {
		cs.sessionManager.ReleaseSession(chatSession.Id.String())
	}

	return nil
}

// resolveConfiguration picks the configuration for this turn: the requested
// one, else the default, else the oldest active one. A nil return means no
// row exists and the environment fallback applies.
func (cs *chatService) resolveConfiguration(ctx context.Context, uow unitofwork.UnitOfWork, id *uuid.UUID) (*entity.LLMConfiguration, error) {
	repo := uow.LLMConfigRepository()

	if id != nil {
		cfg, err := repo.FindOne(ctx, specification.ByID{ID: *id}, specification.WithTools{})
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			return nil, fmt.Errorf("configuration not found")
		}
		return cfg, nil
	}

	cfg, err := repo.FindOne(ctx, specification.IsDefault{}, specification.IsActive{}, specification.WithTools{})
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	return repo.FindOne(ctx,
		specification.IsActive{},
		specification.OrderBy{Field: "created_at"},
		specification.WithTools{})
}

func (cs *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, request *dto.SendChatRequest, cfg *entity.LLMConfiguration) (*entity.ChatSession, error) {
	repo := uow.ChatSessionRepository()

	if request.SessionId != nil {
		chatSession, err := repo.FindOne(ctx, specification.ByID{ID: *request.SessionId})
		if err != nil {
			return nil, err
		}
		if chatSession == nil {
			return nil, fmt.Errorf("session not found")
		}
		return chatSession, nil
	}

	var configId *uuid.UUID
	if cfg != nil {
		id := cfg.Id
		configId = &id
	}
	chatSession := &entity.ChatSession{
		Id:              uuid.New(),
		ConfigurationId: configId,
		Title:           constant.DefaultSessionTitle,
		AgentPhase:      string(phase.Analyze),
		CollectedInfo:   map[string]string{},
		CreatedAt:       time.Now(),
	}
	if err := repo.Create(ctx, chatSession); err != nil {
		return nil, err
	}
	return chatSession, nil
}

// loadState prefers the cached runtime state; a cache miss rebuilds it from
// the persisted session row.
func (cs *chatService) loadState(chatSession *entity.ChatSession) *session.State {
	if state, found := cs.stateRepo.Get(chatSession.Id.String()); found {
		return state
	}
	return &session.State{
		Phase:            phase.Phase(chatSession.AgentPhase),
		Info:             slots.FromMap(chatSession.CollectedInfo),
		IdentifiedIssues: chatSession.IdentifiedIssues,
		IterationCount:   chatSession.IterationCount,
		ConfidenceScore:  chatSession.ConfidenceScore,
	}
}

func (cs *chatService) buildMessages(cfg *entity.LLMConfiguration, state *session.State, result *session.TurnResult, history []*entity.ChatMessage, prompt string) []llm.Message {
	original := prompt
	for _, m := range history {
		if m.Role == constant.RoleUser {
			original = m.Content
			break
		}
	}

	instructions := prompts.Render(result.Phase, prompts.Context{
		OriginalPrompt:   original,
		IdentifiedIssues: state.IdentifiedIssues,
		CollectedInfo:    state.Info,
		IterationCount:   state.IterationCount,
		RefinedPrompt:    result.Draft,
		ConfidenceScore:  result.Confidence,
	})

	system := instructions
	if cfg != nil && cfg.FullContext() != "" {
		if system == "" {
			system = cfg.FullContext()
		} else {
			system = cfg.FullContext() + "\n\n" + system
		}
	}

	messages := make([]llm.Message, 0, constant.ChatHistoryWindow+2)
	if system != "" {
		messages = append(messages, llm.Message{Role: constant.RoleSystem, Content: system})
	}

	start := len(history) - constant.ChatHistoryWindow
	if start < 0 {
		start = 0
	}
	for _, m := range history[start:] {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	messages = append(messages, llm.Message{Role: constant.RoleUser, Content: prompt})
	return messages
}

func (cs *chatService) buildProvider(cfg *entity.LLMConfiguration) (llm.LLMProvider, error) {
	if cfg == nil {
		return factory.NewLLMProvider(factory.ProviderConfig{
			Provider:  cs.aiCfg.FallbackProvider,
			ModelName: cs.aiCfg.FallbackModel,
			APIKey:    cs.aiCfg.OpenAIAPIKey,
			BaseURL:   cs.aiCfg.OllamaBaseURL,
			Timeout:   time.Duration(cs.aiCfg.RequestTimeout) * time.Second,
		})
	}
	return factory.NewLLMProvider(factory.ProviderConfig{
		Provider:  cfg.Provider,
		ModelName: cfg.ModelName,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
}

func (cs *chatService) buildOptions(cfg *entity.LLMConfiguration) []llm.Option {
	if cfg == nil {
		return nil
	}
	opts := []llm.Option{
		llm.WithTemperature(cfg.Temperature),
		llm.WithMaxTokens(cfg.MaxTokens),
		llm.WithTopP(cfg.TopP),
	}
	if cfg.Provider == entity.ProviderOpenAI {
		opts = append(opts, llm.WithPenalties(cfg.FrequencyPenalty, cfg.PresencePenalty))
	}
	extra := map[string]interface{}{}
	for k, v := range cfg.ModelParameters {
		extra[k] = v
	}
	if tools := cs.formatTools(cfg); len(tools) > 0 {
		extra["tools"] = tools
	}
	if len(extra) > 0 {
		opts = append(opts, llm.WithExtra(extra))
	}
	return opts
}

func (cs *chatService) formatTools(cfg *entity.LLMConfiguration) []map[string]interface{} {
	enabled := cfg.EnabledTools()
	if len(enabled) == 0 {
		return nil
	}
	specs := make([]toolspec.Spec, len(enabled))
	for i, t := range enabled {
		specs[i] = toolspec.Spec{
			Name:          t.Name,
			ToolType:      t.ToolType,
			Configuration: t.Configuration,
		}
	}
	return toolspec.FormatAll(cfg.Provider, specs)
}

func (cs *chatService) persistTurn(ctx context.Context, uow unitofwork.UnitOfWork, chatSession *entity.ChatSession, state *session.State, prompt, reply string, cfg *entity.LLMConfiguration) error {
	now := time.Now()
	tokens := estimateTokens(prompt + reply)

	userMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.RoleUser,
		Content:       prompt,
		CreatedAt:     now,
	}
	assistantMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.RoleAssistant,
		Content:       reply,
		TokensUsed:    &tokens,
		CreatedAt:     now.Add(1 * time.Millisecond),
	}

	chatSession.AgentPhase = string(state.Phase)
	chatSession.CollectedInfo = state.Info
	chatSession.IdentifiedIssues = state.IdentifiedIssues
	chatSession.IterationCount = state.IterationCount
	chatSession.ConfidenceScore = state.ConfidenceScore
	if cfg != nil && chatSession.ConfigurationId == nil {
		id := cfg.Id
		chatSession.ConfigurationId = &id
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().CreateBatch(ctx, []*entity.ChatMessage{userMsg, assistantMsg}); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
		return err
	}

	return uow.Commit()
}

func (cs *chatService) publishTurn(ctx context.Context, sessionId uuid.UUID, state *session.State, prompt, reply string) {
	evt := events.TurnProcessed{
		SessionId:      sessionId,
		Phase:          string(state.Phase),
		Confidence:     state.ConfidenceScore,
		IterationCount: state.IterationCount,
		UserPrompt:     prompt,
		TokensUsed:     estimateTokens(prompt + reply),
		OccurredAt:     time.Now(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	// Bookkeeping is auxiliary; a publish failure must not fail the turn.
	if err := cs.publisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish turn event: %v\n", err)
	}
}

// Rough chars-per-token heuristic, good enough for usage counters.
func estimateTokens(text string) int {
	return len(text) / 4
}

func sessionToResponse(s *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:              s.Id,
		ConfigurationId: s.ConfigurationId,
		Title:           s.Title,
		AgentPhase:      s.AgentPhase,
		IterationCount:  s.IterationCount,
		ConfidenceScore: s.ConfidenceScore,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
