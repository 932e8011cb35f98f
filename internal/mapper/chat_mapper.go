package mapper

import (
	"encoding/json"
	"time"

	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	collected := map[string]string{}
	if len(s.CollectedInfo) > 0 {
		// A corrupt column degrades to an empty map rather than failing the read.
		_ = json.Unmarshal(s.CollectedInfo, &collected)
	}

	issues := []string{}
	if len(s.IdentifiedIssues) > 0 {
		_ = json.Unmarshal(s.IdentifiedIssues, &issues)
	}

	return &entity.ChatSession{
		Id:               s.Id,
		ConfigurationId:  s.ConfigurationId,
		Title:            s.Title,
		AgentPhase:       s.AgentPhase,
		CollectedInfo:    collected,
		IdentifiedIssues: issues,
		IterationCount:   s.IterationCount,
		ConfidenceScore:  s.ConfidenceScore,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        s.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	collected := s.CollectedInfo
	if collected == nil {
		collected = map[string]string{}
	}
	collectedJSON, _ := json.Marshal(collected)

	issues := s.IdentifiedIssues
	if issues == nil {
		issues = []string{}
	}
	issuesJSON, _ := json.Marshal(issues)

	return &model.ChatSession{
		Id:               s.Id,
		ConfigurationId:  s.ConfigurationId,
		Title:            s.Title,
		AgentPhase:       s.AgentPhase,
		CollectedInfo:    datatypes.JSON(collectedJSON),
		IdentifiedIssues: datatypes.JSON(issuesJSON),
		IterationCount:   s.IterationCount,
		ConfidenceScore:  s.ConfidenceScore,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		TokensUsed:    msg.TokensUsed,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		TokensUsed:    msg.TokensUsed,
		CreatedAt:     msg.CreatedAt,
	}
}
