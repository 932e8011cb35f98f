package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	ConfigurationId *uuid.UUID `json:"configuration_id"`
	Title           string     `json:"title"`
}

type SendChatRequest struct {
	SessionId       *uuid.UUID `json:"session_id"`
	Prompt          string     `json:"prompt" validate:"required"`
	ConfigurationId *uuid.UUID `json:"configuration_id"`
}

// StreamFrame is a single SSE data payload. The first frame of a turn
// carries the session id and phase, the second adds the confidence score,
// subsequent frames carry content deltas.
type StreamFrame struct {
	SessionId  string   `json:"session_id,omitempty"`
	Phase      string   `json:"phase,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Content    string   `json:"content,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type ChatSessionResponse struct {
	Id              uuid.UUID  `json:"id"`
	ConfigurationId *uuid.UUID `json:"configuration_id"`
	Title           string     `json:"title"`
	AgentPhase      string     `json:"agent_phase"`
	IterationCount  int        `json:"iteration_count"`
	ConfidenceScore float64    `json:"confidence_score"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

type ChatMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	TokensUsed *int      `json:"tokens_used"`
	CreatedAt  time.Time `json:"created_at"`
}

type SessionStateResponse struct {
	Id               uuid.UUID         `json:"id"`
	AgentPhase       string            `json:"agent_phase"`
	CollectedInfo    map[string]string `json:"collected_info"`
	IdentifiedIssues []string          `json:"identified_issues"`
	IterationCount   int               `json:"iteration_count"`
	ConfidenceScore  float64           `json:"confidence_score"`
	Draft            string            `json:"draft"`
}

type SessionHistoryResponse struct {
	Session  ChatSessionResponse   `json:"session"`
	Messages []ChatMessageResponse `json:"messages"`
}
