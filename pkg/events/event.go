package events

import (
	"time"

	"github.com/google/uuid"
)

// Topic names for the in-process event bus.
const (
	TopicTurnProcessed = "tutor.turn.processed"
)

// TurnProcessed is published after every completed turn cycle. Consumers
// use it for bookkeeping that must not block the streaming response
// (session titling, usage counters).
type TurnProcessed struct {
	SessionId      uuid.UUID `json:"session_id"`
	Phase          string    `json:"phase"`
	Confidence     float64   `json:"confidence"`
	IterationCount int       `json:"iteration_count"`
	UserPrompt     string    `json:"user_prompt"`
	TokensUsed     int       `json:"tokens_used"`
	OccurredAt     time.Time `json:"occurred_at"`
}
