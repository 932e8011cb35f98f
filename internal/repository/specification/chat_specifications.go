package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionId filters chat messages by their parent session
type BySessionId struct {
	SessionId uuid.UUID
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.SessionId)
}

// ByRole filters chat messages by role
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// ByAgentPhase filters chat sessions by their current phase
type ByAgentPhase struct {
	Phase string
}

func (s ByAgentPhase) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_phase = ?", s.Phase)
}
