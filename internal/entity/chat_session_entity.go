package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession tracks one refinement conversation and the orchestrator
// state attached to it.
type ChatSession struct {
	Id              uuid.UUID
	ConfigurationId *uuid.UUID
	Title           string

	// Orchestrator state
	AgentPhase       string
	CollectedInfo    map[string]string
	IdentifiedIssues []string
	IterationCount   int
	ConfidenceScore  float64

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
