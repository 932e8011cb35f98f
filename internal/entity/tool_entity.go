package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tool is a capability the generation model may be granted (web search,
// code interpreter, file search). Configuration carries provider-specific
// parameters as free-form JSON.
type Tool struct {
	Id            uuid.UUID
	Name          string
	DisplayName   string
	Description   string
	Provider      string
	ToolType      string
	Configuration map[string]interface{}
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
