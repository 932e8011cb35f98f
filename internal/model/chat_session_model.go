package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatSession struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConfigurationId *uuid.UUID `gorm:"type:uuid;index"`
	Title           string     `gorm:"type:text;not null"`

	AgentPhase       string         `gorm:"type:varchar(50);not null;default:'analyze';index"`
	CollectedInfo    datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	IdentifiedIssues datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	IterationCount   int            `gorm:"not null;default:0"`
	ConfidenceScore  float64        `gorm:"not null;default:0"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
