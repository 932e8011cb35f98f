package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LLMConfiguration struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`

	Provider  string `gorm:"type:varchar(100);not null;default:'openai'"`
	ModelName string `gorm:"type:varchar(200);not null"`
	APIKey    string `gorm:"type:varchar(500);not null"`
	BaseURL   string `gorm:"type:text"`

	SystemPrompt      string `gorm:"type:text"`
	AdditionalContext string `gorm:"type:text"`

	Temperature      float64        `gorm:"not null;default:0.7"`
	MaxTokens        int            `gorm:"not null;default:512"`
	TopP             float64        `gorm:"not null;default:1.0"`
	FrequencyPenalty float64        `gorm:"not null;default:0"`
	PresencePenalty  float64        `gorm:"not null;default:0"`
	ModelParameters  datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`

	Stream         bool `gorm:"not null;default:true"`
	TimeoutSeconds int  `gorm:"not null;default:30"`
	RetryAttempts  int  `gorm:"not null;default:3"`

	IsActive  bool `gorm:"not null;default:true;index"`
	IsDefault bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Tools []Tool `gorm:"many2many:llm_configuration_tools;"`
}

func (LLMConfiguration) TableName() string {
	return "llm_configurations"
}
