package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Tool struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName   string         `gorm:"type:varchar(200);not null"`
	Description   string         `gorm:"type:text"`
	Provider      string         `gorm:"type:varchar(100);not null;default:'universal'"`
	ToolType      string         `gorm:"type:varchar(100);not null"`
	Configuration datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive      bool           `gorm:"not null;default:true"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Tool) TableName() string {
	return "tools"
}
