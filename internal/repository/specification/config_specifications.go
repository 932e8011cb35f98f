package specification

import "gorm.io/gorm"

// IsActive filters active configurations or tools
type IsActive struct{}

func (s IsActive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// IsDefault filters the default configuration
type IsDefault struct{}

func (s IsDefault) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", true)
}

// ByProvider filters configurations or tools by provider
type ByProvider struct {
	Provider string
}

func (s ByProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("provider = ?", s.Provider)
}

// ByName filters by name
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// WithTools preloads the tool association on configurations
type WithTools struct{}

func (s WithTools) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Tools")
}
