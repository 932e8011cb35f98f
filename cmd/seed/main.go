package main

import (
	"log"
	"os"

	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/model"
	"prompt-tutor-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting LLM Configuration Seeder...")

	seedTools(db)
	seedConfigurations(db)

	color.Green("✅ Success: Seeding completed.")
}

func seedTools(db *gorm.DB) {
	color.Cyan("Seeding Tools...")

	tools := []model.Tool{
		{
			Id:            uuid.New(),
			Name:          "web_search",
			DisplayName:   "Web Search",
			Description:   "Search the web for up-to-date information",
			Provider:      entity.ProviderUniversal,
			ToolType:      "function",
			Configuration: datatypes.JSON(`{"max_results": 5}`),
			IsActive:      true,
		},
		{
			Id:            uuid.New(),
			Name:          "code_interpreter",
			DisplayName:   "Code Interpreter",
			Description:   "Execute Python snippets in a sandbox",
			Provider:      entity.ProviderOpenAI,
			ToolType:      "code_interpreter",
			Configuration: datatypes.JSON(`{}`),
			IsActive:      true,
		},
		{
			Id:            uuid.New(),
			Name:          "file_search",
			DisplayName:   "File Search",
			Description:   "Search and analyze the contents of uploaded files",
			Provider:      entity.ProviderOpenAI,
			ToolType:      "file_search",
			Configuration: datatypes.JSON(`{"type": "file_search"}`),
			IsActive:      true,
		},
	}

	for _, tool := range tools {
		// Upsert: Insert if not exists, skip if exists
		result := db.Where("name = ?", tool.Name).FirstOrCreate(&tool)
		if result.Error != nil {
			color.Red("  ! Failed to seed tool '%s': %v", tool.Name, result.Error)
		} else if result.RowsAffected > 0 {
			color.Green("  + Created: %s", tool.Name)
		} else {
			color.Yellow("  - Skipped (exists): %s", tool.Name)
		}
	}
}

func seedConfigurations(db *gorm.DB) {
	color.Cyan("Seeding LLM Configurations...")

	configurations := []model.LLMConfiguration{
		{
			Id:              uuid.New(),
			Name:            "Local Ollama",
			Description:     "Local development profile against Ollama",
			Provider:        entity.ProviderOllama,
			ModelName:       "llama3",
			APIKey:          "-",
			BaseURL:         "http://localhost:11434",
			SystemPrompt:    "You are a prompt engineering tutor. Guide the user toward a complete, well-specified prompt.",
			Temperature:     0.7,
			MaxTokens:       1024,
			TopP:            1.0,
			ModelParameters: datatypes.JSON(`{}`),
			Stream:          true,
			TimeoutSeconds:  60,
			RetryAttempts:   3,
			IsActive:        true,
			IsDefault:       false,
		},
		{
			Id:              uuid.New(),
			Name:            "OpenAI GPT-4o mini",
			Description:     "Hosted profile for production traffic",
			Provider:        entity.ProviderOpenAI,
			ModelName:       "gpt-4o-mini",
			APIKey:          os.Getenv("OPENAI_API_KEY"),
			SystemPrompt:    "You are a prompt engineering tutor. Guide the user toward a complete, well-specified prompt.",
			Temperature:     0.7,
			MaxTokens:       1024,
			TopP:            1.0,
			ModelParameters: datatypes.JSON(`{}`),
			Stream:          true,
			TimeoutSeconds:  30,
			RetryAttempts:   3,
			IsActive:        true,
			IsDefault:       false,
		},
	}

	var createdIds []uuid.UUID
	for _, cfg := range configurations {
		result := db.Where("name = ?", cfg.Name).FirstOrCreate(&cfg)
		if result.Error != nil {
			color.Red("  ! Failed to seed config '%s': %v", cfg.Name, result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			color.Green("  + Created: %s", cfg.Name)
		} else {
			color.Yellow("  - Skipped (exists): %s", cfg.Name)
		}
		createdIds = append(createdIds, cfg.Id)
	}

	// Ensure exactly one default: pick the first seeded profile if none is set.
	var defaults int64
	if err := db.Model(&model.LLMConfiguration{}).Where("is_default = ?", true).Count(&defaults).Error; err != nil {
		color.Red("  ! Failed to check defaults: %v", err)
		return
	}
	if defaults == 0 && len(createdIds) > 0 {
		if err := db.Model(&model.LLMConfiguration{}).
			Where("id = ?", createdIds[0]).
			Update("is_default", true).Error; err != nil {
			color.Red("  ! Failed to set default configuration: %v", err)
			return
		}
		color.Green("  * Default configuration set")
	}
}
