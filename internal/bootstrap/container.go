package bootstrap

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"prompt-tutor-be/internal/config"
	"prompt-tutor-be/internal/controller"
	"prompt-tutor-be/internal/pkg/logger"
	"prompt-tutor-be/internal/repository/memory"
	"prompt-tutor-be/internal/repository/unitofwork"
	"prompt-tutor-be/internal/service"
	"prompt-tutor-be/pkg/events"
	"prompt-tutor-be/pkg/llm/factory"
	"prompt-tutor-be/pkg/tutor/extract"
	"prompt-tutor-be/pkg/tutor/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Dialogue Core
	tutorLogger := initTutorLogger()

	// The classifier model defaults to the generation fallback model; a
	// dedicated smaller model can be set via CLASSIFIER_MODEL.
	classifierModel := cfg.Ai.ClassifierModel
	if classifierModel == "" {
		classifierModel = cfg.Ai.FallbackModel
	}
	var classifier extract.Classifier
	classifierProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:  cfg.Ai.FallbackProvider,
		ModelName: classifierModel,
		APIKey:    cfg.Ai.OpenAIAPIKey,
		BaseURL:   cfg.Ai.OllamaBaseURL,
		Timeout:   time.Duration(cfg.Ai.RequestTimeout) * time.Second,
	})
	if err != nil {
		log.Printf("[WARN] Classifier provider unavailable, slot extraction degrades to keyword matching: %v", err)
	} else {
		classifier = extract.NewLLMClassifier(classifierProvider)
	}

	extractor := extract.NewExtractor(classifier, tutorLogger)
	sessionManager := session.NewManager(extractor, tutorLogger)
	stateRepo := memory.NewStateRepository()

	// 4. Services
	publisherService := service.NewPublisherService(events.TopicTurnProcessed, pubSub)
	consumerService := service.NewConsumerService(pubSub, events.TopicTurnProcessed, uowFactory)

	chatService := service.NewChatService(uowFactory, sessionManager, stateRepo, publisherService, cfg.Ai)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService),
		AdminController: controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}

func initTutorLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "tutor.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[TUTOR] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
