package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"prompt-tutor-be/internal/constant"
	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/repository/specification"
	"prompt-tutor-be/internal/repository/unitofwork"
	"prompt-tutor-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.LLMConfigRepository())
	assert.NotNil(t, uow.ToolRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Session Repository", func(t *testing.T) {
		count, err := uow.ChatSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Session count: %d", count)
	})

	t.Run("Check Config Repository", func(t *testing.T) {
		count, err := uow.LLMConfigRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Configuration count: %d", count)
	})

	t.Run("Check Transactional Session With Messages", func(t *testing.T) {
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.ChatSession{
			Id:              sessionId,
			Title:           "Integration Test Session " + uuid.New().String(),
			AgentPhase:      "analyze",
			CollectedInfo:   map[string]string{},
			IterationCount:  0,
			ConfidenceScore: 0,
		}

		err = uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		messages := []*entity.ChatMessage{
			{
				Id:            uuid.New(),
				ChatSessionId: sessionId,
				Role:          constant.RoleUser,
				Content:       "help me write a prompt",
			},
			{
				Id:            uuid.New(),
				ChatSessionId: sessionId,
				Role:          constant.RoleAssistant,
				Content:       "What is the goal of your prompt?",
			},
		}

		err = uow.ChatMessageRepository().CreateBatch(ctx, messages)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Session with Messages in Transaction")

		// Read back through the specification path.
		found, err := uow.ChatSessionRepository().FindOne(context.Background(), specification.ByID{ID: sessionId})
		assert.NoError(t, err)
		assert.NotNil(t, found)

		history, err := uow.ChatMessageRepository().FindAll(context.Background(), specification.BySessionId{SessionId: sessionId})
		assert.NoError(t, err)
		assert.Len(t, history, 2)

		// Cleanup
		assert.NoError(t, uow.ChatMessageRepository().DeleteAllBySessionId(context.Background(), sessionId))
		assert.NoError(t, uow.ChatSessionRepository().Delete(context.Background(), sessionId))
	})
}
