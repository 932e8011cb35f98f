package unitofwork

import (
	"context"

	"prompt-tutor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	LLMConfigRepository() contract.LLMConfigRepository
	ToolRepository() contract.ToolRepository
}
