package contract

import (
	"context"

	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LLMConfigRepository interface {
	Create(ctx context.Context, cfg *entity.LLMConfiguration) error
	Update(ctx context.Context, cfg *entity.LLMConfiguration) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LLMConfiguration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LLMConfiguration, error)

	// SetDefault marks the given configuration as the default and clears the
	// flag on every other row in the same statement scope.
	SetDefault(ctx context.Context, id uuid.UUID) error

	ReplaceTools(ctx context.Context, configId uuid.UUID, toolIds []uuid.UUID) error
}
