package contract

import (
	"context"

	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ToolRepository interface {
	Create(ctx context.Context, tool *entity.Tool) error
	Update(ctx context.Context, tool *entity.Tool) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tool, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tool, error)
}
