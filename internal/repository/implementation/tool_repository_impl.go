package implementation

import (
	"context"
	"errors"

	"prompt-tutor-be/internal/entity"
	"prompt-tutor-be/internal/mapper"
	"prompt-tutor-be/internal/model"
	"prompt-tutor-be/internal/repository/contract"
	"prompt-tutor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToolRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConfigMapper
}

func NewToolRepository(db *gorm.DB) contract.ToolRepository {
	return &ToolRepositoryImpl{
		db:     db,
		mapper: mapper.NewConfigMapper(),
	}
}

func (r *ToolRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ToolRepositoryImpl) Create(ctx context.Context, tool *entity.Tool) error {
	m := r.mapper.ToolToModel(tool)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tool = *r.mapper.ToolToEntity(m)
	return nil
}

func (r *ToolRepositoryImpl) Update(ctx context.Context, tool *entity.Tool) error {
	m := r.mapper.ToolToModel(tool)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tool = *r.mapper.ToolToEntity(m)
	return nil
}

func (r *ToolRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tool{}, id).Error
}

func (r *ToolRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tool, error) {
	var m model.Tool
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToolToEntity(&m), nil
}

func (r *ToolRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tool, error) {
	var models []*model.Tool
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Tool, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToolToEntity(m)
	}
	return entities, nil
}
