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

type LLMConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConfigMapper
}

func NewLLMConfigRepository(db *gorm.DB) contract.LLMConfigRepository {
	return &LLMConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewConfigMapper(),
	}
}

func (r *LLMConfigRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LLMConfigRepositoryImpl) Create(ctx context.Context, cfg *entity.LLMConfiguration) error {
	m := r.mapper.ConfigurationToModel(cfg)
	if err := r.db.WithContext(ctx).Omit("Tools").Create(m).Error; err != nil {
		return err
	}
	*cfg = *r.mapper.ConfigurationToEntity(m)
	return nil
}

func (r *LLMConfigRepositoryImpl) Update(ctx context.Context, cfg *entity.LLMConfiguration) error {
	m := r.mapper.ConfigurationToModel(cfg)
	if err := r.db.WithContext(ctx).Omit("Tools").Save(m).Error; err != nil {
		return err
	}
	*cfg = *r.mapper.ConfigurationToEntity(m)
	return nil
}

func (r *LLMConfigRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LLMConfiguration{}, id).Error
}

func (r *LLMConfigRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LLMConfiguration, error) {
	var m model.LLMConfiguration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConfigurationToEntity(&m), nil
}

func (r *LLMConfigRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LLMConfiguration, error) {
	var models []*model.LLMConfiguration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LLMConfiguration, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ConfigurationToEntity(m)
	}
	return entities, nil
}

// SetDefault clears the default flag on every configuration and sets it on the
// target inside one transaction, so at most one row ever holds it.
func (r *LLMConfigRepositoryImpl) SetDefault(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.LLMConfiguration{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(&model.LLMConfiguration{}).
			Where("id = ?", id).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *LLMConfigRepositoryImpl) ReplaceTools(ctx context.Context, configId uuid.UUID, toolIds []uuid.UUID) error {
	tools := make([]model.Tool, len(toolIds))
	for i, id := range toolIds {
		tools[i] = model.Tool{Id: id}
	}
	cfg := model.LLMConfiguration{Id: configId}
	return r.db.WithContext(ctx).Model(&cfg).Association("Tools").Replace(tools)
}
