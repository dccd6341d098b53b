package implementation

import (
	"context"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/mapper"
	"samvidhan-ai-be/internal/model"
	"samvidhan-ai-be/internal/repository/contract"
	"samvidhan-ai-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatuteChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatuteChunkMapper
}

func NewStatuteChunkRepository(db *gorm.DB) contract.StatuteChunkRepository {
	return &StatuteChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatuteChunkMapper(),
	}
}

func (r *StatuteChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StatuteChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.StatuteChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *StatuteChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.StatuteChunk) error {
	models := r.mapper.ToModels(chunks)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *StatuteChunkRepositoryImpl) DeleteBySection(ctx context.Context, act string, section string) error {
	query := r.db.WithContext(ctx).Where("act = ?", act)
	if section != "" {
		query = query.Where("section = ?", section)
	}
	return query.Delete(&model.StatuteChunk{}).Error
}

func (r *StatuteChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StatuteChunk, error) {
	var models []*model.StatuteChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StatuteChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StatuteChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatuteChunkRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, domain string) ([]*entity.StatuteChunk, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.StatuteChunk

	// Cosine distance ordering: embedding <=> query_vector
	query := r.db.WithContext(ctx)
	if domain != "" {
		query = query.Where("domain = ?", domain)
	}
	err := query.
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{pgvector.NewVector(embedding)}},
		}).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
