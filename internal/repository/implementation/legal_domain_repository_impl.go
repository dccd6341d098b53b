package implementation

import (
	"context"
	"errors"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/mapper"
	"samvidhan-ai-be/internal/model"
	"samvidhan-ai-be/internal/repository/contract"
	"samvidhan-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LegalDomainRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LegalDomainMapper
}

func NewLegalDomainRepository(db *gorm.DB) contract.LegalDomainRepository {
	return &LegalDomainRepositoryImpl{
		db:     db,
		mapper: mapper.NewLegalDomainMapper(),
	}
}

func (r *LegalDomainRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LegalDomainRepositoryImpl) Create(ctx context.Context, domain *entity.LegalDomain) error {
	m := r.mapper.ToModel(domain)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*domain = *r.mapper.ToEntity(m)
	return nil
}

func (r *LegalDomainRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LegalDomain, error) {
	var m model.LegalDomain
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LegalDomainRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LegalDomain, error) {
	var models []*model.LegalDomain
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
