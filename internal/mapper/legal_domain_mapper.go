package mapper

import (
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/model"
)

type LegalDomainMapper struct{}

func NewLegalDomainMapper() *LegalDomainMapper {
	return &LegalDomainMapper{}
}

func (m *LegalDomainMapper) ToEntity(d *model.LegalDomain) *entity.LegalDomain {
	if d == nil {
		return nil
	}
	return &entity.LegalDomain{
		Id:          d.Id,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *LegalDomainMapper) ToModel(d *entity.LegalDomain) *model.LegalDomain {
	if d == nil {
		return nil
	}
	return &model.LegalDomain{
		Id:          d.Id,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *LegalDomainMapper) ToEntities(domains []*model.LegalDomain) []*entity.LegalDomain {
	entities := make([]*entity.LegalDomain, len(domains))
	for i, d := range domains {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
