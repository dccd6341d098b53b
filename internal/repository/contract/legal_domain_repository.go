package contract

import (
	"context"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/specification"
)

type LegalDomainRepository interface {
	Create(ctx context.Context, domain *entity.LegalDomain) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LegalDomain, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LegalDomain, error)
}
