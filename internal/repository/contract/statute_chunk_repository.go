package contract

import (
	"context"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/specification"
)

type StatuteChunkRepository interface {
	Create(ctx context.Context, chunk *entity.StatuteChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.StatuteChunk) error
	// DeleteBySection removes chunks for one section of an act; an empty
	// section clears the whole act (re-ingest path).
	DeleteBySection(ctx context.Context, act string, section string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StatuteChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar runs cosine nearest-neighbor search. An empty domain
	// searches the whole index.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, domain string) ([]*entity.StatuteChunk, error)
}
