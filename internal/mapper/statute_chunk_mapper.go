package mapper

import (
	"time"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type StatuteChunkMapper struct{}

func NewStatuteChunkMapper() *StatuteChunkMapper {
	return &StatuteChunkMapper{}
}

func (m *StatuteChunkMapper) ToEntity(c *model.StatuteChunk) *entity.StatuteChunk {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.StatuteChunk{
		Id:         c.Id,
		Text:       c.Text,
		Act:        c.Act,
		Section:    c.Section,
		Domain:     c.Domain,
		ChunkIndex: c.ChunkIndex,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *StatuteChunkMapper) ToModel(c *entity.StatuteChunk) *model.StatuteChunk {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.StatuteChunk{
		Id:         c.Id,
		Text:       c.Text,
		Act:        c.Act,
		Section:    c.Section,
		Domain:     c.Domain,
		ChunkIndex: c.ChunkIndex,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *StatuteChunkMapper) ToEntities(chunks []*model.StatuteChunk) []*entity.StatuteChunk {
	entities := make([]*entity.StatuteChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *StatuteChunkMapper) ToModels(chunks []*entity.StatuteChunk) []*model.StatuteChunk {
	models := make([]*model.StatuteChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
