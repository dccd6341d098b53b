package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatuteChunk is one embedded passage of a statute or judgment in the
// vector index.
type StatuteChunk struct {
	Id         uuid.UUID
	Text       string
	Act        string
	Section    string
	Domain     string
	ChunkIndex int
	Embedding  []float32
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
