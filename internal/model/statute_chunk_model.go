package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type StatuteChunk struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Text       string          `gorm:"type:text;not null"`
	Act        string          `gorm:"type:varchar(255);not null;index"`
	Section    string          `gorm:"type:varchar(50)"`
	Domain     string          `gorm:"type:varchar(50);index"`
	ChunkIndex int             `gorm:"default:0"`
	Embedding  pgvector.Vector `gorm:"type:vector(1024)"` // mistral-embed uses 1024 dimensions
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (StatuteChunk) TableName() string {
	return "statute_chunks"
}
