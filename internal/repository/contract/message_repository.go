package contract

import (
	"context"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error
}
