package unitofwork

import (
	"context"

	"samvidhan-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	LegalDomainRepository() contract.LegalDomainRepository
	StatuteChunkRepository() contract.StatuteChunkRepository
}
