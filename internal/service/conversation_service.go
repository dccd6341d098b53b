package service

import (
	"context"
	"errors"
	"time"

	"samvidhan-ai-be/internal/dto"
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/specification"
	"samvidhan-ai-be/internal/repository/unitofwork"
	"samvidhan-ai-be/pkg/rag/memory"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

type IConversationService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ConversationResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateConversationRequest) (*dto.ConversationResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Messages(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]*dto.MessageResponse, error)
	AddMessage(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.AddMessageRequest) (*dto.MessageResponse, error)
	ListDomains(ctx context.Context) ([]*dto.LegalDomainResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	history    memory.HistoryStore
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory, history memory.HistoryStore) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		history:    history,
	}
}

func (s *conversationService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation := &entity.Conversation{
		Id:           uuid.New(),
		UserId:       userId,
		Title:        req.Title,
		DomainFilter: req.DomainFilter,
		CreatedAt:    time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

func (s *conversationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		res[i] = toConversationResponse(c)
	}
	return res, nil
}

func (s *conversationService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ConversationResponse, error) {
	conversation, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

func (s *conversationService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateConversationRequest) (*dto.ConversationResponse, error) {
	conversation, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		conversation.Title = *req.Title
	}
	if req.DomainFilter != nil {
		conversation.DomainFilter = req.DomainFilter
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

// Delete removes the conversation, its messages and its working memory.
func (s *conversationService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	conversation, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByConversationId(ctx, conversation.Id); err != nil {
		return err
	}
	if err := uow.ConversationRepository().Delete(ctx, conversation.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// Memory is advisory; a failed clear is not worth failing the delete.
	_ = s.history.Clear(ctx, conversation.Id.String())
	return nil
}

func (s *conversationService) Messages(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]*dto.MessageResponse, error) {
	if _, err := s.findOwned(ctx, userId, id); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i, msg := range messages {
		res[i] = &dto.MessageResponse{
			Id:           msg.Id,
			Role:         msg.Role,
			Content:      msg.Content,
			Sources:      msg.Sources,
			Citations:    msg.Citations,
			RelatedCases: msg.RelatedCases,
			CreatedAt:    msg.CreatedAt,
		}
	}
	return res, nil
}

// AddMessage appends a message to an owned conversation and bumps the
// conversation's updated_at so it sorts to the top of the list.
func (s *conversationService) AddMessage(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.AddMessageRequest) (*dto.MessageResponse, error) {
	conversation, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           req.Role,
		Content:        req.Content,
		Sources:        req.Sources,
		Citations:      req.Citations,
		RelatedCases:   req.RelatedCases,
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{
		Id:           message.Id,
		Role:         message.Role,
		Content:      message.Content,
		Sources:      message.Sources,
		Citations:    message.Citations,
		RelatedCases: message.RelatedCases,
		CreatedAt:    message.CreatedAt,
	}, nil
}

func (s *conversationService) ListDomains(ctx context.Context) ([]*dto.LegalDomainResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	domains, err := uow.LegalDomainRepository().FindAll(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LegalDomainResponse, len(domains))
	for i, d := range domains {
		res[i] = &dto.LegalDomainResponse{
			Id:          d.Id,
			Code:        d.Code,
			Name:        d.Name,
			Description: d.Description,
			Icon:        d.Icon,
		}
	}
	return res, nil
}

func (s *conversationService) findOwned(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*entity.Conversation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	return conversation, nil
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:           c.Id,
		Title:        c.Title,
		DomainFilter: c.DomainFilter,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
