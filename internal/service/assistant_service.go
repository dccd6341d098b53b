package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"samvidhan-ai-be/internal/dto"
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/pkg/logger"
	"samvidhan-ai-be/internal/repository/specification"
	"samvidhan-ai-be/internal/repository/unitofwork"
	"samvidhan-ai-be/pkg/docsum"
	"samvidhan-ai-be/pkg/events"
	pktNats "samvidhan-ai-be/pkg/nats"
	"samvidhan-ai-be/pkg/rag/mapping"
	"samvidhan-ai-be/pkg/rag/sectionref"
	"samvidhan-ai-be/pkg/rag/synthesizer"

	"github.com/google/uuid"
)

const maxAutoTitleLen = 60

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
	Compare(ctx context.Context, req *dto.CompareRequest) (*dto.CompareResponse, error)
	Summarize(ctx context.Context, fileBytes []byte) (*dto.SummarizeResponse, error)
}

type assistantService struct {
	uowFactory     unitofwork.RepositoryFactory
	synth          *synthesizer.Synthesizer
	summarizer     *docsum.Summarizer
	mappings       *mapping.Table
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	synth *synthesizer.Synthesizer,
	summarizer *docsum.Summarizer,
	mappings *mapping.Table,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:     uowFactory,
		synth:          synth,
		summarizer:     summarizer,
		mappings:       mappings,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

// Chat answers one message inside a conversation, creating the
// conversation on first use.
func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var conversation *entity.Conversation
	if req.ConversationId != nil {
		found, err := uow.ConversationRepository().FindOne(ctx,
			specification.ByID{ID: *req.ConversationId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, ErrConversationNotFound
		}
		conversation = found
	} else {
		var domainFilter *string
		if req.Domain != "" {
			d := req.Domain
			domainFilter = &d
		}
		conversation = &entity.Conversation{
			Id:           uuid.New(),
			UserId:       userId,
			Title:        autoTitle(req.Message),
			DomainFilter: domainFilter,
			CreatedAt:    time.Now(),
		}
		if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	domain := req.Domain
	if domain == "" && conversation.DomainFilter != nil {
		domain = *conversation.DomainFilter
	}

	result := s.synth.Answer(ctx, conversation.Id.String(), req.Message, domain)

	if err := s.persistExchange(ctx, conversation.Id, req.Message, result); err != nil {
		// The user already has their answer, losing the record is
		// logged but not surfaced.
		s.logger.Warn("ASSISTANT", "Failed to persist chat messages", map[string]interface{}{
			"conversation_id": conversation.Id.String(),
			"error":           err.Error(),
		})
	}

	s.publishAnswered(ctx, userId, conversation.Id, result)

	return &dto.ChatResponse{
		ConversationId: conversation.Id,
		Casual:         result.Casual,
		Answer:         result.Answer,
	}, nil
}

func (s *assistantService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	answer := s.synth.Lookup(ctx, req.Query, req.Domain)
	return &dto.SearchResponse{
		Answer:              answer,
		RelatedCases:        answer.RelatedCases,
		LegalDomainDetected: answer.LegalDomain,
	}, nil
}

func (s *assistantService) Compare(ctx context.Context, req *dto.CompareRequest) (*dto.CompareResponse, error) {
	entry := s.mappings.Lookup(req.Section)
	if entry == nil {
		// Accept free-text input like "IPC 302" or "section 420".
		if ref := sectionref.Parse(req.Section); ref != nil {
			entry = s.mappings.Lookup(ref.Number)
		}
	}
	if entry == nil {
		return &dto.CompareResponse{
			Found: false,
			Message: fmt.Sprintf("No mapping found for section %q. Known IPC sections: %s.",
				req.Section, strings.Join(s.mappings.Sections(), ", ")),
		}, nil
	}
	return &dto.CompareResponse{
		Found:      true,
		Comparison: entry,
	}, nil
}

func (s *assistantService) Summarize(ctx context.Context, fileBytes []byte) (*dto.SummarizeResponse, error) {
	text, err := docsum.ExtractText(fileBytes)
	if err != nil {
		return nil, err
	}
	summary, err := s.summarizer.SummarizeText(ctx, text)
	if err != nil {
		return nil, err
	}
	return &dto.SummarizeResponse{
		Summary:             summary,
		ExtractedTextLength: len(text),
	}, nil
}

func (s *assistantService) persistExchange(ctx context.Context, conversationId uuid.UUID, query string, result *synthesizer.Result) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	userMsg := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversationId,
		Role:           entity.MessageRoleUser,
		Content:        query,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMsg); err != nil {
		return err
	}

	assistantMsg := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversationId,
		Role:           entity.MessageRoleAssistant,
		CreatedAt:      time.Now(),
	}
	if result.Answer != nil {
		content, err := json.Marshal(result.Answer)
		if err != nil {
			return err
		}
		assistantMsg.Content = string(content)

		if citations, err := json.Marshal(result.Answer.Citations); err == nil {
			assistantMsg.Citations = citations
		}
		if len(result.Answer.RelatedCases) > 0 {
			if cases, err := json.Marshal(result.Answer.RelatedCases); err == nil {
				assistantMsg.RelatedCases = cases
			}
		}
	} else {
		assistantMsg.Content = result.Casual
	}
	if err := uow.MessageRepository().Create(ctx, assistantMsg); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *assistantService) publishAnswered(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID, result *synthesizer.Result) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: "CHAT_ANSWERED",
		Data: map[string]interface{}{
			"user_id":         userId,
			"conversation_id": conversationId,
			"kind":            string(result.Kind),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("ASSISTANT", "Failed to publish CHAT_ANSWERED event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func autoTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= maxAutoTitleLen {
		return message
	}
	return string(runes[:maxAutoTitleLen]) + "..."
}
