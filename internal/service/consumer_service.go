package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"samvidhan-ai-be/internal/dto"
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/unitofwork"
	"samvidhan-ai-be/pkg/embedding"
	"samvidhan-ai-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	chunkSize    = 1500
	chunkOverlap = 200
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedStatuteMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // invalid payloads would retry forever
		return
	}

	log.Printf("[INFO] Embedding %s section %s (%d chars)", payload.Act, payload.Section, len(payload.Text))

	chunks := utils.SplitText(payload.Text, chunkSize, chunkOverlap)

	var newChunks []*entity.StatuteChunk
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of %s s.%s: %v", i, payload.Act, payload.Section, err)
			msg.Nack()
			return
		}
		newChunks = append(newChunks, &entity.StatuteChunk{
			Id:         uuid.New(),
			Text:       chunk,
			Act:        payload.Act,
			Section:    payload.Section,
			Domain:     payload.Domain,
			ChunkIndex: i,
			Embedding:  res.Embedding.Values,
			CreatedAt:  time.Now(),
		})
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	// Replace any previous chunks of this section.
	if err := uow.StatuteChunkRepository().DeleteBySection(ctx, payload.Act, payload.Section); err != nil {
		log.Printf("[ERROR] Failed to delete old chunks: %v", err)
		msg.Nack()
		return
	}
	if len(newChunks) > 0 {
		if err := uow.StatuteChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			log.Printf("[ERROR] Failed to create chunks: %v", err)
			msg.Nack()
			return
		}
	}
	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Indexed %d chunks for %s section %s", len(newChunks), payload.Act, payload.Section)
	msg.Ack()
}
