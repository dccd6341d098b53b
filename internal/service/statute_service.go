package service

import (
	"context"
	"encoding/json"

	"samvidhan-ai-be/internal/dto"
)

type IStatuteService interface {
	IngestSection(ctx context.Context, req *dto.IngestSectionRequest) error
}

// statuteService queues sections for embedding. The consumer picks them
// up asynchronously, so ingest requests return before indexing finishes.
type statuteService struct {
	publisherService IPublisherService
}

func NewStatuteService(publisherService IPublisherService) IStatuteService {
	return &statuteService{
		publisherService: publisherService,
	}
}

func (s *statuteService) IngestSection(ctx context.Context, req *dto.IngestSectionRequest) error {
	payload := dto.PublishEmbedStatuteMessage{
		Act:     req.Act,
		Section: req.Section,
		Domain:  req.Domain,
		Text:    req.Text,
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, msgJson)
}
