package dto

import (
	"github.com/google/uuid"

	"samvidhan-ai-be/pkg/docsum"
	"samvidhan-ai-be/pkg/rag/mapping"
	"samvidhan-ai-be/pkg/rag/synthesizer"
)

type ChatRequest struct {
	Message        string     `json:"message" validate:"required,min=1"`
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Domain         string     `json:"domain,omitempty"`
}

type ChatResponse struct {
	ConversationId uuid.UUID                     `json:"conversation_id"`
	Casual         string                        `json:"casual,omitempty"`
	Answer         *synthesizer.StructuredAnswer `json:"answer,omitempty"`
}

type SearchRequest struct {
	Query  string `json:"query" validate:"required,min=1"`
	Domain string `json:"domain,omitempty"`
}

type SearchResponse struct {
	Answer              *synthesizer.StructuredAnswer `json:"answer"`
	RelatedCases        []string                      `json:"related_cases,omitempty"`
	LegalDomainDetected string                        `json:"legal_domain_detected,omitempty"`
}

type CompareRequest struct {
	Section string `json:"section" validate:"required"`
}

type CompareResponse struct {
	Found      bool                    `json:"found"`
	Comparison *mapping.SectionMapping `json:"comparison,omitempty"`
	Message    string                  `json:"message,omitempty"`
}

type SummarizeResponse struct {
	Summary             *docsum.StructuredSummary `json:"summary"`
	ExtractedTextLength int                       `json:"extracted_text_length"`
}
