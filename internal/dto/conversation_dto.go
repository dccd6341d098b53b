package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateConversationRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=255"`
	DomainFilter *string `json:"domain_filter,omitempty"`
}

type UpdateConversationRequest struct {
	Title        *string `json:"title,omitempty"`
	DomainFilter *string `json:"domain_filter,omitempty"`
}

type AddMessageRequest struct {
	Role         string         `json:"role" validate:"required,oneof=user assistant"`
	Content      string         `json:"content" validate:"required"`
	Sources      datatypes.JSON `json:"sources,omitempty"`
	Citations    datatypes.JSON `json:"citations,omitempty"`
	RelatedCases datatypes.JSON `json:"related_cases,omitempty"`
}

type ConversationResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	DomainFilter *string    `json:"domain_filter,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type MessageResponse struct {
	Id           uuid.UUID      `json:"id"`
	Role         string         `json:"role"`
	Content      string         `json:"content"`
	Sources      datatypes.JSON `json:"sources,omitempty"`
	Citations    datatypes.JSON `json:"citations,omitempty"`
	RelatedCases datatypes.JSON `json:"related_cases,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type LegalDomainResponse struct {
	Id          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}
