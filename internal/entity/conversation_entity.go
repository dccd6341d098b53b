package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Conversation struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Title        string
	DomainFilter *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is one persisted conversation turn. Sources, Citations and
// RelatedCases carry the answer's grounding metadata as raw JSON so the
// frontend can render them without another round trip.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	Sources        datatypes.JSON
	Citations      datatypes.JSON
	RelatedCases   datatypes.JSON
	CreatedAt      time.Time
}
