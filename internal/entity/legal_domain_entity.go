package entity

import (
	"time"

	"github.com/google/uuid"
)

// LegalDomain is one selectable retrieval filter, e.g. CRIMINAL or
// FAMILY. Code is the value stored on statute chunks and conversations.
type LegalDomain struct {
	Id          uuid.UUID
	Code        string
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
}
