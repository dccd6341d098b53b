package memory

import "context"

// Turn is a single exchange entry in a session's conversation history.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxTurns bounds retained history per session. Oldest turns are evicted
// first (FIFO) so prompts stay within token limits.
const MaxTurns = 14

// HistoryStore holds per-session conversation history. Implementations must
// serialize concurrent access to the same session.
type HistoryStore interface {
	// Get returns the retained turns for a session, oldest first.
	// An unknown session yields an empty slice.
	Get(ctx context.Context, sessionID string) ([]Turn, error)

	// Append adds turns to a session, creating it if needed, then truncates
	// to MaxTurns keeping the most recent entries.
	Append(ctx context.Context, sessionID string, turns ...Turn) error

	// Clear removes all history for a session.
	Clear(ctx context.Context, sessionID string) error
}
