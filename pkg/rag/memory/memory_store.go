package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// sessionHistory carries its own lock so concurrent requests for the same
// session serialize their read-modify-write instead of losing turns.
type sessionHistory struct {
	mu    sync.Mutex
	turns []Turn
}

// InMemoryStore keeps session history in process memory. Histories idle for
// the TTL are purged; a restart loses everything, which is acceptable for
// single-instance deployments. Use RedisStore when running multiple replicas.
type InMemoryStore struct {
	mu    sync.Mutex // guards create-if-absent
	cache *cache.Cache
}

var _ HistoryStore = &InMemoryStore{}

func NewInMemoryStore() *InMemoryStore {
	// Sessions idle for 12 hours are purged, sweeping every 30 minutes
	return &InMemoryStore{
		cache: cache.New(12*time.Hour, 30*time.Minute),
	}
}

func (s *InMemoryStore) getOrCreate(sessionID string) *sessionHistory {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*sessionHistory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if x, found := s.cache.Get(sessionID); found {
		return x.(*sessionHistory)
	}
	h := &sessionHistory{}
	s.cache.Set(sessionID, h, cache.DefaultExpiration)
	return h
}

func (s *InMemoryStore) Get(_ context.Context, sessionID string) ([]Turn, error) {
	x, found := s.cache.Get(sessionID)
	if !found {
		return []Turn{}, nil
	}
	h := x.(*sessionHistory)

	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out, nil
}

func (s *InMemoryStore) Append(_ context.Context, sessionID string, turns ...Turn) error {
	h := s.getOrCreate(sessionID)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, turns...)
	if len(h.turns) > MaxTurns {
		h.turns = h.turns[len(h.turns)-MaxTurns:]
	}
	// refresh TTL on activity
	s.cache.Set(sessionID, h, cache.DefaultExpiration)
	return nil
}

func (s *InMemoryStore) Clear(_ context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}
