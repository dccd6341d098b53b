package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs session history with a Redis list per session, so history
// survives restarts and is shared across replicas. Append uses RPUSH+LTRIM in
// a pipeline; Redis executes commands of a pipeline for one key atomically
// enough for our FIFO bound.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

var _ HistoryStore = &RedisStore{}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		ttl:    12 * time.Hour,
		prefix: "chat:history:",
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) ([]Turn, error) {
	raw, err := s.rdb.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err == nil {
			turns = append(turns, t)
		}
	}
	return turns, nil
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}

	key := s.key(sessionID)
	pipe := s.rdb.TxPipeline()
	for _, t := range turns {
		data, err := json.Marshal(t)
		if err != nil {
			continue
		}
		pipe.RPush(ctx, key, data)
	}
	pipe.LTrim(ctx, key, int64(-MaxTurns), -1)
	pipe.Expire(ctx, key, s.ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, s.key(sessionID)).Err()
}
