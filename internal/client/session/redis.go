package session

import (
	"context"
	"fmt"
	"time"

	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/redis/go-redis/v9"
)

const (
	fieldData    = "data"
	fieldSavedAt = "saved_at"
)

// RedisStore keeps the session in a Redis hash. A positive ttl makes the
// session expire on its own.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, key: common.SessionKey, ttl: ttl, now: time.Now}
}

func (s *RedisStore) Save(ctx context.Context, blob []byte) error {
	savedAt := s.now().UTC().Format(time.RFC3339)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		pipe.HSet(ctx, s.key, fieldData, blob, fieldSavedAt, savedAt)
		if s.ttl > 0 {
			pipe.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*Entry, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis load %s: %w", s.key, err)
	}

	data, ok := fields[fieldData]
	if !ok {
		return nil, nil
	}

	entry := &Entry{Data: []byte(data)}
	if t, err := time.Parse(time.RFC3339, fields[fieldSavedAt]); err == nil {
		entry.SavedAt = t
	}
	return entry, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis clear %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
