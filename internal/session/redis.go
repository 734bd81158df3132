package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "intake:address:"

// RedisStore keeps partial addresses in a redis hash per session, so
// multiple server instances share accumulator state. HSETNX gives the
// monotonic set-only-if-empty merge atomically per sub-field.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A non-positive ttl falls back to
// DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Merge(ctx context.Context, sessionID string, part Part, value string) (PartialAddress, error) {
	key := redisKeyPrefix + sessionID

	if value != "" {
		if err := s.client.HSetNX(ctx, key, string(part), value).Err(); err != nil {
			return PartialAddress{}, fmt.Errorf("merge fragment: %w", err)
		}
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return PartialAddress{}, fmt.Errorf("refresh session ttl: %w", err)
	}

	partial, _, err := s.Get(ctx, sessionID)
	return partial, err
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (PartialAddress, bool, error) {
	fields, err := s.client.HGetAll(ctx, redisKeyPrefix+sessionID).Result()
	if err != nil {
		return PartialAddress{}, false, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return PartialAddress{}, false, nil
	}

	return PartialAddress{
		HouseNumber: fields[string(PartHouseNumber)],
		Street:      fields[string(PartStreet)],
		City:        fields[string(PartCity)],
		State:       fields[string(PartState)],
	}, true, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
