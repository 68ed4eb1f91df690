package issued

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "lanyard/pkg/domain"
	"lanyard/pkg/platform/sentinel"
)

// RedisStore shares issued-copy pointers across instances. Entries have no
// TTL: a stored copy stays valid until the delivery layer replaces it.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func key(attendeeID id.AttendeeID) string {
	return "badge:copy:" + attendeeID.String()
}

func (s *RedisStore) FindCopyURL(ctx context.Context, attendeeID id.AttendeeID) (string, error) {
	url, err := s.client.Get(ctx, key(attendeeID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find badge copy: %w", err)
	}
	return url, nil
}

func (s *RedisStore) SaveCopyURL(ctx context.Context, attendeeID id.AttendeeID, url string) error {
	if err := s.client.Set(ctx, key(attendeeID), url, 0).Err(); err != nil {
		return fmt.Errorf("save badge copy: %w", err)
	}
	return nil
}
