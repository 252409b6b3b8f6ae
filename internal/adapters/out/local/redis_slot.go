package local

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the slot under one Redis key, without expiry.
type RedisSlot struct {
	client redis.UniversalClient
	key    string
}

func NewRedisSlot(client redis.UniversalClient, name string) *RedisSlot {
	if name == "" {
		name = DefaultSlotName
	}
	return &RedisSlot{client: client, key: name}
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", s.key, err)
	}
	return data, nil
}

func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}
