package keyvalue

import (
	"context"
	"errors"

	backend "github.com/redis/go-redis/v9"
)

// RedisSlot stores the value under a fixed key so it survives restarts.
type RedisSlot struct {
	client *backend.Client
	key    string
}

func NewRedisSlot(client *backend.Client, key string) *RedisSlot {
	if key == "" {
		key = "roadtrip:session:user_id"
	}
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Write(ctx context.Context, value string) error {
	return s.client.Set(ctx, s.key, value, 0).Err()
}

func (s *RedisSlot) Read(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (s *RedisSlot) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
