package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces the records in a shared redis database.
const KeyPrefix = "casino:"

// RedisStore keeps the JSON records as plain redis strings.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects lazily to the server described by url,
// e.g. "redis://localhost:6379/0".
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisStoreFromClient(redis.NewClient(opts)), nil
}

// NewRedisStoreFromClient wraps an existing client. Close closes the client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string) (Record, error) {
	data, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, fmt.Errorf("%s%s: %w", KeyPrefix, key, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return Decode(data)
}

func (s *RedisStore) Save(ctx context.Context, key string, rec Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, KeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
