package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jyotish/api/internal/content"
)

const contentKey = "site:content"

// RedisStore keeps the content document as a JSON string under a
// single key, with no expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient creates a store from an existing client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context) (content.Document, bool, error) {
	raw, err := s.client.Get(ctx, contentKey).Result()
	if err == redis.Nil {
		return content.Document{}, false, nil
	}
	if err != nil {
		return content.Document{}, false, fmt.Errorf("get content: %w", err)
	}

	var doc content.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		// Unreadable stored bytes read as "nothing stored".
		return content.Document{}, false, nil
	}
	return doc, true, nil
}

func (s *RedisStore) Put(ctx context.Context, doc content.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	if err := s.client.Set(ctx, contentKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("put content: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
