package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for collections, appended to the configured prefix
	collectionKeyPrefix = "collection:"
)

// RedisConfig holds configuration for the Redis document store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces every key, e.g. "sportsmeet:"
	KeyPrefix string
}

// redisStore implements the Store interface with one Redis string per collection
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed document store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (s *redisStore) key(collection string) string {
	return fmt.Sprintf("%s%s%s", s.prefix, collectionKeyPrefix, collection)
}

// Load gets the collection document, seeding it with the default when missing
func (s *redisStore) Load(ctx context.Context, input *LoadInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	key := s.key(input.Collection)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			return fmt.Errorf("failed to get %s: %w", input.Collection, err)
		}

		data, err = encode(input.Default)
		if err != nil {
			return fmt.Errorf("failed to marshal default %s: %w", input.Collection, err)
		}
		// SetNX so a concurrently started process does not clobber real data with defaults
		created, err := s.client.SetNX(ctx, key, data, 0).Result()
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", input.Collection, err)
		}
		if !created {
			if data, err = s.client.Get(ctx, key).Bytes(); err != nil {
				return fmt.Errorf("failed to get %s: %w", input.Collection, err)
			}
		}
	}

	if err := json.Unmarshal(data, input.Target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", input.Collection, err)
	}
	return nil
}

// Save overwrites the collection document
func (s *redisStore) Save(ctx context.Context, input *SaveInput) error {
	if err := input.validate(); err != nil {
		return err
	}
	data, err := encode(input.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", input.Collection, err)
	}
	if err := s.client.Set(ctx, s.key(input.Collection), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", input.Collection, err)
	}
	return nil
}
