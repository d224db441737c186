package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "goadvent:result:"
	redisIndexKey  = "goadvent:results"
)

// RedisStore keeps each result as a JSON value and tracks all keys in a set.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore accepts a redis:// URL or a plain host:port address.
func NewRedisStore(connectionString string) (*RedisStore, error) {
	opts, err := redis.ParseURL(connectionString)
	if err != nil {
		opts = &redis.Options{Addr: connectionString}
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) Init(ctx context.Context) error {
	return s.Ping(ctx)
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) SaveResult(ctx context.Context, r *Result) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode result %s: %w", r.Key, err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKeyPrefix+r.Key, payload, 0)
		pipe.SAdd(ctx, redisIndexKey, r.Key)
		return nil
	})
	return err
}

func (s *RedisStore) GetResult(ctx context.Context, key string) (*Result, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var r Result
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("failed to decode result %s: %w", key, err)
	}
	return &r, nil
}

func (s *RedisStore) ListResults(ctx context.Context) ([]*Result, error) {
	keys, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, err
	}
	results := make([]*Result, 0, len(keys))
	for _, key := range keys {
		r, err := s.GetResult(ctx, key)
		if err != nil {
			return nil, err
		}
		if r == nil {
			// Value vanished since the index was read.
			continue
		}
		results = append(results, r)
	}
	sortResults(results)
	return results, nil
}

func (s *RedisStore) DeleteResult(ctx context.Context, key string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisKeyPrefix+key)
		pipe.SRem(ctx, redisIndexKey, key)
		return nil
	})
	return err
}

func sortResults(results []*Result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Part != b.Part {
			return a.Part < b.Part
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.Key < b.Key
	})
}
