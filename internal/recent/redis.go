package recent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisStore struct {
	client *redis.Client
	prefix string
	limit  int
}

// NewStore connects to Redis when url is set and falls back to an in-process
// store when it is empty or unreachable.
func NewStore(ctx context.Context, url, prefix string, limit int, log *zap.Logger) Store {
	if log == nil {
		log = zap.NewNop()
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if prefix == "" {
		prefix = DefaultKey
	}
	if url == "" {
		log.Info("redis not configured, keeping recent searches in memory")
		return NewMemoryStore(limit)
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("invalid REDIS_URL, keeping recent searches in memory", zap.Error(err))
		return NewMemoryStore(limit)
	}
	opt.PoolSize = 5
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis ping failed, keeping recent searches in memory", zap.Error(err))
		_ = client.Close()
		return NewMemoryStore(limit)
	}

	log.Info("redis connected", zap.String("addr", opt.Addr))
	return NewRedisStore(client, prefix, limit)
}

func NewRedisStore(client *redis.Client, prefix string, limit int) Store {
	return &redisStore{client: client, prefix: prefix, limit: limit}
}

func (r *redisStore) key(client string) string {
	return r.prefix + ":" + client
}

func (r *redisStore) Add(ctx context.Context, client, query string) ([]string, error) {
	return r.update(ctx, client, func(list []string) []string {
		return Push(list, query, r.limit)
	})
}

func (r *redisStore) List(ctx context.Context, client string) ([]string, error) {
	if client == "" {
		return nil, ErrMissingClient
	}
	return read(ctx, r.client, r.key(client))
}

func (r *redisStore) Remove(ctx context.Context, client, query string) ([]string, error) {
	return r.update(ctx, client, func(list []string) []string {
		return Drop(list, query)
	})
}

func (r *redisStore) Clear(ctx context.Context, client string) error {
	if client == "" {
		return ErrMissingClient
	}
	return r.client.Del(ctx, r.key(client)).Err()
}

// update applies fn under WATCH so concurrent writers for the same client do
// not lose entries.
func (r *redisStore) update(ctx context.Context, client string, fn func([]string) []string) ([]string, error) {
	if client == "" {
		return nil, ErrMissingClient
	}
	key := r.key(client)

	var result []string
	txf := func(tx *redis.Tx) error {
		list, err := read(ctx, tx, key)
		if err != nil {
			return err
		}
		result = fn(list)
		payload, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < 3; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update recent searches: %w", err)
		}
		return result, nil
	}
	return nil, fmt.Errorf("update recent searches: %w", redis.TxFailedErr)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func read(ctx context.Context, c getter, key string) ([]string, error) {
	val, err := c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read recent searches: %w", err)
	}
	var list []string
	if err := json.Unmarshal([]byte(val), &list); err != nil {
		return nil, fmt.Errorf("decode recent searches: %w", err)
	}
	return list, nil
}
