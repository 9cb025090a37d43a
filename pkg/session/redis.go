package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "county-console:session:"

type RedisStore struct {
	redis  *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client, prefix: defaultPrefix}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	result, err := r.redis.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "session: redis get")
	}
	var s Session
	if err := json.Unmarshal(result, &s); err != nil {
		return nil, errors.Wrap(err, "session: decode")
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return r.Delete(ctx, s.ID)
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "session: encode")
	}
	if err := r.redis.Set(ctx, r.key(s.ID), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "session: redis set")
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.redis.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Wrap(err, "session: redis del")
	}
	return nil
}

// NewStore builds the store selected by storage ("memory" or "redis").
func NewStore(ctx context.Context, storage, redisURL string) (Store, error) {
	switch storage {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, errors.Wrap(err, "session: parse redis url")
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.Wrap(err, "session: redis ping")
		}
		return NewRedisStore(client), nil
	default:
		return nil, errors.Errorf("session: unknown storage %q", storage)
	}
}
