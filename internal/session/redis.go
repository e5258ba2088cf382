package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"pubhouse-be/internal/cart"
)

// RedisStore keeps session cart state in redis under a TTL, so carts survive
// server restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (cart.State, error) {
	var st cart.State

	val, err := s.client.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return st, nil
		}
		return st, fmt.Errorf("get session: %w", err)
	}
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		// A corrupt session payload degrades to an empty cart.
		return cart.State{}, nil
	}
	return st, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, st cart.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, key(sessionID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func key(sessionID string) string {
	return "cart:" + sessionID
}
