package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSnapshotStore keeps the cart snapshot under a single Redis key,
// overwritten wholesale on every Save.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotStore accepts either a redis:// URL or a plain
// "hostname:port" address.
func NewRedisSnapshotStore(redisAddr, key string) *RedisSnapshotStore {
	opts, err := redis.ParseURL(redisAddr)
	if err != nil {
		opts = &redis.Options{
			Addr:         redisAddr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}
	}

	return &RedisSnapshotStore{
		client: redis.NewClient(opts),
		key:    key,
	}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) ([]SnapshotEntry, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		// No snapshot yet, same as an empty cart
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET error: %w", err)
	}

	var entries []SnapshotEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return entries, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, entries []SnapshotEntry) error {
	if entries == nil {
		entries = []SnapshotEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (s *RedisSnapshotStore) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(pingCtx).Err()
}

func (s *RedisSnapshotStore) Close() error {
	return s.client.Close()
}
