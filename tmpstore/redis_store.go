package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server at the addr, e.g. "localhost:6379".
func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // "" for no password, ok for now
		DB:       0,  // 0 for default database
	})

	return NewRedisStoreFromClient(rdb)
}

// NewRedisStoreFromClient wraps the existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping checks the connection.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

func (store *RedisStore) GetNodes(ctx context.Context, key string) ([]entity.Node, error) {
	jsonData, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get nodes: %w", err)
	}

	var nodes []entity.Node
	if err := json.Unmarshal(jsonData, &nodes); err != nil {
		return nil, fmt.Errorf("failed to parse nodes json: %w", err)
	}

	return nodes, nil
}

func (store *RedisStore) SaveNodes(ctx context.Context, key string, nodes []entity.Node, ttl time.Duration) error {
	jsonData, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("failed to serialize nodes: %w", err)
	}

	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}
