package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*Client)(nil)

// Client wraps a Redis connection for record and snapshot operations
type Client struct {
	rdb *redis.Client
}

// NewClient creates a store client from a connection URL
func NewClient(url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid store URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 5

	return &Client{rdb: redis.NewClient(opts)}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping store: %w", err)
	}
	return nil
}

// ScanKeys enumerates all keys matching the given glob pattern
func (c *Client) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys for pattern %s: %w", pattern, err)
	}

	return keys, nil
}

// FetchValues retrieves all values in a single pipelined round trip.
// Missing keys yield an empty string at their position.
func (c *Client) FetchValues(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.StringCmd, len(keys))
	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.Get(ctx, key)
		}
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch %d keys: %w", len(keys), err)
	}

	values := make([]string, len(keys))
	for i, cmd := range cmds {
		val, err := cmd.Result()
		if err != nil {
			// Nil and per-key errors both surface as a missing value
			continue
		}
		values[i] = val
	}

	return values, nil
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	if err := c.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read hash %s: %w", key, err)
	}
	return fields, nil
}

func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	deleted, err := c.rdb.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return deleted > 0, nil
}

// PublishSnapshots replaces the homepage hash fields and the trend string
// slots in a single MULTI/EXEC transaction, so readers never observe a
// mix of old and new snapshots.
func (c *Client) PublishSnapshots(ctx context.Context, hashKey string, hashFields map[string]string, stringSlots map[string]string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(hashFields) > 0 {
			pipe.HSet(ctx, hashKey, hashFields)
		}
		for slot, value := range stringSlots {
			pipe.Set(ctx, slot, value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish snapshots: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
