package store

import "context"

// Store defines the operations the application needs from the key-value
// store: raw record reads, snapshot slot writes, and moderation deletes.
type Store interface {
	Ping(ctx context.Context) error
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
	FetchValues(ctx context.Context, keys []string) ([]string, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Delete(ctx context.Context, key string) (bool, error)
	PublishSnapshots(ctx context.Context, hashKey string, hashFields map[string]string, stringSlots map[string]string) error
	Close() error
}
