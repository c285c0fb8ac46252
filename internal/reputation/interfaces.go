package reputation

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=reputation

import (
	"context"
	"time"
)

// BlockStore is the durable source of the blocklist
type BlockStore interface {
	ListBlockedRecipients(ctx context.Context) ([]string, error)
	BlockRecipient(ctx context.Context, email, reason string) error
}

// SetCache is the Redis surface used to cache the blocklist
type SetCache interface {
	IsEnabled() bool
	Exists(ctx context.Context, keys ...string) (int64, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	ReplaceSet(ctx context.Context, key string, members []string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
