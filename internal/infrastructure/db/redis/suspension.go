package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SuspensionList records suspended or deleted account ids so the API
// layer can reject their still-valid tokens immediately, without waiting
// for expiry. Entries never expire: suspension has no reverse operation.
// Key format: suspended:<user_id>
type SuspensionList struct {
	client *redis.Client
}

// NewSuspensionList creates a SuspensionList wrapping the given client.
func NewSuspensionList(client *redis.Client) *SuspensionList {
	return &SuspensionList{client: client}
}

// Mark records the account as suspended.
func (l *SuspensionList) Mark(ctx context.Context, userID string) error {
	return l.client.Set(ctx, l.key(userID), "1", 0).Err()
}

// IsSuspended reports whether the account has been suspended or deleted.
func (l *SuspensionList) IsSuspended(ctx context.Context, userID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("suspension check: %w", err)
	}
	return n > 0, nil
}

func (l *SuspensionList) key(userID string) string {
	return "suspended:" + userID
}
