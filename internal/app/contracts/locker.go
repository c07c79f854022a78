package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	// TryLock attempts to take the key without blocking. The returned
	// value fences Unlock so only the holder can release.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
