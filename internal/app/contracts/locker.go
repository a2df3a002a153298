package contracts

import (
	"context"
	"time"
)

// LockerService serializes screening session creates for one flow key.
// TryLock returns the token Unlock needs; a lock not released expires with expiration.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
