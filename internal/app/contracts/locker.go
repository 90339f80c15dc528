package contracts

import (
	"context"
	"time"
)

// LockerService serializes writers on a shared key. TryLock returns a
// fencing value that must be presented back to Unlock so a holder cannot
// release a lock that expired and was re-acquired by someone else.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
