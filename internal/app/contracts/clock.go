package contracts

import "time"

// Clock abstracts wall-clock reads so lifecycle timestamps and shift
// bucketing stay deterministic under test.
type Clock interface {
	Now() time.Time
}
