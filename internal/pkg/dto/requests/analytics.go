package requests

import "time"

// AddonStatsQuery bounds the statistics snapshot by creation time.
// Either side may be nil for an unbounded window.
type AddonStatsQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type AddonTrendsQuery struct {
	Days int `validate:"gte=1,lte=365"`
}
