package contracts

import (
	"context"

	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	AddonStats(ctx context.Context, query *requests.AddonStatsQuery) (*responses.AddonStats, error)
	AddonTrends(ctx context.Context, query *requests.AddonTrendsQuery) (*responses.AddonTrends, error)
}
