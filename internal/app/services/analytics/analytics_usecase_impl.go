package analytics

import (
	"context"
	"strings"
	"sync"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
	"wardlab-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type analyticsUsecase struct {
	AddonRequestRepository contracts.AddonRequestRepository
	WardRepository         contracts.WardRepository
	UserRepository         contracts.UserRepository
	Clock                  contracts.Clock
	Log                    *zap.Logger
}

var (
	analyticsUsecaseInstance contracts.AnalyticsUsecase
	onceAnalyticsUsecase     sync.Once
)

func NewAnalyticsUsecase(
	addonRequestRepository contracts.AddonRequestRepository,
	wardRepository contracts.WardRepository,
	userRepository contracts.UserRepository,
	clock contracts.Clock,
	logger *zap.Logger,
) contracts.AnalyticsUsecase {
	onceAnalyticsUsecase.Do(func() {
		instance := &analyticsUsecase{
			AddonRequestRepository: addonRequestRepository,
			WardRepository:         wardRepository,
			UserRepository:         userRepository,
			Clock:                  clock,
			Log:                    logger,
		}
		analyticsUsecaseInstance = instance
	})
	return analyticsUsecaseInstance
}

// AddonStats aggregates over a single snapshot of the requests fetched at
// call start, so concurrent writers cannot skew one table against another.
func (uc *analyticsUsecase) AddonStats(ctx context.Context, query *requests.AddonStatsQuery) (*responses.AddonStats, error) {
	addonRequests, err := uc.AddonRequestRepository.FindCreatedBetween(ctx, query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	wardNames, err := uc.wardNames(ctx)
	if err != nil {
		return nil, err
	}
	userNames, err := uc.userNames(ctx, addonRequests)
	if err != nil {
		return nil, err
	}

	stats := &responses.AddonStats{
		TotalRequests: len(addonRequests),
		WardStats:     make(map[string]int),
		TestStats:     make(map[string]int),
		ReasonStats:   make(map[string]int),
		ShiftStats:    map[string]int{constvars.ShiftDay: 0, constvars.ShiftNight: 0},
		UserStats:     make(map[string]int),
	}

	for i := range addonRequests {
		request := &addonRequests[i]

		wardName := wardNames[request.WardID]
		if wardName == "" {
			wardName = constvars.ResponseUnknown
		}
		stats.WardStats[wardName]++

		stats.TestStats[request.RequestedTest]++
		stats.ReasonStats[request.Reason]++
		stats.ShiftStats[utils.ShiftBucket(request.CreatedAt)]++

		userName := userNames[request.RequestedBy]
		if userName == "" {
			userName = constvars.ResponseUnknown
		}
		stats.UserStats[userName]++

		if IsPreventable(request.Reason) {
			stats.PreventableCount++
		}

		switch request.Status {
		case constvars.AddonStatusPending:
			stats.StatusBreakdown.Pending++
		case constvars.AddonStatusApproved:
			stats.StatusBreakdown.Approved++
		case constvars.AddonStatusRejected:
			stats.StatusBreakdown.Rejected++
		case constvars.AddonStatusCompleted:
			stats.StatusBreakdown.Completed++
		}
	}

	if stats.TotalRequests > 0 {
		stats.PreventablePercentage = utils.RoundTwoDecimals(float64(stats.PreventableCount) / float64(stats.TotalRequests) * 100)
	}

	return stats, nil
}

// AddonTrends counts requests per calendar day over the trailing window.
// Days with no requests still appear, with a zero count.
func (uc *analyticsUsecase) AddonTrends(ctx context.Context, query *requests.AddonTrendsQuery) (*responses.AddonTrends, error) {
	days := query.Days
	if days <= 0 {
		days = constvars.AnalyticsDefaultTrendDays
	}

	// The window is exactly now minus the lookback, so the earliest calendar
	// day is usually partial. The zero-filled buckets cover the full days;
	// counts on the partial boundary day surface through the increments.
	now := uc.Clock.Now()
	start := now.AddDate(0, 0, -days)

	addonRequests, err := uc.AddonRequestRepository.FindCreatedBetween(ctx, &start, &now)
	if err != nil {
		return nil, err
	}

	dailyStats := make(map[string]int, days)
	for offset := 1; offset <= days; offset++ {
		dailyStats[utils.DateKey(start.AddDate(0, 0, offset))] = 0
	}
	for i := range addonRequests {
		dailyStats[utils.DateKey(addonRequests[i].CreatedAt)]++
	}

	return &responses.AddonTrends{
		DailyStats: dailyStats,
		PeriodDays: days,
	}, nil
}

// IsPreventable flags reasons that point at an avoidable omission on the
// initial order, matched case-insensitively.
func IsPreventable(reason string) bool {
	lowered := strings.ToLower(reason)
	for _, keyword := range constvars.PreventableReasonKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func (uc *analyticsUsecase) wardNames(ctx context.Context) (map[string]string, error) {
	wards, err := uc.WardRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(wards))
	for i := range wards {
		names[wards[i].ID] = wards[i].Name
	}
	return names, nil
}

func (uc *analyticsUsecase) userNames(ctx context.Context, addonRequests []models.AddOnRequest) (map[string]string, error) {
	seen := make(map[string]bool)
	userIDs := make([]string, 0)
	for i := range addonRequests {
		id := addonRequests[i].RequestedBy
		if id != "" && !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}

	users, err := uc.UserRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}
	return names, nil
}
