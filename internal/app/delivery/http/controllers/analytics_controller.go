package controllers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/exceptions"
	"wardlab-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

var (
	analyticsControllerInstance *AnalyticsController
	onceAnalyticsController     sync.Once
)

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	onceAnalyticsController.Do(func() {
		analyticsControllerInstance = &AnalyticsController{
			Log:              logger,
			AnalyticsUsecase: analyticsUsecase,
		}
	})
	return analyticsControllerInstance
}

func (ctrl *AnalyticsController) GetAddonStats(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	query := new(requests.AddonStatsQuery)
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(constvars.AnalyticsDateKeyFormat, raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
			return
		}
		query.StartDate = &parsed
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse(constvars.AnalyticsDateKeyFormat, raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
			return
		}
		// Inclusive day bound.
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		query.EndDate = &endOfDay
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.AddonStats(ctx, query)
	if err != nil {
		ctrl.Log.Error("AnalyticsController.GetAddonStats error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsStatsSuccessMessage, response)
}

func (ctrl *AnalyticsController) GetAddonTrends(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	query := &requests.AddonTrendsQuery{Days: constvars.AnalyticsDefaultTrendDays}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		query.Days = days
	}
	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.AddonTrends(ctx, query)
	if err != nil {
		ctrl.Log.Error("AnalyticsController.GetAddonTrends error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsTrendsSuccessMessage, response)
}
