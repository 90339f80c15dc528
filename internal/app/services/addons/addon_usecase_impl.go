package addons

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wardlab-service/internal/app/config"
	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
	"wardlab-service/internal/pkg/exceptions"
	"wardlab-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type addonUsecase struct {
	AddonRequestRepository contracts.AddonRequestRepository
	AddonLogRepository     contracts.AddonLogRepository
	WardRepository         contracts.WardRepository
	UserRepository         contracts.UserRepository
	LockerService          contracts.LockerService
	Clock                  contracts.Clock
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	addonUsecaseInstance contracts.AddonUsecase
	onceAddonUsecase     sync.Once
)

func NewAddonUsecase(
	addonRequestRepository contracts.AddonRequestRepository,
	addonLogRepository contracts.AddonLogRepository,
	wardRepository contracts.WardRepository,
	userRepository contracts.UserRepository,
	lockerService contracts.LockerService,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AddonUsecase {
	onceAddonUsecase.Do(func() {
		instance := &addonUsecase{
			AddonRequestRepository: addonRequestRepository,
			AddonLogRepository:     addonLogRepository,
			WardRepository:         wardRepository,
			UserRepository:         userRepository,
			LockerService:          lockerService,
			Clock:                  clock,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		addonUsecaseInstance = instance
	})
	return addonUsecaseInstance
}

func (uc *addonUsecase) CreateAddonRequest(ctx context.Context, actorID string, request *requests.CreateAddonRequest) (*responses.AddonRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// The ward id is an opaque foreign reference; the directory owns it and
	// the name join in the response is best-effort.
	now := uc.Clock.Now()
	addonRequest := &models.AddOnRequest{
		WardID:            request.WardID,
		RoomID:            request.RoomID,
		RoomNumber:        request.RoomNumber,
		PatientID:         request.PatientID,
		RequestedTest:     request.RequestedTest,
		Reason:            request.Reason,
		IsUrgent:          request.IsUrgent,
		HasPreviousSample: request.HasPreviousSample,
		PreviousSampleID:  request.PreviousSampleID,
		AdditionalComment: request.AdditionalComment,
		RequestedBy:       actorID,
		Status:            constvars.AddonStatusPending,
		CreatedAt:         now,
	}

	addonRequestID, err := uc.AddonRequestRepository.CreateAddonRequest(ctx, addonRequest)
	if err != nil {
		return nil, err
	}

	entry := &models.AddOnLogEntry{
		RequestID:   addonRequestID,
		Action:      constvars.AddonLogActionCreated,
		PerformedBy: actorID,
		Timestamp:   now,
		Notes:       constvars.AddonLogNoteCreated,
	}
	if _, err := uc.AddonLogRepository.Append(ctx, entry); err != nil {
		// The request must not exist without its creation record.
		if deleteErr := uc.AddonRequestRepository.Delete(ctx, addonRequestID); deleteErr != nil {
			uc.Log.Error("addonUsecase.CreateAddonRequest failed to roll back request after log append failure",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAddonIDKey, addonRequestID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("addonUsecase.CreateAddonRequest created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAddonIDKey, addonRequestID),
		zap.String(constvars.LoggingActorIDKey, actorID),
	)

	return uc.buildResponse(ctx, addonRequest)
}

func (uc *addonUsecase) ApproveAddonRequest(ctx context.Context, addonRequestID, actorID string, request *requests.ApproveAddonRequest) (*responses.AddonRequest, error) {
	if request.Action != constvars.AddonActionAddToSameSample && request.Action != constvars.AddonActionNeedNewSample {
		return nil, exceptions.ErrAddonInvalidApprovalAction(fmt.Errorf("unknown approval action %q", request.Action))
	}

	return uc.applyTransition(ctx, addonRequestID, actorID, transitionStep{
		Operation:  "approve",
		FromStatus: constvars.AddonStatusPending,
		LogAction:  constvars.AddonLogActionApproved,
		LogNotes:   fmt.Sprintf(constvars.AddonLogNoteApprovedFormat, request.Action),
		Mark: func(now time.Time) (bool, error) {
			return uc.AddonRequestRepository.MarkApproved(ctx, addonRequestID, request.Action, actorID, now)
		},
	})
}

func (uc *addonUsecase) RejectAddonRequest(ctx context.Context, addonRequestID, actorID string, request *requests.RejectAddonRequest) (*responses.AddonRequest, error) {
	if request.Reason == "" {
		return nil, exceptions.ErrAddonRejectionReasonRequired(fmt.Errorf("empty rejection reason"))
	}

	return uc.applyTransition(ctx, addonRequestID, actorID, transitionStep{
		Operation:  "reject",
		FromStatus: constvars.AddonStatusPending,
		LogAction:  constvars.AddonLogActionRejected,
		LogNotes:   fmt.Sprintf(constvars.AddonLogNoteRejectedFormat, request.Reason),
		Mark: func(now time.Time) (bool, error) {
			return uc.AddonRequestRepository.MarkRejected(ctx, addonRequestID, request.Reason, actorID, now)
		},
	})
}

func (uc *addonUsecase) CompleteAddonRequest(ctx context.Context, addonRequestID, actorID string) (*responses.AddonRequest, error) {
	return uc.applyTransition(ctx, addonRequestID, actorID, transitionStep{
		Operation:  "complete",
		FromStatus: constvars.AddonStatusApproved,
		LogAction:  constvars.AddonLogActionCompleted,
		LogNotes:   constvars.AddonLogNoteCompleted,
		Mark: func(now time.Time) (bool, error) {
			return uc.AddonRequestRepository.MarkCompleted(ctx, addonRequestID, now)
		},
	})
}

// transitionStep captures what differs between approve, reject and
// complete; applyTransition owns everything they share.
type transitionStep struct {
	Operation  string
	FromStatus string
	LogAction  string
	LogNotes   string
	Mark       func(now time.Time) (bool, error)
}

// applyTransition serializes the transition behind a per-request lock,
// re-checks the precondition, applies the conditional update and appends
// the audit entry. A failed append rolls the lifecycle fields back so the
// request and its ledger never disagree.
func (uc *addonUsecase) applyTransition(ctx context.Context, addonRequestID, actorID string, step transitionStep) (*responses.AddonRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockKey := fmt.Sprintf(constvars.RedisAddonLockKeyFormat, addonRequestID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.lockTTL())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAddonLockNotAcquired(fmt.Errorf("lock busy for request %s", addonRequestID))
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("addonUsecase.applyTransition failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAddonIDKey, addonRequestID),
				zap.Error(unlockErr),
			)
		}
	}()

	prior, err := uc.AddonRequestRepository.FindByID(ctx, addonRequestID)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, exceptions.ErrAddonRequestNotFound(fmt.Errorf("no add-on request with id %s", addonRequestID))
	}
	if prior.Status != step.FromStatus {
		return nil, exceptions.ErrAddonInvalidTransition(prior.Status, step.Operation)
	}

	now := uc.Clock.Now()
	matched, err := step.Mark(now)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost a race despite the lock, likely to a writer that bypassed
		// it. The conditional update is the source of truth.
		current, findErr := uc.AddonRequestRepository.FindByID(ctx, addonRequestID)
		if findErr != nil {
			return nil, findErr
		}
		if current == nil {
			return nil, exceptions.ErrAddonRequestNotFound(fmt.Errorf("no add-on request with id %s", addonRequestID))
		}
		return nil, exceptions.ErrAddonInvalidTransition(current.Status, step.Operation)
	}

	entry := &models.AddOnLogEntry{
		RequestID:   addonRequestID,
		Action:      step.LogAction,
		PerformedBy: actorID,
		Timestamp:   now,
		Notes:       step.LogNotes,
	}
	if _, err := uc.AddonLogRepository.Append(ctx, entry); err != nil {
		if restoreErr := uc.AddonRequestRepository.RestoreLifecycle(ctx, prior); restoreErr != nil {
			uc.Log.Error("addonUsecase.applyTransition failed to roll back transition after log append failure",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAddonIDKey, addonRequestID),
				zap.Error(restoreErr),
			)
		}
		return nil, err
	}

	updated, err := uc.AddonRequestRepository.FindByID(ctx, addonRequestID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrAddonRequestNotFound(fmt.Errorf("no add-on request with id %s", addonRequestID))
	}

	uc.Log.Info("addonUsecase.applyTransition applied",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAddonIDKey, addonRequestID),
		zap.String(constvars.LoggingActorIDKey, actorID),
		zap.String(constvars.LoggingStatusKey, updated.Status),
	)

	return uc.buildResponse(ctx, updated)
}

func (uc *addonUsecase) ListAddonRequests(ctx context.Context, filter *requests.ListAddonRequests) ([]responses.AddonRequest, error) {
	addonRequests, err := uc.AddonRequestRepository.FindAll(ctx, filter)
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

	result := make([]responses.AddonRequest, 0, len(addonRequests))
	for i := range addonRequests {
		request := &addonRequests[i]
		response := utils.MapAddonRequestToResponse(
			request,
			wardNames[request.WardID],
			userNames[request.RequestedBy],
			userNames[request.ReviewedBy],
		)
		result = append(result, *response)
	}
	return result, nil
}

func (uc *addonUsecase) AuditTrail(ctx context.Context, addonRequestID string) ([]responses.AddonLogEntry, error) {
	request, err := uc.AddonRequestRepository.FindByID(ctx, addonRequestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, exceptions.ErrAddonRequestNotFound(fmt.Errorf("no add-on request with id %s", addonRequestID))
	}

	entries, err := uc.AddonLogRepository.EntriesForRequest(ctx, addonRequestID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.AddonLogEntry, 0, len(entries))
	for i := range entries {
		result = append(result, *utils.MapAddonLogToResponse(&entries[i]))
	}
	return result, nil
}

func (uc *addonUsecase) lockTTL() time.Duration {
	return time.Duration(uc.InternalConfig.App.AddonLockTTLInSeconds) * time.Second
}

func (uc *addonUsecase) buildResponse(ctx context.Context, request *models.AddOnRequest) (*responses.AddonRequest, error) {
	wardName := ""
	if ward, err := uc.WardRepository.FindByID(ctx, request.WardID); err == nil && ward != nil {
		wardName = ward.Name
	}

	userIDs := []string{request.RequestedBy}
	if request.ReviewedBy != "" {
		userIDs = append(userIDs, request.ReviewedBy)
	}
	users, err := uc.UserRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}

	return utils.MapAddonRequestToResponse(request, wardName, names[request.RequestedBy], names[request.ReviewedBy]), nil
}

func (uc *addonUsecase) wardNames(ctx context.Context) (map[string]string, error) {
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

func (uc *addonUsecase) userNames(ctx context.Context, addonRequests []models.AddOnRequest) (map[string]string, error) {
	seen := make(map[string]bool)
	userIDs := make([]string, 0)
	for i := range addonRequests {
		for _, id := range []string{addonRequests[i].RequestedBy, addonRequests[i].ReviewedBy} {
			if id != "" && !seen[id] {
				seen[id] = true
				userIDs = append(userIDs, id)
			}
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
