package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/exceptions"
	"wardlab-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AddonController struct {
	Log          *zap.Logger
	AddonUsecase contracts.AddonUsecase
}

var (
	addonControllerInstance *AddonController
	onceAddonController     sync.Once
)

func NewAddonController(logger *zap.Logger, addonUsecase contracts.AddonUsecase) *AddonController {
	onceAddonController.Do(func() {
		addonControllerInstance = &AddonController{
			Log:          logger,
			AddonUsecase: addonUsecase,
		}
	})
	return addonControllerInstance
}

func (ctrl *AddonController) CreateAddonRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateAddonRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AddonController.CreateAddonRequest error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	actorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || actorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AddonUsecase.CreateAddonRequest(ctx, actorID, request)
	if err != nil {
		ctrl.buildError(w, requestID, "CreateAddonRequest", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddonCreateSuccessMessage, response)
}

func (ctrl *AddonController) ApproveAddonRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	addonRequestID := chi.URLParam(r, "requestID")

	request := new(requests.ApproveAddonRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	actorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || actorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AddonUsecase.ApproveAddonRequest(ctx, addonRequestID, actorID, request)
	if err != nil {
		ctrl.buildError(w, requestID, "ApproveAddonRequest", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddonApproveSuccessMessage, response)
}

func (ctrl *AddonController) RejectAddonRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	addonRequestID := chi.URLParam(r, "requestID")

	request := new(requests.RejectAddonRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	actorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || actorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AddonUsecase.RejectAddonRequest(ctx, addonRequestID, actorID, request)
	if err != nil {
		ctrl.buildError(w, requestID, "RejectAddonRequest", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddonRejectSuccessMessage, response)
}

func (ctrl *AddonController) CompleteAddonRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	addonRequestID := chi.URLParam(r, "requestID")

	actorID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || actorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AddonUsecase.CompleteAddonRequest(ctx, addonRequestID, actorID)
	if err != nil {
		ctrl.buildError(w, requestID, "CompleteAddonRequest", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddonCompleteSuccessMessage, response)
}

func (ctrl *AddonController) ListAddonRequests(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	filter := &requests.ListAddonRequests{
		Status: r.URL.Query().Get("status"),
		WardID: r.URL.Query().Get("ward_id"),
	}
	if err := utils.ValidateStruct(filter); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AddonUsecase.ListAddonRequests(ctx, filter)
	if err != nil {
		ctrl.buildError(w, requestID, "ListAddonRequests", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddonListSuccessMessage, response)
}

func (ctrl *AddonController) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	addonRequestID := chi.URLParam(r, "requestID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AddonUsecase.AuditTrail(ctx, addonRequestID)
	if err != nil {
		ctrl.buildError(w, requestID, "GetAuditTrail", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddonLogsSuccessMessage, response)
}

func (ctrl *AddonController) buildError(w http.ResponseWriter, requestID, operation string, err error) {
	ctrl.Log.Error("AddonController."+operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
