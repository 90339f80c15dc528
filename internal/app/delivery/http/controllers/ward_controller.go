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

type WardController struct {
	Log         *zap.Logger
	WardUsecase contracts.WardUsecase
}

var (
	wardControllerInstance *WardController
	onceWardController     sync.Once
)

func NewWardController(logger *zap.Logger, wardUsecase contracts.WardUsecase) *WardController {
	onceWardController.Do(func() {
		wardControllerInstance = &WardController{
			Log:         logger,
			WardUsecase: wardUsecase,
		}
	})
	return wardControllerInstance
}

func (ctrl *WardController) ListWards(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WardUsecase.ListWards(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WardListSuccessMessage, response)
}

func (ctrl *WardController) CreateWard(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateWard)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WardUsecase.CreateWard(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WardCreateSuccessMessage, response)
}

func (ctrl *WardController) ListRooms(w http.ResponseWriter, r *http.Request) {
	wardID := chi.URLParam(r, "wardID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WardUsecase.ListRooms(ctx, wardID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoomListSuccessMessage, response)
}

func (ctrl *WardController) BulkUpdateRooms(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	wardID := chi.URLParam(r, "wardID")

	request := new(requests.BulkUpdateRooms)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("WardController.BulkUpdateRooms error decoding JSON",
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
	request.UpdatedBy = actorID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WardUsecase.BulkUpdateRooms(ctx, wardID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoomBulkSuccessMessage, response)
}

func (ctrl *WardController) SearchContacts(w http.ResponseWriter, r *http.Request) {
	query := &requests.SearchContacts{
		Query:      r.URL.Query().Get("q"),
		WardID:     r.URL.Query().Get("ward_id"),
		SearchType: r.URL.Query().Get("type"),
	}
	if query.SearchType == "" {
		query.SearchType = constvars.SearchTypeAll
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WardUsecase.SearchContacts(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchSuccessMessage, response)
}
