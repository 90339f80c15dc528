package wards

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
	"wardlab-service/internal/pkg/exceptions"
	"wardlab-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type wardUsecase struct {
	WardRepository contracts.WardRepository
	RoomRepository contracts.RoomRepository
	Clock          contracts.Clock
	Log            *zap.Logger
}

var (
	wardUsecaseInstance contracts.WardUsecase
	onceWardUsecase     sync.Once
)

func NewWardUsecase(
	wardRepository contracts.WardRepository,
	roomRepository contracts.RoomRepository,
	clock contracts.Clock,
	logger *zap.Logger,
) contracts.WardUsecase {
	onceWardUsecase.Do(func() {
		instance := &wardUsecase{
			WardRepository: wardRepository,
			RoomRepository: roomRepository,
			Clock:          clock,
			Log:            logger,
		}
		wardUsecaseInstance = instance
	})
	return wardUsecaseInstance
}

func (uc *wardUsecase) ListWards(ctx context.Context) ([]responses.Ward, error) {
	wards, err := uc.WardRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Ward, 0, len(wards))
	for i := range wards {
		result = append(result, responses.Ward{ID: wards[i].ID, Name: wards[i].Name})
	}
	return result, nil
}

func (uc *wardUsecase) CreateWard(ctx context.Context, request *requests.CreateWard) (*responses.Ward, error) {
	now := uc.Clock.Now()
	ward := &models.Ward{
		Name: request.Name,
	}
	ward.CreatedAt = now
	ward.UpdatedAt = now

	wardID, err := uc.WardRepository.CreateWard(ctx, ward)
	if err != nil {
		return nil, err
	}
	return &responses.Ward{ID: wardID, Name: ward.Name}, nil
}

func (uc *wardUsecase) ListRooms(ctx context.Context, wardID string) ([]responses.Room, error) {
	ward, err := uc.WardRepository.FindByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, exceptions.ErrWardNotFound(fmt.Errorf("no ward with id %s", wardID))
	}

	rooms, err := uc.RoomRepository.FindAllByWard(ctx, wardID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, *utils.MapRoomToResponse(&rooms[i], ward.Name))
	}
	return result, nil
}

// BulkUpdateRooms upserts the whole board for one ward in a single call.
// Rooms are matched by ward and room number, so the board can be re-posted
// without tracking ids on the client.
func (uc *wardUsecase) BulkUpdateRooms(ctx context.Context, wardID string, request *requests.BulkUpdateRooms) (*responses.BulkUpdateRooms, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ward, err := uc.WardRepository.FindByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, exceptions.ErrWardNotFound(fmt.Errorf("no ward with id %s", wardID))
	}

	now := uc.Clock.Now()
	summary := &responses.BulkUpdateRooms{}

	for i := range request.Rooms {
		upsert := &request.Rooms[i]

		existing, err := uc.RoomRepository.FindByWardAndNumber(ctx, wardID, upsert.RoomNumber)
		if err != nil {
			return nil, err
		}

		if existing == nil {
			room := roomFromUpsert(wardID, upsert)
			room.UpdatedBy = request.UpdatedBy
			room.CreatedAt = now
			room.UpdatedAt = now
			if _, err := uc.RoomRepository.CreateRoom(ctx, room); err != nil {
				return nil, err
			}
			summary.Created++
			continue
		}

		room := roomFromUpsert(wardID, upsert)
		room.ID = existing.ID
		room.UpdatedBy = request.UpdatedBy
		room.CreatedAt = existing.CreatedAt
		room.UpdatedAt = now
		if err := uc.RoomRepository.UpdateRoom(ctx, room); err != nil {
			return nil, err
		}
		summary.Updated++
	}

	uc.Log.Info("wardUsecase.BulkUpdateRooms applied",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
	)

	return summary, nil
}

func (uc *wardUsecase) SearchContacts(ctx context.Context, query *requests.SearchContacts) ([]responses.Room, error) {
	wards, err := uc.WardRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	wardNames := make(map[string]string, len(wards))
	for i := range wards {
		wardNames[wards[i].ID] = wards[i].Name
	}

	var rooms []models.Room
	if query.SearchType == constvars.SearchTypeWard {
		rooms, err = uc.roomsByWardName(ctx, query, wards)
	} else {
		rooms, err = uc.RoomRepository.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, *utils.MapRoomToResponse(&rooms[i], wardNames[rooms[i].WardID]))
	}
	return result, nil
}

// roomsByWardName resolves the query against ward names, then returns the
// rooms of every matching ward, capped like the field search.
func (uc *wardUsecase) roomsByWardName(ctx context.Context, query *requests.SearchContacts, wards []models.Ward) ([]models.Room, error) {
	needle := strings.ToLower(query.Query)

	rooms := make([]models.Room, 0)
	for i := range wards {
		if query.WardID != "" && wards[i].ID != query.WardID {
			continue
		}
		if !strings.Contains(strings.ToLower(wards[i].Name), needle) {
			continue
		}

		wardRooms, err := uc.RoomRepository.FindAllByWard(ctx, wards[i].ID)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, wardRooms...)
		if len(rooms) >= constvars.CriticalCallSearchLimit {
			return rooms[:constvars.CriticalCallSearchLimit], nil
		}
	}
	return rooms, nil
}

func roomFromUpsert(wardID string, upsert *requests.RoomUpsert) *models.Room {
	return &models.Room{
		WardID:                wardID,
		RoomNumber:            upsert.RoomNumber,
		PatientName:           upsert.PatientName,
		PatientID:             upsert.PatientID,
		PrimaryNurseName:      upsert.PrimaryNurseName,
		PrimaryNurseExtension: upsert.PrimaryNurseExtension,
		BackupNurseName:       upsert.BackupNurseName,
		BackupNurseExtension:  upsert.BackupNurseExtension,
		ChargeNurseName:       upsert.ChargeNurseName,
		Notes:                 upsert.Notes,
		ShiftType:             upsert.ShiftType,
	}
}
