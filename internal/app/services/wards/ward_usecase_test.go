package wards

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memWardRepository struct {
	byID map[string]models.Ward
}

func (r *memWardRepository) CreateWard(ctx context.Context, ward *models.Ward) (string, error) {
	if ward.ID == "" {
		ward.ID = uuid.NewString()
	}
	r.byID[ward.ID] = *ward
	return ward.ID, nil
}

func (r *memWardRepository) FindByID(ctx context.Context, wardID string) (*models.Ward, error) {
	ward, ok := r.byID[wardID]
	if !ok {
		return nil, nil
	}
	return &ward, nil
}

func (r *memWardRepository) FindAll(ctx context.Context) ([]models.Ward, error) {
	result := make([]models.Ward, 0, len(r.byID))
	for _, ward := range r.byID {
		result = append(result, ward)
	}
	return result, nil
}

type memRoomRepository struct {
	byID map[string]models.Room
}

func (r *memRoomRepository) CreateRoom(ctx context.Context, room *models.Room) (string, error) {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	r.byID[room.ID] = *room
	return room.ID, nil
}

func (r *memRoomRepository) UpdateRoom(ctx context.Context, room *models.Room) error {
	r.byID[room.ID] = *room
	return nil
}

func (r *memRoomRepository) FindByWardAndNumber(ctx context.Context, wardID, roomNumber string) (*models.Room, error) {
	for _, room := range r.byID {
		if room.WardID == wardID && room.RoomNumber == roomNumber {
			clone := room
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memRoomRepository) FindAllByWard(ctx context.Context, wardID string) ([]models.Room, error) {
	result := make([]models.Room, 0)
	for _, room := range r.byID {
		if room.WardID == wardID {
			result = append(result, room)
		}
	}
	return result, nil
}

func (r *memRoomRepository) Search(ctx context.Context, query *requests.SearchContacts) ([]models.Room, error) {
	needle := strings.ToLower(query.Query)
	result := make([]models.Room, 0)
	for _, room := range r.byID {
		if query.WardID != "" && room.WardID != query.WardID {
			continue
		}
		haystack := strings.ToLower(strings.Join([]string{
			room.RoomNumber, room.PatientName, room.PatientID,
			room.PrimaryNurseName, room.BackupNurseName, room.ChargeNurseName,
		}, " "))
		if strings.Contains(haystack, needle) {
			result = append(result, room)
		}
	}
	return result, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newWardFixture() (*wardUsecase, *memWardRepository, *memRoomRepository) {
	wardRepo := &memWardRepository{byID: map[string]models.Ward{
		"ward-icu": {ID: "ward-icu", Name: "ICU"},
	}}
	roomRepo := &memRoomRepository{byID: map[string]models.Room{}}
	uc := &wardUsecase{
		WardRepository: wardRepo,
		RoomRepository: roomRepo,
		Clock:          &fixedClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		Log:            zap.NewNop(),
	}
	return uc, wardRepo, roomRepo
}

func TestCreateAndListWards(t *testing.T) {
	uc, _, _ := newWardFixture()

	created, err := uc.CreateWard(context.Background(), &requests.CreateWard{Name: "Surgical"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Surgical", created.Name)

	wards, err := uc.ListWards(context.Background())
	require.NoError(t, err)
	assert.Len(t, wards, 2)
}

func TestBulkUpdateRooms(t *testing.T) {
	uc, _, roomRepo := newWardFixture()

	first, err := uc.BulkUpdateRooms(context.Background(), "ward-icu", &requests.BulkUpdateRooms{
		UpdatedBy: "nurse-1",
		Rooms: []requests.RoomUpsert{
			{RoomNumber: "12A", PrimaryNurseName: "Dewi", PrimaryNurseExtension: "4101"},
			{RoomNumber: "12B", PrimaryNurseName: "Sari", PrimaryNurseExtension: "4102"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Updated)

	// Re-post the board: same room numbers must update, not duplicate.
	second, err := uc.BulkUpdateRooms(context.Background(), "ward-icu", &requests.BulkUpdateRooms{
		UpdatedBy: "nurse-2",
		Rooms: []requests.RoomUpsert{
			{RoomNumber: "12A", PrimaryNurseName: "Dewi", PrimaryNurseExtension: "4199", ShiftType: constvars.ShiftNight},
			{RoomNumber: "12C", PrimaryNurseName: "Budi", PrimaryNurseExtension: "4103"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Created)
	assert.Equal(t, 1, second.Updated)

	rooms, err := roomRepo.FindAllByWard(context.Background(), "ward-icu")
	require.NoError(t, err)
	assert.Len(t, rooms, 3)

	updated, err := roomRepo.FindByWardAndNumber(context.Background(), "ward-icu", "12A")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "4199", updated.PrimaryNurseExtension)
	assert.Equal(t, "nurse-2", updated.UpdatedBy)
}

func TestBulkUpdateRoomsUnknownWard(t *testing.T) {
	uc, _, _ := newWardFixture()

	_, err := uc.BulkUpdateRooms(context.Background(), "ward-missing", &requests.BulkUpdateRooms{
		Rooms: []requests.RoomUpsert{{RoomNumber: "1", PrimaryNurseName: "Dewi", PrimaryNurseExtension: "4101"}},
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestListRoomsUnknownWard(t *testing.T) {
	uc, _, _ := newWardFixture()

	_, err := uc.ListRooms(context.Background(), "ward-missing")
	require.Error(t, err)
}

func TestSearchContacts(t *testing.T) {
	uc, _, roomRepo := newWardFixture()
	roomRepo.byID["room-1"] = models.Room{
		ID: "room-1", WardID: "ward-icu", RoomNumber: "12A",
		PatientName: "Agus Salim", PrimaryNurseName: "Dewi", PrimaryNurseExtension: "4101",
	}
	roomRepo.byID["room-2"] = models.Room{
		ID: "room-2", WardID: "ward-icu", RoomNumber: "14C",
		PatientName: "Rina", PrimaryNurseName: "Budi", PrimaryNurseExtension: "4102",
	}

	found, err := uc.SearchContacts(context.Background(), &requests.SearchContacts{
		Query:      "agus",
		SearchType: constvars.SearchTypeAll,
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "12A", found[0].RoomNumber)
	assert.Equal(t, "ICU", found[0].WardName)
}

func TestSearchContactsByWardName(t *testing.T) {
	uc, wardRepo, roomRepo := newWardFixture()
	wardRepo.byID["ward-med"] = models.Ward{ID: "ward-med", Name: "Medical"}
	roomRepo.byID["room-1"] = models.Room{
		ID: "room-1", WardID: "ward-icu", RoomNumber: "12A",
		PatientName: "Agus Salim", PrimaryNurseName: "Dewi",
	}
	roomRepo.byID["room-2"] = models.Room{
		ID: "room-2", WardID: "ward-med", RoomNumber: "3B",
		PatientName: "Rina", PrimaryNurseName: "Budi",
	}

	found, err := uc.SearchContacts(context.Background(), &requests.SearchContacts{
		Query:      "icu",
		SearchType: constvars.SearchTypeWard,
	})
	require.NoError(t, err)
	require.Len(t, found, 1, "only rooms of wards whose name matches")
	assert.Equal(t, "12A", found[0].RoomNumber)
	assert.Equal(t, "ICU", found[0].WardName)

	none, err := uc.SearchContacts(context.Background(), &requests.SearchContacts{
		Query:      "icu",
		WardID:     "ward-med",
		SearchType: constvars.SearchTypeWard,
	})
	require.NoError(t, err)
	assert.Empty(t, none, "ward filter intersects the name match")
}
