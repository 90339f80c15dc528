package contracts

import (
	"context"

	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
)

type WardUsecase interface {
	ListWards(ctx context.Context) ([]responses.Ward, error)
	CreateWard(ctx context.Context, request *requests.CreateWard) (*responses.Ward, error)
	ListRooms(ctx context.Context, wardID string) ([]responses.Room, error)
	BulkUpdateRooms(ctx context.Context, wardID string, request *requests.BulkUpdateRooms) (*responses.BulkUpdateRooms, error)
	SearchContacts(ctx context.Context, query *requests.SearchContacts) ([]responses.Room, error)
}

type WardRepository interface {
	CreateWard(ctx context.Context, ward *models.Ward) (string, error)
	FindByID(ctx context.Context, wardID string) (*models.Ward, error)
	FindAll(ctx context.Context) ([]models.Ward, error)
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, room *models.Room) (string, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	FindByWardAndNumber(ctx context.Context, wardID, roomNumber string) (*models.Room, error)
	FindAllByWard(ctx context.Context, wardID string) ([]models.Room, error)
	Search(ctx context.Context, query *requests.SearchContacts) ([]models.Room, error)
}
