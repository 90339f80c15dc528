package contracts

import (
	"context"

	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	Profile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error)
}
