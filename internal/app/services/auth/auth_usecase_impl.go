package auth

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	Clock           contracts.Clock
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			Clock:           clock,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
	}

	existing, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s taken", request.Email))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := uc.Clock.Now()
	user := &models.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     request.Role,
		Name:     request.Name,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return uc.startSession(ctx, user)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("credentials rejected for %s", request.Username))
	}

	return uc.startSession(ctx, user)
}

func (uc *authUsecase) Profile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("no user with id %s", session.UserID))
	}
	return utils.MapUserToProfileResponse(user), nil
}

func (uc *authUsecase) startSession(ctx context.Context, user *models.User) (*responses.Auth, error) {
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: uc.Clock.Now().Add(ttl),
	}
	if err := uc.RedisRepository.CreateSession(ctx, session, ttl); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase session started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, user.ID),
	)

	return &responses.Auth{
		AccessToken: token,
		User:        utils.MapUserToProfileResponse(user),
	}, nil
}
