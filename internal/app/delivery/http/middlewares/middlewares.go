package middlewares

import (
	"sync"

	"wardlab-service/internal/app/config"
	"wardlab-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	middlewaresInstance *Middlewares
	onceMiddlewares     sync.Once
)

func NewMiddlewares(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	onceMiddlewares.Do(func() {
		middlewaresInstance = &Middlewares{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return middlewaresInstance
}
