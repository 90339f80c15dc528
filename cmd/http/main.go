package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wardlab-service/internal/app/config"
	"wardlab-service/internal/app/delivery/http/controllers"
	"wardlab-service/internal/app/delivery/http/middlewares"
	"wardlab-service/internal/app/delivery/http/routers"
	"wardlab-service/internal/app/drivers/database"
	"wardlab-service/internal/app/drivers/logger"
	"wardlab-service/internal/app/services/addons"
	"wardlab-service/internal/app/services/analytics"
	"wardlab-service/internal/app/services/auth"
	"wardlab-service/internal/app/services/shared/clock"
	"wardlab-service/internal/app/services/shared/locker"
	"wardlab-service/internal/app/services/shared/redis"
	"wardlab-service/internal/app/services/wards"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(mongoClient, bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(mongoClient *mongo.Client, bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	systemClock := clock.NewSystemClock()

	// Middlewares
	middlewares := middlewares.NewMiddlewares(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Users and auth
	userMongoRepository := auth.NewUserMongoRepository(mongoClient, dbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, systemClock, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Wards and rooms
	wardMongoRepository := wards.NewWardMongoRepository(mongoClient, dbName)
	roomMongoRepository := wards.NewRoomMongoRepository(mongoClient, dbName)
	wardUsecase := wards.NewWardUsecase(wardMongoRepository, roomMongoRepository, systemClock, bootstrap.Logger)
	wardController := controllers.NewWardController(bootstrap.Logger, wardUsecase)

	// Add-on request lifecycle
	addonRequestMongoRepository := addons.NewAddonRequestMongoRepository(mongoClient, dbName)
	addonLogMongoRepository := addons.NewAddonLogMongoRepository(mongoClient, dbName, systemClock)
	addonUsecase := addons.NewAddonUsecase(
		addonRequestMongoRepository,
		addonLogMongoRepository,
		wardMongoRepository,
		userMongoRepository,
		lockerService,
		systemClock,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	addonController := controllers.NewAddonController(bootstrap.Logger, addonUsecase)

	// Analytics
	analyticsUsecase := analytics.NewAnalyticsUsecase(
		addonRequestMongoRepository,
		wardMongoRepository,
		userMongoRepository,
		systemClock,
		bootstrap.Logger,
	)
	analyticsController := controllers.NewAnalyticsController(bootstrap.Logger, analyticsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		wardController,
		addonController,
		analyticsController,
	)
}
