package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/routers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/drivers/database"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/drivers/logger"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/drivers/messaging"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/drivers/storage"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/core/admin"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/core/auth"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/core/hospitals"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/core/isolations"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/core/users"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/core/visits"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/shared/eventqueue"
	sharedredis "github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/shared/redis"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/shared/session"
	sharedstorage "github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/shared/storage"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("cannot load timezone", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	redisRepository := sharedredis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	attachmentStorage := sharedstorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)

	eventPublisher, err := eventqueue.NewEventPublisher(
		rabbitMQConnection,
		internalConfig.Clinic.RabbitMQRecordEventQueue,
		internalConfig.Clinic.EventPublishRatePerSecond,
		log,
	)
	if err != nil {
		log.Fatal("cannot initialize event publisher", zap.Error(err))
	}

	userRepository := users.NewUserMongoRepository(mongoDB)
	visitRepository := visits.NewVisitMongoRepository(mongoDB)
	tokenCounterRepository := visits.NewTokenCounterMongoRepository(mongoDB)
	hospitalRepository := hospitals.NewHospitalMongoRepository(mongoDB)
	isolationRepository := isolations.NewIsolationMongoRepository(mongoDB)

	tokenSequencer := visits.NewTokenSequencer(tokenCounterRepository, constvars.DefaultLocationCodes, log)
	presignedExpiry := time.Duration(internalConfig.Clinic.AttachmentPresignedURLExpiryHours) * time.Hour

	visitUsecase := visits.NewVisitUsecase(visitRepository, userRepository, tokenSequencer, eventPublisher, attachmentStorage, presignedExpiry, log)
	hospitalUsecase := hospitals.NewHospitalUsecase(hospitalRepository, visitRepository, eventPublisher, log)
	isolationUsecase := isolations.NewIsolationUsecase(isolationRepository, visitRepository, eventPublisher, log)
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, internalConfig, log)
	adminUsecase := admin.NewAdminUsecase(authUsecase, userRepository, visitRepository, hospitalRepository, isolationRepository, internalConfig, log)

	appMiddlewares := middlewares.NewMiddlewares(log, sessionService, internalConfig)

	visitController := controllers.NewVisitController(log, visitUsecase)
	hospitalController := controllers.NewHospitalController(log, hospitalUsecase)
	isolationController := controllers.NewIsolationController(log, isolationUsecase)
	authController := controllers.NewAuthController(log, authUsecase)
	adminController := controllers.NewAdminController(log, adminUsecase)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		visitController,
		hospitalController,
		isolationController,
		authController,
		adminController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server starting",
			zap.String("address", internalConfig.App.Port),
			zap.String("environment", internalConfig.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	if err := eventPublisher.Close(); err != nil {
		log.Error("event publisher close failed", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("resource shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
