package main

import (
	"context"
	"healthinfo-service/internal/app/config"
	"healthinfo-service/internal/app/delivery/http/middlewares"
	"healthinfo-service/internal/app/delivery/http/routers"
	"healthinfo-service/internal/app/drivers/database"
	"healthinfo-service/internal/app/drivers/logger"
	"healthinfo-service/internal/app/drivers/messaging"
	"healthinfo-service/internal/app/services/core/auth"
	"healthinfo-service/internal/app/services/core/clients"
	"healthinfo-service/internal/app/services/core/enrollments"
	"healthinfo-service/internal/app/services/core/programs"
	"healthinfo-service/internal/app/services/core/session"
	"healthinfo-service/internal/app/services/core/users"
	"healthinfo-service/internal/app/services/shared/metrics"
	sharedMessaging "healthinfo-service/internal/app/services/shared/messaging"
	"healthinfo-service/internal/app/services/shared/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

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

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	appMetrics := metrics.New()

	eventPublisher, err := sharedMessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.EnrollmentEventQueue)
	if err != nil {
		log.Fatalf("Error setting up event publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig, appMetrics)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Client
	clientMongoRepository := clients.NewClientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	clientUsecase := clients.NewClientUsecase(clientMongoRepository, sessionService, bootstrap.Logger)
	clientController := clients.NewClientController(bootstrap.Logger, clientUsecase, bootstrap.InternalConfig)

	// Program
	programMongoRepository := programs.NewProgramMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	programUsecase := programs.NewProgramUsecase(programMongoRepository, sessionService, bootstrap.Logger)
	programController := programs.NewProgramController(bootstrap.Logger, programUsecase, bootstrap.InternalConfig)

	// Enrollment
	enrollmentMongoRepository := enrollments.NewEnrollmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	enrollmentUsecase := enrollments.NewEnrollmentUsecase(enrollmentMongoRepository, sessionService, eventPublisher, bootstrap.Logger)
	enrollmentController := enrollments.NewEnrollmentController(bootstrap.Logger, enrollmentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		clientController,
		programController,
		enrollmentController,
	)
}
