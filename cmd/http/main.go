package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patientdesk-service/internal/app/config"
	"patientdesk-service/internal/app/delivery/http/middlewares"
	"patientdesk-service/internal/app/delivery/http/routers"
	"patientdesk-service/internal/app/drivers/database"
	"patientdesk-service/internal/app/drivers/logger"
	mailerdrv "patientdesk-service/internal/app/drivers/mailer"
	"patientdesk-service/internal/app/drivers/messaging"
	"patientdesk-service/internal/app/services/patients"
	"patientdesk-service/internal/app/services/shared/mailer"
	sharedredis "patientdesk-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, bootstrapLog)
	redisClient := database.NewRedisClient(driverConfig, bootstrapLog)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, bootstrapLog)
	chiRouter := chi.NewRouter()

	mailerWorker := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		BootstrapLog:   bootstrapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	stopWorker, err := mailerWorker.Start(workerCtx)
	if err != nil {
		bootstrapLog.Fatalf("Failed to start mailer worker: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	stopWorker()
	cancelWorker()

	bootstrapLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) *mailer.Worker {
	// Shared gateways, constructed once for the process lifetime
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	smtpClient := mailerdrv.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue)
	if err != nil {
		bootstrap.BootstrapLog.Fatalf("Failed to create mailer service: %v", err)
	}
	mailerWorker, err := mailer.NewWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.App.MailerQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.BootstrapLog.Fatalf("Failed to create mailer worker: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(
		patientMongoRepository,
		mailerService,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController)

	return mailerWorker
}
