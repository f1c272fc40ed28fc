package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psyexam-service/cmd/migration"
	"psyexam-service/internal/app/config"
	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/delivery/http/middlewares"
	"psyexam-service/internal/app/delivery/http/routers"
	"psyexam-service/internal/app/drivers/database"
	"psyexam-service/internal/app/drivers/logger"
	"psyexam-service/internal/app/drivers/messaging"
	"psyexam-service/internal/app/services/core/analyses"
	"psyexam-service/internal/app/services/core/analyzers"
	"psyexam-service/internal/app/services/core/exams"
	"psyexam-service/internal/app/services/core/patients"
	"psyexam-service/internal/app/services/core/results"
	"psyexam-service/internal/app/services/shared/eventqueue"
	"psyexam-service/internal/app/services/shared/redis"
	"psyexam-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch internalConfig.App.DatabaseDriver {
	case constvars.DatabaseDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	default:
		bootstrap.PostgresDB = database.NewPostgresDB(driverConfig)
		migration.Run(bootstrap.PostgresDB)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Sugar().Fatalf("Error while closing application resources: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Event queue
	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Sugar().Fatalf("Error initializing event queue service: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}
	bootstrap.Router.Use(appMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.Logger))

	accessLogger := logger.NewLogrusLogger(bootstrap.InternalConfig)
	bootstrap.Router.Use(appMiddlewares.RequestLogger(bootstrap.InternalConfig.App, accessLogger))

	// Repositories, selected by database driver
	var (
		analysisRepository contracts.AnalysisRepository
		resultRepository   contracts.ResultRepository
		examRepository     contracts.ExamRepository
		patientRepository  contracts.PatientRepository
	)
	if bootstrap.InternalConfig.App.DatabaseDriver == constvars.DatabaseDriverMongo {
		mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DBName)
		analysisRepository = analyses.NewAnalysisMongoRepository(mongoDatabase, bootstrap.Logger)
		resultRepository = results.NewResultMongoRepository(mongoDatabase, bootstrap.Logger)
		examRepository = exams.NewExamMongoRepository(mongoDatabase, bootstrap.Logger)
		patientRepository = patients.NewPatientMongoRepository(mongoDatabase, bootstrap.Logger)
	} else {
		analysisRepository = analyses.NewAnalysisPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
		resultRepository = results.NewResultPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
		examRepository = exams.NewExamPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
		patientRepository = patients.NewPatientPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	}

	// Analyzers
	registry := analyzers.Default()

	// Analysis
	analysisUsecase := analyses.NewAnalysisUsecase(
		analysisRepository,
		resultRepository,
		examRepository,
		patientRepository,
		redisRepository,
		eventPublisher,
		registry,
		time.Duration(bootstrap.InternalConfig.App.AnalysisCacheTTLInMinutes)*time.Minute,
		bootstrap.Logger,
	)
	analysisController := analyses.NewAnalysisController(bootstrap.Logger, analysisUsecase)

	// Result
	resultUsecase := results.NewResultUsecase(resultRepository, examRepository, patientRepository, bootstrap.Logger)
	resultController := results.NewResultController(bootstrap.Logger, resultUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, analysisController, resultController)
}
