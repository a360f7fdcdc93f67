package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/config"
	"github.com/rumbus/shuttle/internal/pkg/database"
	"github.com/rumbus/shuttle/internal/pkg/health"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/metrics"
	"github.com/rumbus/shuttle/internal/pkg/middleware"
	natspkg "github.com/rumbus/shuttle/internal/pkg/nats"
	nrpkg "github.com/rumbus/shuttle/internal/pkg/newrelic"
	"github.com/rumbus/shuttle/internal/pkg/server"
	"github.com/rumbus/shuttle/internal/utils"
	historyHTTP "github.com/rumbus/shuttle/services/history/handler/http"
	historyNATS "github.com/rumbus/shuttle/services/history/handler/nats"
	historyRepository "github.com/rumbus/shuttle/services/history/repository"
	historyUsecase "github.com/rumbus/shuttle/services/history/usecase"
	stopHTTP "github.com/rumbus/shuttle/services/stops/handler/http"
	stopRepository "github.com/rumbus/shuttle/services/stops/repository"
	stopUsecase "github.com/rumbus/shuttle/services/stops/usecase"
	trackingGateway "github.com/rumbus/shuttle/services/tracking/gateway"
	trackingHandler "github.com/rumbus/shuttle/services/tracking/handler"
	trackingUsecase "github.com/rumbus/shuttle/services/tracking/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "tracker"
	configPath := config.GetEnv("CONFIG_PATH", "config/tracker.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	collector := metrics.NewCollector()

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	// Stop directory
	stopRepo := stopRepository.NewStopRepo(postgresClient)
	stopUC := stopUsecase.NewStopUC(stopRepo)
	stopHandler := stopHTTP.NewStopHandler(stopUC)

	// Proximity evaluation and live channel
	trackingGW := trackingGateway.NewTrackingGW(natsClient, configs.OSRM, collector)
	trackingUC := trackingUsecase.NewTrackingUC(stopUC, trackingGW, configs.Tracking, collector)
	liveHandler := trackingHandler.NewHandler(trackingUC, configs, collector)

	// Trip history
	historyRepo := historyRepository.NewHistoryRepo(redisClient)
	historyUC := historyUsecase.NewHistoryUC(historyRepo, collector)
	historyHandler := historyHTTP.NewHistoryHandler(historyUC)
	locationHandler := historyNATS.NewLocationHandler(historyUC, natsClient, nrApp)
	if err := locationHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize location consumer", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.EchoValidator{}

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, healthService)
	if configs.Metrics.Enabled {
		e.GET(configs.Metrics.Path, echo.WrapHandler(collector.Handler()))
	}

	stopHandler.RegisterRoutes(e.Group("/stops"))
	historyHandler.RegisterRoutes(e.Group("/trips"))
	liveHandler.RegisterRoutes(e)

	// Components shut down in reverse registration order
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	shutdown.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdown.Register("history-consumer", func(context.Context) error {
		locationHandler.Close()
		return nil
	})
	shutdown.Register("live-channel", liveHandler.Close)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(context.Background()); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
