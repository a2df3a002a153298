package main

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/delivery/http/controllers"
	"cobalt-screening-service/internal/app/delivery/http/middlewares"
	"cobalt-screening-service/internal/app/delivery/http/routers"
	"cobalt-screening-service/internal/app/drivers/database"
	"cobalt-screening-service/internal/app/drivers/logger"
	"cobalt-screening-service/internal/app/drivers/messaging"
	"cobalt-screening-service/internal/app/services/cobalt_api/accounts"
	"cobalt-screening-service/internal/app/services/cobalt_api/apiclient"
	"cobalt-screening-service/internal/app/services/cobalt_api/screening_flow_versions"
	"cobalt-screening-service/internal/app/services/cobalt_api/screening_question_contexts"
	"cobalt-screening-service/internal/app/services/cobalt_api/screening_sessions"
	"cobalt-screening-service/internal/app/services/core/audits"
	"cobalt-screening-service/internal/app/services/core/destinations"
	"cobalt-screening-service/internal/app/services/core/phone_gate"
	"cobalt-screening-service/internal/app/services/core/screening_flows"
	"cobalt-screening-service/internal/app/services/core/screening_questions"
	"cobalt-screening-service/internal/app/services/shared/analytics"
	"cobalt-screening-service/internal/app/services/shared/locker"
	"cobalt-screening-service/internal/app/services/shared/redis"
	"cobalt-screening-service/internal/app/services/shared/sessioncache"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
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

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionCache := sessioncache.NewSessionCache(redisRepository, cfg.Screening.SessionCacheTTL, bootstrap.Logger)
	phoneGateStore := phone_gate.NewPhoneGateRedisRepository(redisRepository, cfg.Screening.PhoneGateTTL)
	auditRepository := audits.NewAuditMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName, cfg.MongoDB.AuditCollection)

	analyticsService, err := analytics.NewService(bootstrap.RabbitMQ, cfg.RabbitMQ.AnalyticsQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	bootstrap.AnalyticsStop = analyticsService.Close

	// Cobalt API
	apiClient := apiclient.NewClient(
		cfg.CobaltAPI.BaseUrl,
		cfg.CobaltAPI.RequestsPerSecond,
		cfg.CobaltAPI.Burst,
		time.Duration(cfg.CobaltAPI.HTTPTimeoutInSeconds)*time.Second,
	)
	screeningSessionClient := screening_sessions.NewScreeningSessionClient(apiClient, bootstrap.Logger)
	screeningFlowVersionClient := screening_flow_versions.NewScreeningFlowVersionClient(apiClient, bootstrap.Logger)
	screeningQuestionContextClient := screening_question_contexts.NewScreeningQuestionContextClient(apiClient, bootstrap.Logger)
	accountClient := accounts.NewAccountClient(apiClient, bootstrap.Logger)

	// Usecases
	destinationUsecase := destinations.NewDestinationUsecase(
		destinations.NewDestinationRouter(cfg.Routes.CrisisUrl),
		analyticsService,
		bootstrap.Logger,
	)
	screeningFlowUsecase := screening_flows.NewScreeningFlowUsecase(
		screeningSessionClient,
		screeningFlowVersionClient,
		destinationUsecase,
		sessionCache,
		phoneGateStore,
		lockerService,
		auditRepository,
		cfg,
		bootstrap.Logger,
	)
	phoneGateUsecase := phone_gate.NewPhoneGateUsecase(
		phoneGateStore,
		screeningFlowVersionClient,
		accountClient,
		screeningFlowUsecase,
		destinationUsecase,
		sessionCache,
		auditRepository,
		bootstrap.Logger,
	)
	screeningQuestionUsecase := screening_questions.NewScreeningQuestionUsecase(
		screeningQuestionContextClient,
		destinationUsecase,
		sessionCache,
		bootstrap.Logger,
	)

	// Delivery
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, cfg)
	mutationLimiter := middlewares.NewRateLimiter(
		cfg.Screening.MutationsPerMinute,
		time.Minute,
		cfg.Screening.MutationBlockTime,
		bootstrap.Logger,
	)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewareInstance, mutationLimiter, &routers.Controllers{
		ScreeningFlow:     controllers.NewScreeningFlowController(bootstrap.Logger, cfg, screeningFlowUsecase),
		PhoneGate:         controllers.NewPhoneGateController(bootstrap.Logger, cfg, phoneGateUsecase),
		Destination:       controllers.NewDestinationController(bootstrap.Logger, cfg, destinationUsecase),
		ScreeningQuestion: controllers.NewScreeningQuestionController(bootstrap.Logger, cfg, screeningQuestionUsecase),
		Health:            controllers.NewHealthController(cfg),
	})
	return nil
}
