package config

import (
	"cobalt-screening-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "cobalt_screening"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/New_York"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		CobaltAPI: CobaltAPI{
			BaseUrl:              utils.GetEnvString("COBALT_API_BASE_URL", "http://localhost:8060"),
			RequestsPerSecond:    float64(utils.GetEnvInt("COBALT_API_REQUESTS_PER_SECOND", 50)),
			Burst:                utils.GetEnvInt("COBALT_API_BURST", 20),
			HTTPTimeoutInSeconds: utils.GetEnvInt("COBALT_API_HTTP_TIMEOUT_IN_SECONDS", 0),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Screening: Screening{
			SessionCacheTTL:      utils.GetEnvDuration("SCREENING_SESSION_CACHE_TTL", 30*time.Second),
			PhoneGateTTL:         utils.GetEnvDuration("SCREENING_PHONE_GATE_TTL", 30*time.Minute),
			CreateSessionLockTTL: utils.GetEnvDuration("SCREENING_CREATE_SESSION_LOCK_TTL", 10*time.Second),
			MutationsPerMinute:   utils.GetEnvInt("SCREENING_MUTATIONS_PER_MINUTE", 30),
			MutationBlockTime:    utils.GetEnvDuration("SCREENING_MUTATION_BLOCK_TIME", time.Minute),
		},
		Routes: Routes{
			CrisisUrl: utils.GetEnvString("ROUTES_CRISIS_URL", "/in-crisis"),
		},
		RabbitMQ: AppRabbitMQ{
			AnalyticsQueue: utils.GetEnvString("APP_RABBITMQ_ANALYTICS_QUEUE", "screening_analytics_events"),
		},
		MongoDB: AppMongoDB{
			AuditCollection: utils.GetEnvString("APP_MONGODB_AUDIT_COLLECTION", "screening_decision_audits"),
		},
	}
}
