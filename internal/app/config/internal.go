package config

import "time"

type InternalConfig struct {
	App       App         `mapstructure:"app"`
	CobaltAPI CobaltAPI   `mapstructure:"cobalt_api"`
	JWT       AppJWT      `mapstructure:"jwt"`
	Screening Screening   `mapstructure:"screening"`
	Routes    Routes      `mapstructure:"routes"`
	RabbitMQ  AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB   AppMongoDB  `mapstructure:"mongodb"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

// CobaltAPI configures the remote REST API this service consumes.
type CobaltAPI struct {
	BaseUrl              string  `mapstructure:"base_url"`
	RequestsPerSecond    float64 `mapstructure:"requests_per_second"`
	Burst                int     `mapstructure:"burst"`
	HTTPTimeoutInSeconds int     `mapstructure:"http_timeout_in_seconds"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type Screening struct {
	// SessionCacheTTL bounds how long a fetched session list is reused within a page view.
	SessionCacheTTL time.Duration `mapstructure:"session_cache_ttl"`
	// PhoneGateTTL is how long an open phone collection gate is remembered.
	PhoneGateTTL time.Duration `mapstructure:"phone_gate_ttl"`
	// CreateSessionLockTTL guards against double submitted session creates.
	CreateSessionLockTTL time.Duration `mapstructure:"create_session_lock_ttl"`
	// MutationsPerMinute limits start, resume and phone gate calls per account.
	MutationsPerMinute int           `mapstructure:"mutations_per_minute"`
	MutationBlockTime  time.Duration `mapstructure:"mutation_block_time"`
}

// Routes holds web client locations that are not fixed paths.
type Routes struct {
	CrisisUrl string `mapstructure:"crisis_url"`
}

type AppRabbitMQ struct {
	AnalyticsQueue string `mapstructure:"analytics_queue"`
}

type AppMongoDB struct {
	AuditCollection string `mapstructure:"audit_collection"`
}
