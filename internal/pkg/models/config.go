package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OSRM     OSRMConfig
	Tracking TrackingConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Metrics  MetricsConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration.
// An empty Secret leaves the admin channel unauthenticated.
type JWTConfig struct {
	Secret string
	Issuer string
}

// OSRMConfig contains the routing engine endpoint configuration
type OSRMConfig struct {
	BaseURL   string
	Profile   string
	TimeoutMs int
}

// TrackingConfig contains live location channel configuration
type TrackingConfig struct {
	ProximityThresholdM float64 `json:"proximity_threshold_m"` // metres, same unit as the OSRM distance annotation
	EvaluationTimeoutMs int     `json:"evaluation_timeout_ms"`
	SendQueueSize       int     `json:"send_queue_size"`
	MaxInflight         int     `json:"max_inflight"`
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// MetricsConfig contains prometheus exposition configuration
type MetricsConfig struct {
	Enabled bool
	Path    string
}
