package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"knowledge-base/internal/domain"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Storage configuration
	StoreDriver    string
	MigrationsDir  string
	MigrateOnStart bool

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Search index configuration. An empty RedisAddr disables indexing.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Attachment configuration
	AttachmentsDir           string
	AttachmentsSweepSchedule string
	AttachmentsKeepTemp      int

	// Event bus configuration
	WorkerPoolSize  int
	EventBufferSize int

	// Notification configuration. An empty SMTPHost logs mail instead of sending it.
	NotifyAddedEnabled   bool
	NotifyUpdatedEnabled bool
	MailFromName         string
	MailFromAddress      string
	MailDomain           string
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	SMTPForceSSL         bool

	// Article store configuration
	PositionPolicy domain.PositionPolicy
	PublicIDSalt   string

	// Write rate limiting. Zero disables it.
	RateLimitPerMinute int
	RateLimitBurst     int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:               getEnv("SERVER_PORT", "8080"),
		ReadTimeout:              getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:             getEnvDuration("HTTP_WRITE_TIMEOUT", time.Minute),
		IdleTimeout:              getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		StoreDriver:              strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		MigrationsDir:            getEnv("MIGRATIONS_DIR", "./migrations"),
		MigrateOnStart:           getEnvBool("MIGRATE_ON_START", true),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnvInt("DB_PORT", 5432),
		DBUser:                   getEnv("DB_USER", "postgres"),
		DBPassword:               getEnv("DB_PASSWORD", "postgres"),
		DBName:                   getEnv("DB_NAME", "knowledge_base"),
		DBSSLMode:                getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:               int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:               int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:        getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:        getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:      getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		RedisAddr:                getEnv("REDIS_ADDR", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		AttachmentsDir:           getEnv("ATTACHMENTS_DIR", "./data"),
		AttachmentsSweepSchedule: getEnv("ATTACHMENTS_SWEEP_SCHEDULE", "0 0 3 * * *"),
		AttachmentsKeepTemp:      getEnvInt("ATTACHMENTS_KEEP_TEMP", 50),
		WorkerPoolSize:           getEnvInt("WORKER_POOL_SIZE", 4),
		EventBufferSize:          getEnvInt("EVENT_BUFFER_SIZE", 256),
		NotifyAddedEnabled:       getEnvBool("NOTIFY_ARTICLE_ADDED_ENABLED", true),
		NotifyUpdatedEnabled:     getEnvBool("NOTIFY_ARTICLE_UPDATED_ENABLED", true),
		MailFromName:             getEnv("MAIL_FROM_NAME", "Knowledge Base"),
		MailFromAddress:          getEnv("MAIL_FROM_ADDRESS", "no-reply@localhost"),
		MailDomain:               getEnv("MAIL_DOMAIN", "localhost"),
		SMTPHost:                 getEnv("SMTP_HOST", ""),
		SMTPPort:                 getEnvInt("SMTP_PORT", 587),
		SMTPUsername:             getEnv("SMTP_USERNAME", ""),
		SMTPPassword:             getEnv("SMTP_PASSWORD", ""),
		SMTPForceSSL:             getEnvBool("SMTP_FORCE_SSL", false),
		PositionPolicy:           domain.PositionPolicy(getEnv("ARTICLE_POSITION_POLICY", string(domain.PositionPolicyMetadata))),
		PublicIDSalt:             getEnv("PUBLIC_ID_SALT", "knowledge-base"),
		RateLimitPerMinute:       getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:           getEnvInt("RATE_LIMIT_BURST", 30),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UsePostgres reports whether articles live in Postgres.
func (c *Config) UsePostgres() bool {
	return c.StoreDriver == StoreDriverPostgres
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q", StoreDriverPostgres, StoreDriverMemory)
	}
	if !domain.IsValidPositionPolicy(string(c.PositionPolicy)) {
		return fmt.Errorf("ARTICLE_POSITION_POLICY must be one of: metadata, version")
	}
	if c.AttachmentsDir == "" {
		return fmt.Errorf("ATTACHMENTS_DIR is required")
	}
	if c.AttachmentsKeepTemp < 0 {
		return fmt.Errorf("ATTACHMENTS_KEEP_TEMP must not be negative")
	}
	if c.WorkerPoolSize < 1 {
		return fmt.Errorf("WORKER_POOL_SIZE must be at least 1")
	}
	if c.EventBufferSize < 1 {
		return fmt.Errorf("EVENT_BUFFER_SIZE must be at least 1")
	}
	if c.SMTPHost != "" && (c.SMTPPort < 1 || c.SMTPPort > 65535) {
		return fmt.Errorf("SMTP_PORT must be a valid port")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.PublicIDSalt == "" {
		return fmt.Errorf("PUBLIC_ID_SALT is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
