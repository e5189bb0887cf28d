package config

import (
	"os"
	"strconv"
	"time"

	"github.com/wxpress/salesboard/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database database.PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMS      SMSConfig
	Reports  ReportsConfig
	Refresh  RefreshConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// RedisConfig wraps the connection settings with an enable switch; the
// cooldown guard is optional.
type RedisConfig struct {
	Enabled bool
	database.RedisConfig
}

// JWTConfig holds staff session token configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// SMSConfig holds the assignment SMS function endpoint configuration
type SMSConfig struct {
	FunctionURL string
	Token       string
	Cooldown    time.Duration
}

// ReportsConfig holds report archive configuration
type ReportsConfig struct {
	UseS3        bool
	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3BucketName string
	S3UseSSL     bool
	LocalPath    string
}

// RefreshConfig holds the board refresh cadence
type RefreshConfig struct {
	Interval time.Duration
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "salesboard"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled: getEnv("REDIS_ENABLED", "false") == "true",
			RedisConfig: database.RedisConfig{
				Host:     getEnv("REDIS_HOST", "localhost"),
				Port:     getEnv("REDIS_PORT", "6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvInt("REDIS_DB", 0),
			},
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "default-dev-secret"),
			Expiry: parseDuration(getEnv("JWT_EXPIRATION", "24h"), 24*time.Hour),
		},
		SMS: SMSConfig{
			FunctionURL: getEnv("SMS_FUNCTION_URL", ""),
			Token:       getEnv("SMS_FUNCTION_TOKEN", ""),
			Cooldown:    parseDuration(getEnv("SMS_COOLDOWN", "5m"), 5*time.Minute),
		},
		Reports: ReportsConfig{
			UseS3:        getEnv("REPORTS_USE_S3", "false") == "true",
			S3Region:     getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:   getEnv("S3_ENDPOINT", ""),
			S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
			S3BucketName: getEnv("S3_BUCKET", ""),
			S3UseSSL:     getEnv("S3_USE_SSL", "true") == "true",
			LocalPath:    getEnv("REPORTS_LOCAL_PATH", "./reports"),
		},
		Refresh: RefreshConfig{
			Interval: parseDuration(getEnv("REFRESH_INTERVAL", "30s"), 30*time.Second),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
