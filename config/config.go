package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"legalzen-backend/logging"
	"legalzen-backend/storage"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Storage storage.StorageConfig
	Log     logging.Config
}

type AppConfig struct {
	Port           string
	Environment    string
	GinMode        string
	MaxUploadBytes int64
	KeepUploads    bool
}

type SessionConfig struct {
	Retention     time.Duration
	SweepInterval time.Duration
}

const (
	defaultMaxUploadBytes = 16 * 1024 * 1024
	defaultRetention      = time.Hour
	defaultSweepInterval  = 10 * time.Minute
)

// Load reads configuration from the environment, after loading a .env file
// from the working directory or the project root if one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Println("Note: .env file not found, using system environment")
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() *Config {
	env := getEnv("APP_ENV", "development")

	return &Config{
		App: AppConfig{
			Port:           getEnv("PORT", "8080"),
			Environment:    env,
			GinMode:        getEnv("GIN_MODE", ""),
			MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
			KeepUploads:    getEnvAsBool("KEEP_UPLOADS", false),
		},
		Session: SessionConfig{
			Retention:     getEnvAsDuration("SESSION_RETENTION", defaultRetention),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", defaultSweepInterval),
		},
		Storage: storage.StorageConfig{
			Type:         storage.StorageType(getEnv("STORAGE_TYPE", string(storage.StorageTypeLocal))),
			LocalPath:    getEnv("STORAGE_LOCAL_PATH", "./uploads"),
			S3Bucket:     getEnv("AWS_S3_BUCKET", ""),
			S3Region:     getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Log: logging.Config{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: env == "development",
			FilePath:    getEnv("LOG_FILE_PATH", ""),
		},
	}
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}
