package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"legalzen-backend/storage"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "GIN_MODE", "MAX_UPLOAD_BYTES", "KEEP_UPLOADS",
		"SESSION_RETENTION", "SESSION_SWEEP_INTERVAL", "STORAGE_TYPE", "STORAGE_LOCAL_PATH",
		"AWS_S3_BUCKET", "AWS_REGION", "LOG_LEVEL", "LOG_FILE_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, int64(16*1024*1024), cfg.App.MaxUploadBytes)
	assert.False(t, cfg.App.KeepUploads)
	assert.Equal(t, time.Hour, cfg.Session.Retention)
	assert.Equal(t, 10*time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, storage.StorageTypeLocal, cfg.Storage.Type)
	assert.Equal(t, "./uploads", cfg.Storage.LocalPath)
	assert.Equal(t, "us-east-1", cfg.Storage.S3Region)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("KEEP_UPLOADS", "true")
	t.Setenv("SESSION_RETENTION", "30m")
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("AWS_S3_BUCKET", "uploads-bucket")
	t.Setenv("LOG_FILE_PATH", "/tmp/legalzen.log")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, int64(1024), cfg.App.MaxUploadBytes)
	assert.True(t, cfg.App.KeepUploads)
	assert.Equal(t, 30*time.Minute, cfg.Session.Retention)
	assert.Equal(t, storage.StorageTypeS3, cfg.Storage.Type)
	assert.Equal(t, "uploads-bucket", cfg.Storage.S3Bucket)
	assert.Equal(t, "/tmp/legalzen.log", cfg.Log.FilePath)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "-5")
	t.Setenv("KEEP_UPLOADS", "maybe")
	t.Setenv("SESSION_RETENTION", "soon")
	t.Setenv("SESSION_SWEEP_INTERVAL", "0s")

	cfg := FromEnv()

	assert.Equal(t, int64(16*1024*1024), cfg.App.MaxUploadBytes)
	assert.False(t, cfg.App.KeepUploads)
	assert.Equal(t, time.Hour, cfg.Session.Retention)
	assert.Equal(t, 10*time.Minute, cfg.Session.SweepInterval)
}
