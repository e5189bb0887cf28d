package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wxpress/salesboard/internal/shared/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "salesboard", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 5*time.Minute, cfg.SMS.Cooldown)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval)
	assert.False(t, cfg.Reports.UseS3)
	assert.Equal(t, "./reports", cfg.Reports.LocalPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("SMS_COOLDOWN", "90s")
	t.Setenv("REFRESH_INTERVAL", "10s")
	t.Setenv("REPORTS_USE_S3", "true")
	t.Setenv("S3_BUCKET", "board-reports")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 90*time.Second, cfg.SMS.Cooldown)
	assert.Equal(t, 10*time.Second, cfg.Refresh.Interval)
	assert.True(t, cfg.Reports.UseS3)
	assert.Equal(t, "board-reports", cfg.Reports.S3BucketName)
}

func TestLoad_BadDurationsFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "pas-une-durée")
	t.Setenv("REFRESH_INTERVAL", "-")
	t.Setenv("REDIS_DB", "trois")

	cfg := config.Load()

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, 0, cfg.Redis.DB)
}
