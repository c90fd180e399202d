package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("RISK_BEST_UPLOAD_POLICY", "latest_upload")
	t.Setenv("DASHBOARD_CONCURRENCY", "3")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "latest_upload", cfg.Risk.BestUploadPolicy)
	assert.Equal(t, 3, cfg.Risk.DashboardConcurrency)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("RISK_BEST_UPLOAD_POLICY", "")
	t.Setenv("DASHBOARD_CONCURRENCY", "")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("DB_CONNECT_ATTEMPTS", "")

	cfg := Load()

	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "farthest_expiry", cfg.Risk.BestUploadPolicy)
	assert.Equal(t, 8, cfg.Risk.DashboardConcurrency)
	assert.Equal(t, 5, cfg.Database.ConnectAttempts)
	assert.False(t, cfg.StorageEnabled())
}

func TestAppConfig_Location(t *testing.T) {
	cfg := &AppConfig{Timezone: "UTC"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestAppConfig_Validate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Timezone: "UTC",
			Database: DatabaseConfig{Host: "db", User: "app", Name: "docrisk"},
			Risk:     RiskConfig{DashboardConcurrency: 4},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.Host = ""
	cfg.Database.Name = ""
	cfg.Risk.DashboardConcurrency = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "DB_HOST is required")
	assert.ErrorContains(t, err, "DB_NAME is required")
	assert.ErrorContains(t, err, "DASHBOARD_CONCURRENCY must be at least 1, got 0")

	cfg = valid()
	cfg.MinIO.Endpoint = "minio:9000"
	assert.ErrorContains(t, cfg.Validate(), "MINIO_BUCKET is required")

	cfg = valid()
	cfg.Timezone = "Mars/Olympus"
	assert.ErrorContains(t, cfg.Validate(), "invalid APP_TIMEZONE")
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}
