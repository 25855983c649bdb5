package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: recyclemart
http:
  port: 8080
storage:
  driver: memory
  quotaBytes: 5MB
  degradeOnError: true
quotes:
  maxImages: 3
  pointsPerCurrencyUnit: 0.5
dashboard:
  activeWindow: 48h
`

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "5MB", cfg.Storage.QuotaBytes)
	assert.Equal(t, 3, cfg.Quotes.MaxImages)
	assert.InDelta(t, 0.5, cfg.Quotes.PointsPerCurrencyUnit, 1e-9)
	assert.Equal(t, 48*time.Hour, cfg.Dashboard.ActiveWindow)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.True(t, cfg.Storage.DegradeOnError)
	assert.Equal(t, defaultPageSize, cfg.Inventory.PageSize)
	assert.Equal(t, defaultMaxImages, cfg.Quotes.MaxImages)
	assert.Equal(t, defaultRecentLimit, cfg.Quotes.RecentLimit)
	assert.Equal(t, defaultActiveWindow, cfg.Dashboard.ActiveWindow)
	assert.Equal(t, 8, cfg.PasswordStrength.MinLength)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Seed)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage:   &StorageConfig{Driver: "postgres"},
		Inventory: &InventoryConfig{PageSize: 12},
	}
	applyDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.False(t, cfg.Storage.DegradeOnError)
	assert.Equal(t, 12, cfg.Inventory.PageSize)
}

func TestApplyDefaults_PartialQuotesSection(t *testing.T) {
	cfg := &Config{Quotes: &QuotesConfig{MaxImages: 3}}
	applyDefaults(cfg)

	assert.Equal(t, 3, cfg.Quotes.MaxImages)
	assert.Equal(t, defaultRecentLimit, cfg.Quotes.RecentLimit)
	assert.Equal(t, defaultPointsPerUnit, cfg.Quotes.PointsPerCurrencyUnit)

	cfg = &Config{Quotes: &QuotesConfig{PointsPerCurrencyUnit: 2.5}}
	applyDefaults(cfg)

	assert.Equal(t, 2.5, cfg.Quotes.PointsPerCurrencyUnit)
}
