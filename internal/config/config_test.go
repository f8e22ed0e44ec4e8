package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "PUNKTY", cfg.Policy.PointsMethodID)
		assert.Equal(t, 10, cfg.Policy.MinPointsPercent)
		assert.Equal(t, 10, cfg.Policy.PartialDiscountPercent)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "allocator", cfg.Metrics.Namespace)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("ALLOCATOR_POLICY__POINTS_METHOD_ID", "BONUS")
		t.Setenv("ALLOCATOR_POLICY__MIN_POINTS_PERCENT", "20")
		t.Setenv("ALLOCATOR_SERVER__REQUEST_TIMEOUT", "250ms")
		t.Setenv("ALLOCATOR_LOGGER__LEVEL", "debug")

		cfg, err := config.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "BONUS", cfg.Policy.PointsMethodID)
		assert.Equal(t, 20, cfg.Policy.MinPointsPercent)
		assert.Equal(t, 250*time.Millisecond, cfg.Server.RequestTimeout)
		assert.Equal(t, slog.LevelDebug, cfg.Logger.SlogLevel())
	})

	t.Run("reads a yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "allocator.yaml")
		content := "policy:\n  partial_discount_percent: 5\nmetrics:\n  enabled: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Policy.PartialDiscountPercent)
		assert.False(t, cfg.Metrics.Enabled)
		assert.Equal(t, "PUNKTY", cfg.Policy.PointsMethodID)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "allocator.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0o600))
		t.Setenv("ALLOCATOR_SERVER__PORT", "9100")

		cfg, err := config.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "9100", cfg.Server.Port)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects out of range percentages", func(t *testing.T) {
		t.Setenv("ALLOCATOR_POLICY__MIN_POINTS_PERCENT", "150")

		_, err := config.LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		t.Setenv("ALLOCATOR_LOGGER__FORMAT", "xml")

		_, err := config.LoadConfig("")
		assert.Error(t, err)
	})
}

func TestLoggerConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, config.LoggerConfig{Level: level}.SlogLevel(), level)
	}
}

func TestLoadConfig_KnownMethods(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allocator.yaml")
	content := "metrics:\n  known_methods:\n    - mZysk\n    - BosBankrut\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"mZysk", "BosBankrut"}, cfg.Metrics.KnownMethods)
}
