package cmd

import (
	"io"
	"log/slog"
	"testing"

	"deliverysystem/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, NotifierConsole, cfg.Notifier)
	assert.Equal(t, FormatText, cfg.NotifyFormat)
	assert.True(t, cfg.JobsEnabled)
	assert.Equal(t, config.DefaultSettings().DefaultCurrency, cfg.Settings.DefaultCurrency)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadConfig_EnvironmentAndFlags(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("NOTIFY_FORMAT", "html")
	t.Setenv("MAX_DELIVERY_DISTANCE_KM", "42.5")
	t.Setenv("DEFAULT_CURRENCY", "EUR")
	t.Setenv("MAX_ORDER_ITEMS", "7")
	t.Setenv("SYSTEM_NAME", "Test System")
	t.Setenv("AUTO_ASSIGN_DISTANCE_KM", "3")
	t.Setenv("JOBS_ENABLED", "false")

	cfg, err := LoadConfig([]string{"--port", "7070", "--log-format", "json"})

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, FormatHTML, cfg.NotifyFormat)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.True(t, decimal.RequireFromString("42.5").Equal(cfg.Settings.MaxDeliveryDistanceKm))
	assert.Equal(t, "EUR", cfg.Settings.DefaultCurrency)
	assert.Equal(t, 7, cfg.Settings.MaxOrderItems)
	assert.Equal(t, "Test System", cfg.Settings.SystemName)
	assert.True(t, decimal.NewFromInt(3).Equal(cfg.AutoAssignDistanceKm))
	assert.False(t, cfg.JobsEnabled)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		args []string
	}{
		{name: "port is not a number", key: "HTTP_PORT", val: "http"},
		{name: "port out of range", args: []string{"--port", "70000"}},
		{name: "unknown storage", key: "STORAGE", val: "redis"},
		{name: "unknown notifier", key: "NOTIFIER", val: "sms"},
		{name: "unknown format", key: "NOTIFY_FORMAT", val: "markdown"},
		{name: "unknown log level", key: "LOG_LEVEL", val: "trace"},
		{name: "bad distance", key: "MAX_DELIVERY_DISTANCE_KM", val: "far"},
		{name: "negative distance", key: "MAX_DELIVERY_DISTANCE_KM", val: "-1"},
		{name: "zero auto assign distance", key: "AUTO_ASSIGN_DISTANCE_KM", val: "0"},
		{name: "zero max order items", key: "MAX_ORDER_ITEMS", val: "0"},
		{name: "bad bool", key: "JOBS_ENABLED", val: "sometimes"},
		{name: "unknown flag", args: []string{"--colour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key != "" {
				t.Setenv(tt.key, tt.val)
			}

			_, err := LoadConfig(tt.args)

			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogLevel = "WARN"

	logger, err := NewLogger(cfg, io.Discard)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))

	cfg.LogLevel = "verbose"
	_, err = NewLogger(cfg, io.Discard)
	assert.Error(t, err)
}
