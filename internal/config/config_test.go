package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.App.Addr)
	assert.Equal(t, "smart_meet.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpen)
	assert.Equal(t, 5000, cfg.Database.BusyTimeoutMS)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 90, cfg.Cleanup.DaysToKeep)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SMARTMEET_APP_ADDR", ":9090")
	t.Setenv("SMARTMEET_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.App.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}
