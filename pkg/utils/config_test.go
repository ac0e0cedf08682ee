package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "logs/", config.App.LogPath)
	assert.False(t, config.Database.Enabled())
	assert.False(t, config.Redis.Enabled())
	assert.Equal(t, time.Hour, config.Session.TTL)
	assert.Equal(t, 1500*time.Millisecond, config.Payment.Delay)
	assert.Equal(t, 10*time.Second, config.Payment.Timeout)
}

func TestLoadConfig_ReadsEnvFileAndEnvironment(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=trek\nREDIS_HOST=cache\nPAYMENT_DELAY_MS=0\nDB_MAX_CONNS=4\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	t.Setenv("PORT", "9090")

	config, err := loadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "trek", config.App.Name)
	assert.Equal(t, "9090", config.App.Port)
	assert.True(t, config.Redis.Enabled())
	assert.Equal(t, "cache:6379", config.Redis.Addr())
	assert.Zero(t, config.Payment.Delay)
	assert.Equal(t, int32(4), config.Database.MaxConns)
}
