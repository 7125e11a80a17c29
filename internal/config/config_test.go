package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("APPLICATION_ID", "app")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 15*time.Second, cfg.GuestPollInterval)
	assert.Equal(t, 12, cfg.MaxParticipants)
	assert.Empty(t, cfg.GuildID)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("GUILD_ID", "guild-1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GUEST_POLL_INTERVAL", "5s")
	t.Setenv("MAX_PARTICIPANTS", "8")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "guild-1", cfg.GuildID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.GuestPollInterval)
	assert.Equal(t, 8, cfg.MaxParticipants)
}

func TestLoadDotEnvFile(t *testing.T) {
	t.Setenv("APPLICATION_ID", "app")
	// godotenv does not override variables that are already set
	t.Setenv("LOG_LEVEL", "warn")

	// Setenv restores the original value once the test ends
	t.Setenv("DISCORD_TOKEN", "")
	require.NoError(t, os.Unsetenv("DISCORD_TOKEN"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DISCORD_TOKEN=from-file\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.DiscordToken)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadValidates(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad log level", key: "LOG_LEVEL", val: "chatty"},
		{name: "too many participants", key: "MAX_PARTICIPANTS", val: "500"},
		{name: "poll too fast", key: "GUEST_POLL_INTERVAL", val: "10ms"},
		{name: "bad redis addr", key: "REDIS_ADDR", val: "no-port"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("APPLICATION_ID", "app")
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
