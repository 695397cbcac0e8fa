package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "https://www.ecb.europa.eu/stats/eurofxref", cfg.Feed.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, time.Hour, cfg.Feed.RefreshRate)
	assert.Equal(t, 90*24*time.Hour, cfg.Feed.RecentWindow)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FEED_TIMEOUT", "3s")
	t.Setenv("FEED_REFRESH_RATE", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Feed.RefreshRate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// registered so the value godotenv sets is removed after the test
	t.Setenv("FEED_BASE_URL", "")
	os.Unsetenv("FEED_BASE_URL")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("FEED_BASE_URL=http://mirror.local/eurofxref\n"), 0600))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.local/eurofxref", cfg.Feed.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "SERVER_PORT", value: "70000"},
		{name: "non-numeric port", key: "SERVER_PORT", value: "http"},
		{name: "zero feed timeout", key: "FEED_TIMEOUT", value: "0s"},
		{name: "negative refresh", key: "FEED_REFRESH_RATE", value: "-1m"},
		{name: "bad duration", key: "FEED_RECENT_WINDOW", value: "ninety days"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
