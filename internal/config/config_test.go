package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file overriding some values
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
redis:
  host: redis
  port: "6380"
  decision-ttl: 1h
search:
  win-score: 500
`)

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values win and the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.DecisionTTL)
		assert.Equal(t, 500, conf.Search.WinScore)
		assert.Equal(t, 10, conf.Search.PlyWeight)
		assert.Equal(t, 10*time.Second, conf.HTTPTimeouts.Read)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: loading the config
		conf, err := Load(path)

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Error on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
