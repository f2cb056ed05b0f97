package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, `
log-level: debug
log-file: /tmp/tetris-test.log
tick-interval: 250ms
seed: 42
redis:
  enabled: true
  host: redis
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: all values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/tetris-test.log", conf.LogFile)
		assert.Equal(t, 250*time.Millisecond, conf.TickInterval)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Fills defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: warn\n")

		// When: loading it
		conf, err := Load(path)

		// Then: missing values fall back to their defaults
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "tetris.log", conf.LogFile)
		assert.Equal(t, 500*time.Millisecond, conf.TickInterval)
		assert.Equal(t, uint64(0), conf.Seed)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "tick-interval: 250ms\n")
		t.Setenv("TETRIS_TICK_INTERVAL", "1s")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, time.Second, conf.TickInterval)
	})

	t.Run("Rejects non-positive tick interval", func(t *testing.T) {
		for _, interval := range []string{"0s", "-1s"} {
			// Given: a config file with a tick interval that cannot drive a ticker
			path := writeConfig(t, "tick-interval: "+interval+"\n")

			// When: loading it
			conf, err := Load(path)

			// Then: ErrInvalidTickInterval is returned
			require.ErrorIs(t, err, ErrInvalidTickInterval, interval)
			assert.Nil(t, conf)
		}
	})

	t.Run("Rejects non-positive tick interval from the environment", func(t *testing.T) {
		// Given: a valid file and a zero override
		path := writeConfig(t, "tick-interval: 250ms\n")
		t.Setenv("TETRIS_TICK_INTERVAL", "0s")

		// When: loading it
		_, err := Load(path)

		// Then: ErrInvalidTickInterval is returned
		require.ErrorIs(t, err, ErrInvalidTickInterval)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: loading a file that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	// Given: a redis section without a host
	redis := Redis{Port: "6379"}

	// Then: no address is produced
	assert.Empty(t, redis.GetRedisAddr())
}
