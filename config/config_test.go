package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/casino/store"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvDataDir, EnvRedisURL, EnvDecks, EnvLogLevel, EnvSeed} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, DefaultDecks, cfg.Decks)
	assert.Equal(t, pterm.LogLevelInfo, cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDataDir, "/tmp/casino")
	t.Setenv(EnvDecks, "6")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvSeed, "42")

	cfg, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/casino", cfg.DataDir)
	assert.Equal(t, 6, cfg.Decks)
	assert.Equal(t, pterm.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvDecks))
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CASINO_DECKS=4\nCASINO_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(EnvDecks)
		os.Unsetenv(EnvLogLevel)
	})

	cfg, err := Load(WithEnvFile(path))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Decks)
	assert.Equal(t, pterm.LogLevelWarn, cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvDecks, "zero"},
		{EnvDecks, "0"},
		{EnvLogLevel, "loud"},
		{EnvSeed, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
			require.Error(t, err)
		})
	}
}

func TestOpenStore(t *testing.T) {
	cfg := Config{DataDir: t.TempDir()}
	s, err := cfg.OpenStore()
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, s)
	require.NoError(t, s.Close())

	cfg.RedisURL = "redis://localhost:6379/1"
	s, err = cfg.OpenStore()
	require.NoError(t, err)
	assert.IsType(t, &store.RedisStore{}, s)
	require.NoError(t, s.Close())
}

func TestSourceSelection(t *testing.T) {
	a := Config{Seed: 9}.Source()
	b := Config{Seed: 9}.Source()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.NotNil(t, Config{}.Source())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: pterm.LogLevelInfo}.Logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", "key", "value")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}
