package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/apperr"
)

func TestLoad(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg, err := Load([]string{"app1", "mongodb://localhost:27017/"})
	require.NoError(t, err)
	assert.Equal(t, Inventory, cfg.Service)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.DatabaseURL)
	assert.Equal(t, "127.0.0.1:8181", cfg.Addr())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, float64(50), cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)

	cfg, err = Load([]string{"reviews", "mongodb+srv://user:pw@cluster0.example.net"})
	require.NoError(t, err)
	assert.Equal(t, Reviews, cfg.Service)
	assert.Equal(t, "127.0.0.1:8282", cfg.Addr())
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"missing url", []string{"inventory"}},
		{"not a mongodb url", []string{"inventory", "postgres://localhost"}},
		{"unknown service", []string{"app3", "mongodb://localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			var ce *apperr.ConfigurationError
			assert.True(t, errors.As(err, &ce), "got %v", err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load([]string{"inventory", "mongodb://localhost"})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env.local")
	require.NoError(t, os.WriteFile(p, []byte("LOG_FORMAT=from_file\n"), 0644))

	t.Setenv("LOG_FORMAT", "from_env")

	cwd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("LOG_FORMAT"))
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "mongodb://***@db:27017", RedactURL("mongodb://user:secret@db:27017"))
	assert.Equal(t, "mongodb://db:27017", RedactURL("mongodb://db:27017"))
	assert.Equal(t, "plain", RedactURL("plain"))
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "/v1/books", ResourcePath())
}
