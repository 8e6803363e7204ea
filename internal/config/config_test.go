package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seerai/boundaries-api/internal/config"
)

func TestMustLoad(t *testing.T) {
	t.Setenv("BOUNDARIES_ENV", "local")
	t.Setenv("BOUNDARIES_PORT", "9090")
	t.Setenv("BOUNDARIES_DATASET_PATH", "/data/test.geojson")
	t.Setenv("BOUNDARIES_LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/data/test.geojson", cfg.DatasetPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://example.com", cfg.CORSOrigins)
}

func TestMustLoad_Defaults(t *testing.T) {
	// t.Setenv registers restoration; the unset makes the variable truly
	// absent for the duration of the test so defaults apply.
	for _, key := range []string{
		"BOUNDARIES_ENV", "BOUNDARIES_PORT", "BOUNDARIES_DATASET_PATH",
		"BOUNDARIES_LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/boundaries.geojson", cfg.DatasetPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("BOUNDARIES_PORT", "not-a-port")

	assert.PanicsWithValue(t, "failed to parse server port from configuration", func() {
		config.MustLoad()
	})
}
