package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment at startup.
//
// Fields:
// - Env: the current environment (local, development, production).
// - Port: the HTTP listen port.
// - DatasetPath: path to the GeoJSON boundary dataset, loaded once.
// - LogLevel: logrus level name (debug, info, warn, error).
// - CORSOrigins: comma-separated allowed origins; empty allows all.
type Config struct {
	Env         string
	Port        int
	DatasetPath string
	LogLevel    string
	CORSOrigins string
}

// MustLoad reads configuration from the environment (a .env file is
// honored when present) and panics on malformed values. The dataset path
// has a default for local runs; production deployments always set it.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("BOUNDARIES_PORT", "8080"))
	if err != nil {
		panic("failed to parse server port from configuration")
	}

	return &Config{
		Env:         setDefaultEnv("BOUNDARIES_ENV", "production"),
		Port:        port,
		DatasetPath: setDefaultEnv("BOUNDARIES_DATASET_PATH", "./data/boundaries.geojson"),
		LogLevel:    setDefaultEnv("BOUNDARIES_LOG_LEVEL", "info"),
		CORSOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
