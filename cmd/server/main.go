// Package main provides the boundaries API HTTP server.
package main

import (
	"flag"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/seerai/boundaries-api/internal/config"
	apihttp "github.com/seerai/boundaries-api/internal/http"
	"github.com/seerai/boundaries-api/internal/metrics"
	"github.com/seerai/boundaries-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("boundaries-api version %s\n", version)
		return
	}

	cfg := config.MustLoad()
	log := setupLogger(cfg)

	log.WithFields(logrus.Fields{
		"env":     cfg.Env,
		"port":    cfg.Port,
		"dataset": cfg.DatasetPath,
	}).Info("starting boundaries API server")

	// Metrics registry with process and Go runtime collectors.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Load the dataset and build the spatial index. This is the one
	// blocking startup step; any failure here means the process must not
	// begin serving requests.
	resolver, err := usecase.Initialize(cfg.DatasetPath, log, appMetrics)
	if err != nil {
		log.WithError(err).Fatal("failed to load boundary dataset, refusing to serve")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := apihttp.SetupRouter(resolver, reg, cfg.CORSOrigins)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.WithField("addr", addr).Info("server listening")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}

// setupLogger configures logrus from the environment: human-readable text
// locally, JSON everywhere else.
func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Env != "local" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Boundaries API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  boundaries-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  BOUNDARIES_ENV           Environment: local, development, production (default: production)")
	fmt.Println("  BOUNDARIES_PORT          Server port (default: 8080)")
	fmt.Println("  BOUNDARIES_DATASET_PATH  GeoJSON boundary dataset (default: ./data/boundaries.geojson)")
	fmt.Println("  BOUNDARIES_LOG_LEVEL     Log level: debug, info, warn, error (default: info)")
	fmt.Println("  CORS_ALLOWED_ORIGINS     Comma-separated allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                  Health check")
	fmt.Println("  GET /metrics                 Prometheus metrics")
	fmt.Println("  GET /v1/resolve?lon=&lat=    Resolve a point to its containing boundary")
	fmt.Println("  GET /v1/boundaries           List loaded boundary identifiers")
	fmt.Println()
}
