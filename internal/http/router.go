package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seerai/boundaries-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(resolver *usecase.Resolver, reg *prometheus.Registry, corsOrigins string) *gin.Engine {
	router := gin.Default()

	// Setup CORS middleware. Empty origin list allows all origins.
	corsConfig := cors.DefaultConfig()
	if corsOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(corsOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	handler := NewHandler(resolver)

	// API v1 routes.
	v1 := router.Group("/v1")
	v1.GET("/resolve", handler.Resolve)
	v1.GET("/boundaries", handler.ListBoundaries)

	// Health check and metrics.
	router.GET("/health", handler.HealthCheck)
	if reg != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	return router
}
