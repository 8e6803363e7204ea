package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seerai/boundaries-api/internal/usecase"
)

// Handler maps HTTP requests onto the resolver. The core returns outcomes
// as values; this layer owns the translation to status codes, so the
// resolver knows nothing about transport.
type Handler struct {
	resolver *usecase.Resolver
}

// NewHandler creates a new HTTP handler over the given resolver.
func NewHandler(resolver *usecase.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Resolve handles GET /v1/resolve?lon=<deg>&lat=<deg>.
//
// Status mapping: Found -> 200, NotFound -> 404 (an expected outcome, not
// a server error), invalid coordinate -> 400.
func (h *Handler) Resolve(c *gin.Context) {
	lonStr := c.Query("lon")
	latStr := c.Query("lat")

	if lonStr == "" || latStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon and lat parameters are required"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
		return
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
		return
	}

	result, err := h.resolver.Resolve(lon, lat)
	if err != nil {
		// The only per-request error the core raises is an invalid
		// coordinate, which is the caller's fault.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !result.Found {
		c.JSON(http.StatusNotFound, gin.H{
			"found": false,
			"lon":   lon,
			"lat":   lat,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":      true,
		"id":         result.ID,
		"attributes": result.Attributes,
		"lon":        lon,
		"lat":        lat,
	})
}

// ListBoundaries handles GET /v1/boundaries.
func (h *Handler) ListBoundaries(c *gin.Context) {
	ids := h.resolver.BoundaryIDs()
	c.JSON(http.StatusOK, gin.H{
		"boundaries": ids,
		"count":      len(ids),
	})
}

// HealthCheck handles GET /health. The dataset is loaded before the
// router exists, so a serving process is by construction healthy.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"polygons": h.resolver.PolygonCount(),
	})
}
