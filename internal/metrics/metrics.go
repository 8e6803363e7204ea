package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors for the resolver's request-path behaviour.
type Metrics struct {
	ResolveTotal    *prometheus.CounterVec
	ResolveSeconds  prometheus.Histogram
	PolygonsLoaded  prometheus.Gauge
	IndexCandidates prometheus.Histogram
}

// NewMetrics registers the resolver collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ResolveTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "boundaries_resolve_total",
			Help: "Total number of resolve calls by outcome.",
		}, []string{"outcome"}),
		ResolveSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "boundaries_resolve_duration_seconds",
			Help:    "Duration of point resolution, index probe plus exact tests.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		PolygonsLoaded: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "boundaries_polygons_loaded",
			Help: "Number of polygons loaded from the dataset at startup.",
		}),
		IndexCandidates: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "boundaries_index_candidates",
			Help:    "Candidate count returned by the spatial index per resolve.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}),
	}
}
