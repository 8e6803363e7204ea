// Package usecase orchestrates point resolution: one-time startup
// initialization of the geometry store and spatial index, then pure
// read-only resolution of query points against them.
package usecase

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/seerai/boundaries-api/internal/adapter/store"
	"github.com/seerai/boundaries-api/internal/adapter/store/geojson"
	"github.com/seerai/boundaries-api/internal/domain"
	"github.com/seerai/boundaries-api/internal/index"
	"github.com/seerai/boundaries-api/internal/metrics"
)

// Result is the outcome of a resolve call. NotFound is an expected,
// valid outcome (a point in international waters, say), so it is a value
// here rather than an error.
type Result struct {
	Found      bool
	ID         string
	Attributes map[string]any
}

// Resolver answers "which boundary polygon contains this point". All of
// its state is built once at startup and never mutated, so a single
// Resolver is safe for unlimited concurrent callers with no locking.
type Resolver struct {
	store   *store.Store
	idx     *index.Index
	log     *logrus.Entry
	metrics *metrics.Metrics
}

// Initialize loads the dataset at path and builds the spatial index over
// it. Any error is fatal: the caller must refuse to serve traffic when no
// data could be loaded. Metrics may be nil (operator CLI usage).
func Initialize(path string, log *logrus.Logger, m *metrics.Metrics) (*Resolver, error) {
	var loader store.Loader = geojson.NewLoader(log)
	st, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	idx := index.Build(st)
	if m != nil {
		m.PolygonsLoaded.Set(float64(st.Count()))
	}

	entry := log.WithField("module", "resolver")
	entry.WithField("polygons", st.Count()).Info("resolver initialized")

	return &Resolver{store: st, idx: idx, log: entry, metrics: m}, nil
}

// NewResolver wires a resolver over an already-loaded store, for callers
// that construct their dataset in memory (tests, tooling).
func NewResolver(st *store.Store, log *logrus.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{
		store:   st,
		idx:     index.Build(st),
		log:     log.WithField("module", "resolver"),
		metrics: m,
	}
}

// Resolve maps a coordinate to the boundary polygon containing it.
//
// The only error it returns is a wrapped domain.ErrInvalidCoordinate for
// non-finite or out-of-range input, raised before any index work. A valid
// point that no polygon contains yields Result{Found: false}, nil.
//
// Overlap policy: when several polygons contain the point the first one
// in store (dataset insertion) order wins. Deterministic over clever.
func (r *Resolver) Resolve(lon, lat float64) (Result, error) {
	start := time.Now()

	if err := domain.ValidateCoordinate(lon, lat); err != nil {
		r.observe("invalid", start, 0)
		return Result{}, err
	}

	pt := domain.Point{Lon: lon, Lat: lat}
	candidates := r.idx.Candidates(pt)

	for _, ord := range candidates {
		poly := r.store.Get(ord)
		if poly.Contains(pt) {
			r.observe("found", start, len(candidates))
			return Result{Found: true, ID: poly.ID, Attributes: poly.Attributes}, nil
		}
	}

	r.observe("not_found", start, len(candidates))
	return Result{}, nil
}

// PolygonCount reports the number of polygons backing the resolver.
func (r *Resolver) PolygonCount() int {
	return r.store.Count()
}

// BoundaryIDs lists loaded polygon identifiers in store order, duplicates
// included for multi-part geometries.
func (r *Resolver) BoundaryIDs() []string {
	ids := make([]string, r.store.Count())
	for i := range ids {
		ids[i] = r.store.Get(i).ID
	}
	return ids
}

// Coverage returns the cached bounding box of every loaded polygon in
// store order, for operator tooling.
func (r *Resolver) Coverage() []domain.BoundingBox {
	boxes := make([]domain.BoundingBox, r.store.Count())
	for i := range boxes {
		boxes[i] = r.store.Get(i).Bounds
	}
	return boxes
}

func (r *Resolver) observe(outcome string, start time.Time, candidates int) {
	if r.metrics == nil {
		return
	}
	r.metrics.ResolveTotal.WithLabelValues(outcome).Inc()
	r.metrics.ResolveSeconds.Observe(time.Since(start).Seconds())
	r.metrics.IndexCandidates.Observe(float64(candidates))
}
