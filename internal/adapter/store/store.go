// Package store holds the in-memory polygon collection loaded once at
// startup. The store is the single owner of all geometry for the process
// lifetime; everything downstream borrows ordinals into it.
package store

import "github.com/seerai/boundaries-api/internal/domain"

// Loader is the interface for reading a boundary dataset file into a Store.
type Loader interface {
	// Load parses the dataset at path and returns the loaded store.
	Load(path string) (*Store, error)
}

// Store is an immutable, ordered collection of polygons. Order is load
// order and is the tie-break order for overlapping matches, so it must be
// stable for a fixed dataset.
type Store struct {
	polygons []domain.Polygon
}

// New wraps a loaded polygon slice. The caller hands over ownership; the
// slice is never mutated afterwards.
func New(polygons []domain.Polygon) *Store {
	return &Store{polygons: polygons}
}

// Get returns the polygon at ordinal i. Ordinals come from the spatial
// index, which is built over this same store.
func (s *Store) Get(i int) *domain.Polygon {
	return &s.polygons[i]
}

// Count returns the number of loaded polygons.
func (s *Store) Count() int {
	return len(s.polygons)
}

// Polygons returns the backing collection for index construction.
// Read-only by convention.
func (s *Store) Polygons() []domain.Polygon {
	return s.polygons
}
