package usecase_test

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerai/boundaries-api/internal/adapter/store"
	"github.com/seerai/boundaries-api/internal/domain"
	"github.com/seerai/boundaries-api/internal/usecase"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func squarePolygon(id string, x, y, size float64, attrs map[string]any) domain.Polygon {
	p := domain.Polygon{
		ID:         id,
		Attributes: attrs,
		Outer: domain.Ring{
			{Lon: x, Lat: y},
			{Lon: x, Lat: y + size},
			{Lon: x + size, Lat: y + size},
			{Lon: x + size, Lat: y},
			{Lon: x, Lat: y},
		},
	}
	p.ComputeBounds()
	return p
}

func TestResolve_SingleSquare(t *testing.T) {
	st := store.New([]domain.Polygon{
		squarePolygon("A", 0, 0, 10, map[string]any{"name": "A"}),
	})
	r := usecase.NewResolver(st, testLogger(), nil)

	res, err := r.Resolve(5, 5)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "A", res.ID)
	assert.Equal(t, "A", res.Attributes["name"])

	res, err = r.Resolve(15, 15)
	require.NoError(t, err)
	assert.False(t, res.Found)

	_, err = r.Resolve(200, 0)
	require.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestResolve_BoundaryPointIsInside(t *testing.T) {
	st := store.New([]domain.Polygon{
		squarePolygon("A", 0, 0, 10, nil),
	})
	r := usecase.NewResolver(st, testLogger(), nil)

	for _, pt := range [][2]float64{{0, 5}, {10, 5}, {5, 0}, {5, 10}, {0, 0}, {10, 10}} {
		res, err := r.Resolve(pt[0], pt[1])
		require.NoError(t, err)
		assert.Truef(t, res.Found, "point (%v, %v) on boundary should resolve as inside", pt[0], pt[1])
	}
}

// Two overlapping polygons both containing the probe point: the first in
// store order wins, on every call.
func TestResolve_OverlapReturnsFirstInStoreOrder(t *testing.T) {
	st := store.New([]domain.Polygon{
		squarePolygon("first", 0, 0, 10, nil),
		squarePolygon("second", 5, 5, 10, nil),
	})
	r := usecase.NewResolver(st, testLogger(), nil)

	for i := 0; i < 200; i++ {
		res, err := r.Resolve(7, 7)
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, "first", res.ID, "overlap winner changed on iteration %d", i)
	}
}

// A point inside a bounding box but outside the polygon itself must fall
// through the exact test to NotFound.
func TestResolve_BBoxHitButPolygonMiss(t *testing.T) {
	tri := domain.Polygon{
		ID: "tri",
		Outer: domain.Ring{
			{Lon: 0, Lat: 0},
			{Lon: 10, Lat: 0},
			{Lon: 5, Lat: 10},
			{Lon: 0, Lat: 0},
		},
	}
	tri.ComputeBounds()
	r := usecase.NewResolver(store.New([]domain.Polygon{tri}), testLogger(), nil)

	res, err := r.Resolve(0.5, 9)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestResolve_HoleExcluded(t *testing.T) {
	donut := squarePolygon("donut", 0, 0, 10, nil)
	donut.Holes = []domain.Ring{
		{
			{Lon: 4, Lat: 4},
			{Lon: 4, Lat: 6},
			{Lon: 6, Lat: 6},
			{Lon: 6, Lat: 4},
			{Lon: 4, Lat: 4},
		},
	}
	donut.ComputeBounds()
	r := usecase.NewResolver(store.New([]domain.Polygon{donut}), testLogger(), nil)

	res, err := r.Resolve(5, 5)
	require.NoError(t, err)
	assert.False(t, res.Found, "point inside a hole is outside the polygon")

	res, err = r.Resolve(1, 1)
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestInitialize_FromDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boundaries.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "type": "FeatureCollection",
	  "features": [
	    {
	      "type": "Feature",
	      "properties": {"name": "A", "region_code": "a-01"},
	      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,10],[10,10],[10,0],[0,0]]]}
	    }
	  ]
	}`), 0o644))

	r, err := usecase.Initialize(path, testLogger(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.PolygonCount())
	assert.Equal(t, []string{"A"}, r.BoundaryIDs())

	res, err := r.Resolve(5, 5)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "a-01", res.Attributes["region_code"])
}

func TestInitialize_EmptyDatasetIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "FeatureCollection", "features": []}`), 0o644))

	_, err := usecase.Initialize(path, testLogger(), nil)
	require.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestInitialize_MissingFileIsFatal(t *testing.T) {
	_, err := usecase.Initialize(filepath.Join(t.TempDir(), "absent.geojson"), testLogger(), nil)
	require.ErrorIs(t, err, domain.ErrDatasetIO)
}

// Resolution is a pure function of immutable state; hammer it from many
// goroutines and require identical answers throughout.
func TestResolve_ConcurrentReaders(t *testing.T) {
	st := store.New([]domain.Polygon{
		squarePolygon("A", 0, 0, 10, nil),
		squarePolygon("B", 20, 20, 10, nil),
	})
	r := usecase.NewResolver(st, testLogger(), nil)

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				res, err := r.Resolve(5, 5)
				if err != nil || !res.Found || res.ID != "A" {
					t.Errorf("concurrent resolve diverged: %+v, %v", res, err)
					return
				}
				res, err = r.Resolve(25, 25)
				if err != nil || !res.Found || res.ID != "B" {
					t.Errorf("concurrent resolve diverged: %+v, %v", res, err)
					return
				}
				res, err = r.Resolve(-50, -50)
				if err != nil || res.Found {
					t.Errorf("concurrent resolve diverged: %+v, %v", res, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
