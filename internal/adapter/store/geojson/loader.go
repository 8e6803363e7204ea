// Package geojson loads a boundary dataset from a GeoJSON
// FeatureCollection file: one feature per boundary, a Polygon or
// MultiPolygon geometry, and a flat properties map carried through as
// opaque attributes.
package geojson

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/seerai/boundaries-api/internal/adapter/store"
	"github.com/seerai/boundaries-api/internal/domain"
)

// Loader reads GeoJSON boundary files. It implements store.Loader.
type Loader struct {
	log *logrus.Entry
}

// NewLoader creates a GeoJSON loader logging through the given logger.
func NewLoader(log *logrus.Logger) *Loader {
	return &Loader{log: log.WithField("module", "geojson")}
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	ID         any            `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   geometry       `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Load parses the dataset at path. A malformed individual record is
// skipped with a warning rather than failing the whole load: boundary
// data for the remaining regions is still usable, and partial
// availability beats refusing to start. The load fails outright only
// when the file is unreadable, the encoding is not a FeatureCollection,
// or skipping leaves zero polygons.
func (l *Loader) Load(path string) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetIO, err)
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetFormat, err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: expected FeatureCollection, got %q", domain.ErrDatasetFormat, fc.Type)
	}

	polygons := make([]domain.Polygon, 0, len(fc.Features))
	for i, f := range fc.Features {
		id := featureID(f, i)
		attrs := scalarAttributes(f.Properties)

		switch f.Geometry.Type {
		case "Polygon":
			var rings [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &rings); err != nil {
				l.log.WithField("id", id).Warnf("skipping record: bad Polygon coordinates: %v", err)
				continue
			}
			poly, ok := l.buildPolygon(id, attrs, rings)
			if !ok {
				continue
			}
			polygons = append(polygons, poly)

		case "MultiPolygon":
			var parts [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &parts); err != nil {
				l.log.WithField("id", id).Warnf("skipping record: bad MultiPolygon coordinates: %v", err)
				continue
			}
			// One store record per part, sharing the feature's identity
			// and attributes.
			for _, rings := range parts {
				poly, ok := l.buildPolygon(id, attrs, rings)
				if !ok {
					continue
				}
				polygons = append(polygons, poly)
			}

		default:
			l.log.WithFields(logrus.Fields{"id": id, "type": f.Geometry.Type}).
				Warn("skipping record: unsupported geometry type")
		}
	}

	if len(polygons) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDataset, path)
	}

	l.log.WithFields(logrus.Fields{
		"path":     path,
		"features": len(fc.Features),
		"polygons": len(polygons),
	}).Info("dataset loaded")

	return store.New(polygons), nil
}

// buildPolygon converts GeoJSON rings (first ring outer, rest holes) into
// a domain polygon. The record is rejected when its outer ring is not a
// usable loop; an unusable hole only drops that hole.
func (l *Loader) buildPolygon(id string, attrs map[string]any, rings [][][]float64) (domain.Polygon, bool) {
	if len(rings) == 0 {
		l.log.WithField("id", id).Warn("skipping record: geometry has no rings")
		return domain.Polygon{}, false
	}

	outer, ok := convertRing(rings[0])
	if !ok || !outer.Valid() {
		l.log.WithField("id", id).Warn("skipping record: outer ring has fewer than 3 distinct points")
		return domain.Polygon{}, false
	}

	holes := make([]domain.Ring, 0, len(rings)-1)
	for hi, raw := range rings[1:] {
		hole, ok := convertRing(raw)
		if !ok || !hole.Valid() {
			l.log.WithFields(logrus.Fields{"id": id, "hole": hi}).
				Warn("dropping malformed hole ring")
			continue
		}
		holes = append(holes, hole)
	}

	poly := domain.Polygon{
		ID:         id,
		Attributes: attrs,
		Outer:      outer,
		Holes:      holes,
	}
	poly.ComputeBounds()
	return poly, true
}

// convertRing turns a GeoJSON coordinate sequence into a Ring, closing it
// explicitly when the source leaves closure implicit. Positions with
// fewer than two values reject the ring.
func convertRing(raw [][]float64) (domain.Ring, bool) {
	ring := make(domain.Ring, 0, len(raw)+1)
	for _, pos := range raw {
		if len(pos) < 2 {
			return nil, false
		}
		ring = append(ring, domain.Point{Lon: pos[0], Lat: pos[1]})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring, true
}

// featureID picks a stable identifier: the top-level GeoJSON id, then an
// "id" or "name" property, then the record ordinal.
func featureID(f feature, ordinal int) string {
	switch v := f.ID.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	for _, key := range []string{"id", "name"} {
		if v, ok := f.Properties[key].(string); ok && v != "" {
			return v
		}
	}
	return fmt.Sprintf("feature-%d", ordinal)
}

// scalarAttributes copies scalar property values untouched. The resolver
// never interprets attributes; nested objects and arrays are dropped so
// the payload stays a flat scalar map.
func scalarAttributes(props map[string]any) map[string]any {
	attrs := make(map[string]any, len(props))
	for k, v := range props {
		switch v.(type) {
		case string, bool, float64, nil:
			attrs[k] = v
		}
	}
	return attrs
}
