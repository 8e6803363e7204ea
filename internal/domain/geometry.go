package domain

// Point represents a WGS84 coordinate in degrees, longitude first.
type Point struct {
	Lon float64
	Lat float64
}

// Ring is an ordered closed sequence of points forming one boundary loop.
// The first and last points are coincident; a usable ring has at least
// three distinct vertices.
type Ring []Point

// Polygon is one outer ring plus zero or more holes, carrying the source
// record's identifier and attribute map. A polygon owns its rings
// exclusively; the spatial index refers to polygons by store ordinal only
// and never copies geometry.
type Polygon struct {
	ID         string
	Attributes map[string]any
	Outer      Ring
	Holes      []Ring
	Bounds     BoundingBox
}

// BoundingBox is the axis-aligned rectangle minimally enclosing a polygon.
// It is computed once at load time and never mutated afterwards.
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// NewBoundingBox returns an inverted box that any Extend call will correct.
func NewBoundingBox() BoundingBox {
	return BoundingBox{MinLon: 180, MinLat: 90, MaxLon: -180, MaxLat: -90}
}

// Extend grows the box to include p.
func (b *BoundingBox) Extend(p Point) {
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
}

// Contains reports whether p lies within the box. Edges are inclusive so
// the box test never rejects a point the exact containment test would
// accept under the on-boundary-is-inside rule.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon &&
		p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// BoundingBox computes the minimal box enclosing the ring.
func (r Ring) BoundingBox() BoundingBox {
	box := NewBoundingBox()
	for _, p := range r {
		box.Extend(p)
	}
	return box
}

// Closed reports whether the ring's first and last points coincide.
func (r Ring) Closed() bool {
	if len(r) < 2 {
		return false
	}
	return r[0] == r[len(r)-1]
}

// DistinctVertices counts vertices ignoring the closing point and exact
// consecutive duplicates.
func (r Ring) DistinctVertices() int {
	pts := r
	if r.Closed() {
		pts = r[:len(r)-1]
	}
	n := 0
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			n++
		}
	}
	return n
}

// Valid reports whether the ring describes a usable loop: at least three
// distinct vertices. Self-intersection is assumed away by the source data
// and is not checked here.
func (r Ring) Valid() bool {
	return r.DistinctVertices() >= 3
}

// ComputeBounds recomputes the cached bounding box from the polygon's
// rings. Called once by the loader; the dataset is read-only afterwards.
func (p *Polygon) ComputeBounds() {
	box := p.Outer.BoundingBox()
	for _, h := range p.Holes {
		for _, pt := range h {
			box.Extend(pt)
		}
	}
	p.Bounds = box
}
