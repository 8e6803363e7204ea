package domain

import "math"

// BoundaryEpsilon is the tolerance used when deciding that a query point
// lies exactly on a ring edge or vertex. Ray casting disagrees between
// implementations on boundary points, so the tie-break is fixed here:
// on-boundary counts as inside. A single documented epsilon keeps the
// decision stable across platforms and orders of evaluation.
const BoundaryEpsilon = 1e-9

// Contains reports whether pt lies inside the polygon: inside or on the
// outer ring, and not strictly inside any hole. A point on a hole's
// boundary is on the polygon's boundary and therefore inside.
func (p *Polygon) Contains(pt Point) bool {
	inside, onEdge := p.Outer.contains(pt)
	if onEdge {
		return true
	}
	if !inside {
		return false
	}
	for _, h := range p.Holes {
		inside, onEdge = h.contains(pt)
		if onEdge {
			return true
		}
		if inside {
			return false
		}
	}
	return true
}

// contains runs the crossing-number test. It reports strict interior
// membership separately from edge incidence so callers can apply the
// on-boundary tie-break per ring.
func (r Ring) contains(pt Point) (inside, onEdge bool) {
	n := len(r)
	if n < 3 {
		return false, false
	}

	// Edge incidence first: the parity loop below is unreliable exactly
	// on the boundary.
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if pointOnSegment(pt, r[j], r[i]) {
			return false, true
		}
	}

	// Standard even-odd ray cast: a horizontal ray eastward from pt,
	// counting crossings. The half-open (yi > y) != (yj > y) guard
	// handles vertices and horizontal edges without double counting.
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := r[i].Lon, r[i].Lat
		xj, yj := r[j].Lon, r[j].Lat
		if (yi > pt.Lat) != (yj > pt.Lat) {
			crossLon := (xj-xi)*(pt.Lat-yi)/(yj-yi) + xi
			if pt.Lon < crossLon {
				inside = !inside
			}
		}
	}
	return inside, false
}

// pointOnSegment reports whether p lies on the segment ab, within
// BoundaryEpsilon both for collinearity and for the segment's extent.
func pointOnSegment(p, a, b Point) bool {
	cross := (b.Lon-a.Lon)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lon-a.Lon)
	if math.Abs(cross) > BoundaryEpsilon {
		return false
	}
	if p.Lon < math.Min(a.Lon, b.Lon)-BoundaryEpsilon || p.Lon > math.Max(a.Lon, b.Lon)+BoundaryEpsilon {
		return false
	}
	if p.Lat < math.Min(a.Lat, b.Lat)-BoundaryEpsilon || p.Lat > math.Max(a.Lat, b.Lat)+BoundaryEpsilon {
		return false
	}
	return true
}
