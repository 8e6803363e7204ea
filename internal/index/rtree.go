// Package index provides the coarse spatial filter over polygon bounding
// boxes. It exists only to prune candidates before the exact containment
// test and is never the final authority on membership.
package index

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/sirupsen/logrus"

	"github.com/seerai/boundaries-api/internal/adapter/store"
	"github.com/seerai/boundaries-api/internal/domain"
)

var log = logrus.WithField("module", "index")

const (
	treeMinChildren = 25
	treeMaxChildren = 50

	// degenerateExtent pads zero-extent bounding boxes so rtreego accepts
	// them; a box this small never changes candidate selection.
	degenerateExtent = 1e-9

	// probeExtent sizes the point query box. rtreego searches by rectangle
	// intersection, so a point probe is a box of this half-width.
	probeExtent = 1e-9
)

// entry is one indexed bounding box. It carries only the store ordinal;
// the store stays the sole owner of geometry.
type entry struct {
	ordinal int
	rect    *rtreego.Rect
}

func (e *entry) Bounds() *rtreego.Rect {
	return e.rect
}

// Index answers "which polygons' bounding boxes contain this point" in
// sublinear time for typical datasets. It borrows ordinals into the store
// it was built over and must never outlive it.
type Index struct {
	tree  *rtreego.Rtree
	store *store.Store
}

// Build constructs the R-tree over every polygon's cached bounding box.
// Called once after the store is loaded; the tree is immutable afterwards
// and safe for unlimited concurrent readers.
func Build(st *store.Store) *Index {
	tree := rtreego.NewTree(2, treeMinChildren, treeMaxChildren)
	for i := range st.Polygons() {
		tree.Insert(&entry{ordinal: i, rect: toRect(st.Get(i).Bounds)})
	}
	log.Debugf("spatial index built over %d polygons", st.Count())
	return &Index{tree: tree, store: st}
}

// Candidates returns the ordinals of every polygon whose bounding box
// contains pt, sorted ascending. The sort pins the iteration order the
// resolver relies on for its first-match overlap policy; rtreego's own
// result order is unspecified.
func (idx *Index) Candidates(pt domain.Point) []int {
	probe := rtreego.Point{pt.Lon, pt.Lat}.ToRect(probeExtent)
	spatials := idx.tree.SearchIntersect(probe)

	ordinals := make([]int, 0, len(spatials))
	for _, sp := range spatials {
		e, ok := sp.(*entry)
		if !ok {
			continue
		}
		// The probe box is slightly wider than the point; re-check the
		// exact box so candidates are precisely bbox hits.
		if idx.store.Get(e.ordinal).Bounds.Contains(pt) {
			ordinals = append(ordinals, e.ordinal)
		}
	}
	sort.Ints(ordinals)
	return ordinals
}

// Size returns the number of indexed entries.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// toRect converts a bounding box into an rtreego rectangle, padding
// degenerate extents which rtreego rejects.
func toRect(b domain.BoundingBox) *rtreego.Rect {
	w := b.MaxLon - b.MinLon
	h := b.MaxLat - b.MinLat
	if w <= 0 {
		w = degenerateExtent
	}
	if h <= 0 {
		h = degenerateExtent
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinLon, b.MinLat}, []float64{w, h})
	if err != nil {
		rect = rtreego.Point{b.MinLon, b.MinLat}.ToRect(degenerateExtent)
	}
	return rect
}
