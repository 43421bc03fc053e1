// Package geojson exports the partition of a kdtree.Tree as a GeoJSON
// FeatureCollection, so it can be inspected in any GeoJSON viewer.
//
// Each node contributes three features, told apart by the "kind" property:
// its point, its splitting line and its spanning rectangle. Every feature
// also carries the node's "id", "depth" and "orientation".
package geojson

import (
	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	"kdtree"
)

// Feature kinds.
const (
	KindPoint = "point"
	KindSplit = "split"
	KindRect  = "rect"
)

// Export builds a FeatureCollection from t in pre-order. An empty tree gives
// an empty collection.
func Export(t *kdtree.Tree) *orbjson.FeatureCollection {
	fc := orbjson.NewFeatureCollection()
	t.Walk(func(n kdtree.Node) bool {
		from, to := n.SplitLine()
		fc.Append(newFeature(n, KindPoint, orb.Point{n.Point.X, n.Point.Y}))
		fc.Append(newFeature(n, KindSplit, orb.LineString{{from.X, from.Y}, {to.X, to.Y}}))
		fc.Append(newFeature(n, KindRect, n.Rect.Bound().ToPolygon()))
		return true
	})
	return fc
}

// Marshal returns the JSON encoding of Export(t).
func Marshal(t *kdtree.Tree) ([]byte, error) {
	return Export(t).MarshalJSON()
}

func newFeature(n kdtree.Node, kind string, g orb.Geometry) *orbjson.Feature {
	f := orbjson.NewFeature(g)
	f.Properties["id"] = int(n.ID)
	f.Properties["depth"] = n.Depth
	f.Properties["orientation"] = n.Orientation.String()
	f.Properties["kind"] = kind
	return f
}
