package geojson

import (
	"testing"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdtree"
)

func sampleTree(t *testing.T) *kdtree.Tree {
	t.Helper()
	tree := kdtree.New()
	for _, p := range []kdtree.Point{
		kdtree.Pt(0.7, 0.2), kdtree.Pt(0.5, 0.4), kdtree.Pt(0.2, 0.3),
		kdtree.Pt(0.4, 0.7), kdtree.Pt(0.9, 0.6),
	} {
		require.NoError(t, tree.Insert(p))
	}
	return tree
}

func TestExport(t *testing.T) {
	fc := Export(sampleTree(t))
	require.Len(t, fc.Features, 15)

	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties["kind"].(string)]++
	}
	assert.Equal(t, map[string]int{KindPoint: 5, KindSplit: 5, KindRect: 5}, kinds)

	// The root comes first.
	point, split, rect := fc.Features[0], fc.Features[1], fc.Features[2]
	assert.Equal(t, orb.Point{0.7, 0.2}, point.Geometry)
	assert.Equal(t, orb.LineString{{0.7, 0}, {0.7, 1}}, split.Geometry)
	assert.Equal(t, kdtree.UnitSquare.Bound().ToPolygon(), rect.Geometry)
	for _, f := range fc.Features[:3] {
		assert.Equal(t, 0, f.Properties["id"])
		assert.Equal(t, 0, f.Properties["depth"])
		assert.Equal(t, "vertical", f.Properties["orientation"])
	}

	// The second node splits the root's left half horizontally.
	split = fc.Features[4]
	assert.Equal(t, orb.LineString{{0, 0.4}, {0.7, 0.4}}, split.Geometry)
	assert.Equal(t, "horizontal", split.Properties["orientation"])
	assert.Equal(t, 1, split.Properties["depth"])
}

func TestExportEmpty(t *testing.T) {
	fc := Export(kdtree.New())
	assert.Empty(t, fc.Features)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(sampleTree(t))
	require.NoError(t, err)

	fc, err := orbjson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 15)
	assert.Equal(t, KindSplit, fc.Features[1].Properties["kind"])
	assert.Equal(t, "LineString", fc.Features[1].Geometry.GeoJSONType())
	assert.Equal(t, "Polygon", fc.Features[2].Geometry.GeoJSONType())
}
