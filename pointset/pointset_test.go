package pointset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdtree"
)

func TestSet(t *testing.T) {
	s := New()
	p1 := kdtree.Pt(0.1, 0.2)

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())
	ok, err := s.Contains(p1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Insert(p1))
	require.NoError(t, s.Insert(kdtree.Pt(0.1, 0.2)))
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.Size())
	ok, err = s.Contains(p1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetRange(t *testing.T) {
	var s Set
	for _, p := range []kdtree.Point{
		kdtree.Pt(0.2, 0.1), kdtree.Pt(0.3, 0.3), kdtree.Pt(0.3, 0.7),
		kdtree.Pt(0.8, 0.4), kdtree.Pt(0.3, 0.6),
	} {
		require.NoError(t, s.Insert(p))
	}

	points, err := s.Range(kdtree.Rect{XMin: 0.3, YMin: 0.3, XMax: 0.6, YMax: 0.6})
	require.NoError(t, err)
	assert.Equal(t, []kdtree.Point{kdtree.Pt(0.3, 0.3), kdtree.Pt(0.3, 0.6)}, points)

	points, err = s.Range(kdtree.Rect{XMin: 0.9, YMin: 0.9, XMax: 1, YMax: 1})
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = s.Range(kdtree.Rect{XMin: 1, YMin: 0, XMax: 0, YMax: 1})
	require.ErrorIs(t, err, kdtree.ErrInvalidArgument)
}

func TestSetNearest(t *testing.T) {
	var s Set
	_, ok, err := s.Nearest(kdtree.Pt(0.5, 0.5))
	require.NoError(t, err)
	assert.False(t, ok)

	for _, p := range []kdtree.Point{
		kdtree.Pt(0.2, 0.1), kdtree.Pt(0.3, 0.3), kdtree.Pt(0.3, 0.7),
		kdtree.Pt(0.8, 0.4), kdtree.Pt(0.3, 0.6),
	} {
		require.NoError(t, s.Insert(p))
	}

	tests := []struct {
		name     string
		query    kdtree.Point
		expected kdtree.Point
	}{
		{"Middle", kdtree.Pt(0.4, 0.4), kdtree.Pt(0.3, 0.3)},
		{"UpperRight", kdtree.Pt(1, 1), kdtree.Pt(0.8, 0.4)},
		{"Origin", kdtree.Pt(0, 0), kdtree.Pt(0.2, 0.1)},
		{"OnPoint", kdtree.Pt(0.3, 0.6), kdtree.Pt(0.3, 0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearest, ok, err := s.Nearest(tt.query)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.expected, nearest)
		})
	}
}

func TestSetNearestTie(t *testing.T) {
	var s Set
	require.NoError(t, s.Insert(kdtree.Pt(0.25, 0.75)))
	require.NoError(t, s.Insert(kdtree.Pt(0.25, 0.25)))

	// Both are 0.25 away; the smaller point wins.
	nearest, ok, err := s.Nearest(kdtree.Pt(0.25, 0.5))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, kdtree.Pt(0.25, 0.25), nearest)
}

func TestSetInvalid(t *testing.T) {
	var s Set
	bad := kdtree.Pt(math.NaN(), 0.5)

	require.ErrorIs(t, s.Insert(bad), kdtree.ErrInvalidArgument)
	_, err := s.Contains(bad)
	require.ErrorIs(t, err, kdtree.ErrInvalidArgument)
	_, _, err = s.Nearest(kdtree.Pt(0.5, 2))
	require.ErrorIs(t, err, kdtree.ErrInvalidArgument)
	assert.True(t, s.IsEmpty())
}
