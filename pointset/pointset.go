// Package pointset is a brute-force point set with the same query contract as
// kdtree.Tree. Every query scans all points, which makes it a simple oracle
// for checking the tree.
package pointset

import (
	"github.com/biogo/store/llrb"

	"kdtree"
)

type entry kdtree.Point

func (e entry) Compare(b llrb.Comparable) int {
	return kdtree.Point(e).Compare(kdtree.Point(b.(entry)))
}

// Set holds distinct points ordered by kdtree.Point.Compare. The zero value
// is an empty set ready to use.
type Set struct {
	points llrb.Tree
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Size returns the number of distinct points in the set.
func (s *Set) Size() int {
	return s.points.Len()
}

// IsEmpty reports whether the set holds no points.
func (s *Set) IsEmpty() bool {
	return s.points.Len() == 0
}

// Insert adds p. Inserting a point that is already present does nothing.
func (s *Set) Insert(p kdtree.Point) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.points.Insert(entry(p))
	return nil
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p kdtree.Point) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	return s.points.Get(entry(p)) != nil, nil
}

// Range returns every point inside r or on its boundary, ordered by
// kdtree.Point.Compare.
func (s *Set) Range(r kdtree.Rect) ([]kdtree.Point, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var points []kdtree.Point
	s.points.Do(func(c llrb.Comparable) (done bool) {
		if p := kdtree.Point(c.(entry)); r.Contains(p) {
			points = append(points, p)
		}
		return false
	})
	return points, nil
}

// Nearest returns the point closest to p, the smallest by
// kdtree.Point.Compare among equally close points. ok is false if the set is
// empty.
func (s *Set) Nearest(p kdtree.Point) (nearest kdtree.Point, ok bool, err error) {
	if err = p.Validate(); err != nil {
		return kdtree.Point{}, false, err
	}
	var best float64
	s.points.Do(func(c llrb.Comparable) (done bool) {
		q := kdtree.Point(c.(entry))
		if d := q.DistanceSquaredTo(p); !ok || d < best {
			nearest, best, ok = q, d, true
		}
		return false
	})
	return nearest, ok, nil
}
