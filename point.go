package kdtree

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is an immutable location in the unit square. Two points are equal
// only if both coordinates are exactly equal.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Validate returns an error wrapping ErrInvalidArgument unless both
// coordinates are finite and lie in [0,1].
func (p Point) Validate() error {
	// NaN fails both comparisons.
	if !(p.X >= 0 && p.X <= 1) || !(p.Y >= 0 && p.Y <= 1) {
		return fmt.Errorf("%w: point %s is outside the unit square", ErrInvalidArgument, p)
	}
	return nil
}

// Compare orders points by x, then by y. It returns -1, 0 or +1.
func (p Point) Compare(o Point) int {
	switch {
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	}
	return 0
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return planar.Distance(p.orb(), o.orb())
}

// DistanceSquaredTo returns the squared Euclidean distance between p and o.
func (p Point) DistanceSquaredTo(o Point) float64 {
	return planar.DistanceSquared(p.orb(), o.orb())
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

func (p Point) orb() orb.Point {
	return orb.Point{p.X, p.Y}
}
