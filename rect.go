package kdtree

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Rect is an axis-aligned rectangle. Its boundary belongs to it.
type Rect struct {
	XMin, YMin float64
	XMax, YMax float64
}

// UnitSquare is the rectangle spanned by the root of every tree.
var UnitSquare = Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

// NewRect returns the rectangle [xmin,xmax]x[ymin,ymax], or an error wrapping
// ErrInvalidArgument if a coordinate is not finite or a minimum exceeds its
// maximum.
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	r := Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Validate reports whether r is a well-formed rectangle. Query rectangles may
// extend beyond the unit square.
func (r Rect) Validate() error {
	for _, v := range [...]float64{r.XMin, r.YMin, r.XMax, r.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: rect %s has a non-finite coordinate", ErrInvalidArgument, r)
		}
	}
	if r.XMin > r.XMax || r.YMin > r.YMax {
		return fmt.Errorf("%w: rect %s has min greater than max", ErrInvalidArgument, r)
	}
	return nil
}

// Bound returns r as an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.XMin, r.YMin},
		Max: orb.Point{r.XMax, r.YMax},
	}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return r.Bound().Contains(p.orb())
}

// Intersects reports whether r and o share at least one point. Rectangles
// that only touch along an edge or at a corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Bound().Intersects(o.Bound())
}

// DistanceTo returns the smallest Euclidean distance from p to any point of
// r. It is 0 when r contains p.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

// DistanceSquaredTo returns the square of DistanceTo.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	return planar.DistanceSquared(p.orb(), r.clamp(p).orb())
}

// clamp returns the point of r closest to p.
func (r Rect) clamp(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, r.XMin), r.XMax),
		Y: math.Min(math.Max(p.Y, r.YMin), r.YMax),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
}
