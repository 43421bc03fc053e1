package kdtree

import (
	"fmt"

	"github.com/tidwall/tinyqueue"
)

type knnItem struct {
	id NodeID
	p  Point
	// point is true once the item stands for id's point rather than its
	// subtree.
	point bool
	dist  float64
}

// Less orders by distance. At equal distance subtrees come before points so
// that every point at that distance is queued before any of them is
// emitted, and points are then ordered by Point.Compare.
func (item *knnItem) Less(b tinyqueue.Item) bool {
	o := b.(*knnItem)
	if item.dist != o.dist {
		return item.dist < o.dist
	}
	if item.point != o.point {
		return !item.point
	}
	if item.point {
		return item.p.Compare(o.p) < 0
	}
	return item.id < o.id
}

// KNearest returns up to k points closest to p, nearest first. Points at the
// same distance are ordered by Point.Compare.
//
// Returns nil, error wrapping ErrInvalidArgument if p lies outside the unit
// square or k is not positive.
func (t *Tree) KNearest(p Point, k int) ([]Point, error) {
	if err := p.Validate(); err != nil {
		t.logger.Debug("knearest rejected", "point", p, "error", err)
		return nil, err
	}
	if k <= 0 {
		err := fmt.Errorf("%w: k must be positive, got %d", ErrInvalidArgument, k)
		t.logger.Debug("knearest rejected", "k", k, "error", err)
		return nil, err
	}
	if len(t.nodes) == 0 {
		return nil, nil
	}
	points := make([]Point, 0, min(k, len(t.nodes)))
	queue := tinyqueue.New(nil)
	queue.Push(&knnItem{id: rootID, dist: t.nodes[rootID].rect.DistanceSquaredTo(p)})
	for queue.Len() > 0 && len(points) < k {
		item := queue.Pop().(*knnItem)
		if item.point {
			points = append(points, item.p)
			continue
		}
		// A subtree's rectangle is never farther than any point within it.
		n := &t.nodes[item.id]
		queue.Push(&knnItem{id: item.id, p: n.p, point: true, dist: n.p.DistanceSquaredTo(p)})
		for _, c := range [...]NodeID{n.left, n.right} {
			if c != None {
				queue.Push(&knnItem{id: c, dist: t.nodes[c].rect.DistanceSquaredTo(p)})
			}
		}
	}
	return points, nil
}
