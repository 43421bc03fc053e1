package kdtree

import "slices"

// Range returns every point inside r or on its boundary, ordered by
// Point.Compare. The slice is freshly allocated on every call.
//
// Returns nil, error wrapping ErrInvalidArgument if r is malformed.
func (t *Tree) Range(r Rect) ([]Point, error) {
	if err := r.Validate(); err != nil {
		t.logger.Debug("range rejected", "rect", r, "error", err)
		return nil, err
	}
	var points []Point
	if len(t.nodes) > 0 {
		t.rangeFrom(rootID, r, &points)
	}
	slices.SortFunc(points, Point.Compare)
	return points, nil
}

// rangeFrom collects matches below id. A child whose rectangle misses r
// cannot hold a match, so its subtree is skipped.
func (t *Tree) rangeFrom(id NodeID, r Rect, points *[]Point) {
	n := &t.nodes[id]
	if r.Contains(n.p) {
		*points = append(*points, n.p)
	}
	if n.left != None && r.Intersects(t.nodes[n.left].rect) {
		t.rangeFrom(n.left, r, points)
	}
	if n.right != None && r.Intersects(t.nodes[n.right].rect) {
		t.rangeFrom(n.right, r, points)
	}
}

// Nearest returns the point closest to p. ok is false if the tree is empty.
// When several points are equally close, the first one reached by the search
// wins; the search visits, at each node, the child on p's side of the split
// line first.
//
// Returns an error wrapping ErrInvalidArgument if p lies outside the unit
// square.
func (t *Tree) Nearest(p Point) (nearest Point, ok bool, err error) {
	if err = p.Validate(); err != nil {
		t.logger.Debug("nearest rejected", "point", p, "error", err)
		return Point{}, false, err
	}
	if len(t.nodes) == 0 {
		return Point{}, false, nil
	}
	s := nearestSearch{
		nodes: t.nodes,
		query: p,
		best:  rootID,
		dist:  t.nodes[rootID].p.DistanceSquaredTo(p),
	}
	s.visit(rootID)
	return t.nodes[s.best].p, true, nil
}

// nearestSearch carries the best match through a Nearest traversal.
// Distances are squared.
type nearestSearch struct {
	nodes []node
	query Point
	best  NodeID
	dist  float64
	// visited counts nodes examined.
	visited int
}

// eligible reports whether the subtree at id could hold a point closer than
// the current best.
func (s *nearestSearch) eligible(id NodeID) bool {
	return id != None && s.nodes[id].rect.DistanceSquaredTo(s.query) < s.dist
}

func (s *nearestSearch) visit(id NodeID) {
	s.visited++
	n := &s.nodes[id]
	if d := n.p.DistanceSquaredTo(s.query); d < s.dist {
		s.best, s.dist = id, d
	}
	first, second := n.right, n.left
	if n.less(s.query) {
		first, second = n.left, n.right
	}
	if s.eligible(first) {
		s.visit(first)
	}
	// The bound may have tightened while visiting first.
	if s.eligible(second) {
		s.visit(second)
	}
}

// Points returns every point in the tree ordered by Point.Compare.
func (t *Tree) Points() []Point {
	points := make([]Point, len(t.nodes))
	for i := range t.nodes {
		points[i] = t.nodes[i].p
	}
	slices.SortFunc(points, Point.Compare)
	return points
}

// Node is a read-only snapshot of one tree node, for code that draws or
// inspects the tree's partition. Modifying it does not affect the tree.
type Node struct {
	ID          NodeID
	Point       Point
	Orientation Orientation
	// Rect is the region the node and its subtree are confined to.
	Rect   Rect
	Parent NodeID
	Left   NodeID
	Right  NodeID
	Depth  int
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool { return n.Parent == None }

// HasLeft reports whether n has a left (below or left of the split) child.
func (n Node) HasLeft() bool { return n.Left != None }

// HasRight reports whether n has a right (above or right of the split) child.
func (n Node) HasRight() bool { return n.Right != None }

// SplitLine returns the end points of n's splitting segment, clipped to
// n.Rect: a vertical segment through Point.X, or a horizontal one through
// Point.Y.
func (n Node) SplitLine() (from, to Point) {
	if n.Orientation == Vertical {
		return Point{X: n.Point.X, Y: n.Rect.YMin}, Point{X: n.Point.X, Y: n.Rect.YMax}
	}
	return Point{X: n.Rect.XMin, Y: n.Point.Y}, Point{X: n.Rect.XMax, Y: n.Point.Y}
}

// Root returns the root node. ok is false if the tree is empty.
func (t *Tree) Root() (root Node, ok bool) {
	return t.Node(rootID)
}

// Node returns the node with the given id. ok is false if there is none.
func (t *Tree) Node(id NodeID) (n Node, ok bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return t.view(id), true
}

func (t *Tree) view(id NodeID) Node {
	n := &t.nodes[id]
	return Node{
		ID:          id,
		Point:       n.p,
		Orientation: n.orient,
		Rect:        n.rect,
		Parent:      n.parent,
		Left:        n.left,
		Right:       n.right,
		Depth:       n.depth,
	}
}

// Walk calls fn for every node in pre-order, left subtree before right.
// It stops as soon as fn returns false.
func (t *Tree) Walk(fn func(n Node) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(rootID, fn)
}

func (t *Tree) walk(id NodeID, fn func(n Node) bool) bool {
	if !fn(t.view(id)) {
		return false
	}
	n := &t.nodes[id]
	if n.left != None && !t.walk(n.left, fn) {
		return false
	}
	if n.right != None && !t.walk(n.right, fn) {
		return false
	}
	return true
}
