// Package kdtree implements a 2-d tree: a binary space-partitioning index
// over points in the unit square. Nodes split their region alternately along
// x (Vertical) and y (Horizontal) by depth, and each node spans the
// rectangle left to it by its ancestors' splits. Range and nearest-neighbor
// queries skip every subtree whose rectangle cannot satisfy the query.
//
// A Tree is not safe for concurrent use. Callers that share one must
// serialize access themselves.
package kdtree

import (
	"log/slog"

	"github.com/cznic/mathutil"
)

// Orientation is the axis a node splits its rectangle on.
type Orientation uint8

const (
	// Vertical nodes split on x. The root is always Vertical.
	Vertical Orientation = iota
	// Horizontal nodes split on y.
	Horizontal
)

// Flip returns the orientation of o's children.
func (o Orientation) Flip() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// NodeID addresses a node within its Tree. IDs are assigned in insertion
// order starting at 0, which is always the root.
type NodeID int

// None marks a missing parent or child.
const None NodeID = -1

const rootID NodeID = 0

// node is stored by value in Tree.nodes. The tree owns every node; parent is
// a back-reference only.
type node struct {
	p      Point
	orient Orientation
	// The region this node and its whole subtree are confined to.
	rect        Rect
	parent      NodeID
	left, right NodeID
	depth       int
}

// less reports whether p belongs in n's left subtree. Points on the split
// line go right.
func (n *node) less(p Point) bool {
	if n.orient == Vertical {
		return p.X < n.p.X
	}
	return p.Y < n.p.Y
}

func (n *node) child(left bool) NodeID {
	if left {
		return n.left
	}
	return n.right
}

// childRect returns the part of n's rectangle on one side of its split line.
// The two halves share the split line and together cover n.rect exactly.
func (n *node) childRect(left bool) Rect {
	r := n.rect
	switch {
	case n.orient == Vertical && left:
		r.XMax = n.p.X
	case n.orient == Vertical:
		r.XMin = n.p.X
	case left:
		r.YMax = n.p.Y
	default:
		r.YMin = n.p.Y
	}
	return r
}

// Tree is a 2-d tree of distinct points. The zero value is not usable; call
// New.
type Tree struct {
	nodes  []node
	height int
	logger *slog.Logger
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	o := options{logger: noopLogger()}
	for _, fn := range opts {
		fn(&o)
	}
	return &Tree{
		nodes:  make([]node, 0, o.capacity),
		logger: o.logger,
	}
}

// Size returns the number of distinct points in the tree.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// IsEmpty reports whether the tree holds no points.
func (t *Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Height returns the number of levels in the tree, 0 when it is empty.
func (t *Tree) Height() int {
	return t.height
}

// Insert adds p to the tree. Inserting a point that is already present does
// nothing. Returns an error wrapping ErrInvalidArgument, and leaves the tree
// unchanged, if p lies outside the unit square.
func (t *Tree) Insert(p Point) error {
	if err := p.Validate(); err != nil {
		t.logger.Debug("insert rejected", "point", p, "error", err)
		return err
	}
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{
			p:      p,
			orient: Vertical,
			rect:   UnitSquare,
			parent: None,
			left:   None,
			right:  None,
		})
		t.height = 1
		t.logger.Debug("root inserted", "point", p)
		return nil
	}
	id := rootID
	for {
		n := &t.nodes[id]
		if n.p == p {
			t.logger.Debug("duplicate insert ignored", "point", p, "id", id)
			return nil
		}
		left := n.less(p)
		next := n.child(left)
		if next == None {
			t.attach(id, left, p)
			return nil
		}
		id = next
	}
}

// attach allocates a node for p in the empty child slot of parent.
func (t *Tree) attach(parent NodeID, left bool, p Point) {
	// Copy before append, which may move the slice.
	par := t.nodes[parent]
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		p:      p,
		orient: par.orient.Flip(),
		rect:   par.childRect(left),
		parent: parent,
		left:   None,
		right:  None,
		depth:  par.depth + 1,
	})
	if left {
		t.nodes[parent].left = id
	} else {
		t.nodes[parent].right = id
	}
	t.height = mathutil.Max(t.height, par.depth+2)
	t.logger.Debug("node inserted",
		"point", p,
		"id", id,
		"depth", par.depth+1,
		"orientation", par.orient.Flip(),
	)
}

// Contains reports whether a point with exactly p's coordinates is in the
// tree. Returns an error wrapping ErrInvalidArgument if p lies outside the
// unit square.
func (t *Tree) Contains(p Point) (bool, error) {
	if err := p.Validate(); err != nil {
		t.logger.Debug("contains rejected", "point", p, "error", err)
		return false, err
	}
	if len(t.nodes) == 0 {
		return false, nil
	}
	for id := rootID; id != None; {
		n := &t.nodes[id]
		if n.p == p {
			return true, nil
		}
		id = n.child(n.less(p))
	}
	return false, nil
}
