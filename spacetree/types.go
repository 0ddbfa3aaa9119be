package spacetree

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/cargopack/uld"
)

// region is an axis-aligned box (anchor, extent). It is the space-tree's own
// free-volume representation -- distinct from freerect.Region by design: the
// two representations need not share a type, only the placement.Fitter
// interface.
type region struct {
	Anchor uld.Anchor
	Extent uld.Dims
}

// fits reports whether oriented parcel o fits inside r without rotation.
func (r region) fits(o uld.Dims) bool {
	return o.L <= r.Extent.L && o.W <= r.Extent.W && o.H <= r.Extent.H
}

func (r region) volume() int64 { return r.Extent.Volume() }

// edge is a symmetric, non-owning association between two leaves whose
// regions intersect with every overlap dimension >= the tree's MinDimension
// (T3). It is stored on the leaf that owns the slice it lives in; Other
// points at the peer.
type edge struct {
	Other  *Node
	Region region
}

// Node is a region in the space tree: a leaf holds live free volume: an
// internal (non-leaf) node is a historical container fully represented by
// its Children. Parent/Children are ownership edges; Overlaps are
// non-owning back-references to peer leaves.
type Node struct {
	ID       uuid.UUID
	reg      region
	leaf     bool
	parent   *Node
	children []*Node
	overlaps []*edge
}

// Region returns the node's (anchor, extent).
func (n *Node) Region() (uld.Anchor, uld.Dims) { return n.reg.Anchor, n.reg.Extent }

// IsLeaf reports whether n currently holds live free volume.
func (n *Node) IsLeaf() bool { return n.leaf }

// Children returns n's child nodes (empty for a leaf).
func (n *Node) Children() []*Node { return n.children }

// OverlapCount returns the number of peer leaves n currently shares volume with.
func (n *Node) OverlapCount() int { return len(n.overlaps) }

// TraversalOrder selects how Tree.Candidates walks the live leaf set: a
// depth-first or breadth-first walk over leaves.
type TraversalOrder int

const (
	// BFSOrder walks leaves in breadth-first (level) order.
	BFSOrder TraversalOrder = iota
	// DFSOrder walks leaves in depth-first (preorder) order.
	DFSOrder
)

// Tree is one ULD's space-tree free-space representation.
type Tree struct {
	// MinDimension is the minimum-dimension threshold: overlap dimensions and
	// child extents below this are dropped/ignored.
	MinDimension int

	// Order controls the leaf-walk order used by Candidates.
	Order TraversalOrder

	root *Node
}

// Option configures a Tree via the functional-option pattern.
type Option func(*Tree)

// WithOrder sets the leaf traversal order used by Candidates.
func WithOrder(o TraversalOrder) Option {
	return func(t *Tree) { t.Order = o }
}

// NewTree seeds a Tree with one root leaf spanning the whole ULD.
func NewTree(dims uld.Dims, minDimension int, opts ...Option) *Tree {
	t := &Tree{
		MinDimension: minDimension,
		Order:        BFSOrder,
		root: &Node{
			ID:   uuid.New(),
			reg:  region{Anchor: uld.Anchor{}, Extent: dims},
			leaf: true,
		},
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }
