package spacetree

import (
	"fmt"

	"github.com/katalvlaran/cargopack/placement"
	"github.com/katalvlaran/cargopack/uld"
)

// Candidates returns, for the given oriented parcel, every live leaf
// admitting it, walked in the tree's configured TraversalOrder. Token is the
// *Node itself, resolved directly at Commit time.
func (t *Tree) Candidates(orientation uld.Dims) []placement.Candidate {
	leaves := t.leaves()
	out := make([]placement.Candidate, 0, len(leaves))
	for _, n := range leaves {
		if n.reg.fits(orientation) {
			out = append(out, placement.Candidate{
				Token:  n,
				Anchor: n.reg.Anchor,
				Extent: n.reg.Extent,
			})
		}
	}

	return out
}

// Commit places an oriented parcel at anchor into the leaf identified by
// token. token must be a *Node returned by this tree's own Candidates call;
// violating leaf.IsLeaf() or P subseteq leaf's region is a programmer error
// and panics with a diagnostic naming the node.
func (t *Tree) Commit(token any, anchor uld.Anchor, orientation uld.Dims) error {
	leaf, ok := token.(*Node)
	if !ok || leaf == nil {
		panic("spacetree: commit token is not a *Node")
	}
	if !leaf.leaf {
		panic(fmt.Errorf("%w: node %s", ErrNotLeaf, leaf.ID))
	}
	p := box(anchor, orientation)
	if !contains(leaf.reg, p) {
		panic(fmt.Errorf("%w: node %s", ErrOutOfBounds, leaf.ID))
	}

	t.place(leaf, p)

	return nil
}

// placePlan is the per-implicated-node subdivision result, computed before
// any node in the batch is mutated: collect signalling lists, then apply,
// so no node is ever visited mid-subdivision.
type placePlan struct {
	node     *Node
	oldEdges []*edge
	children []*Node
}

// place subdivides every node the parcel box touches, then rewires the
// overlap graph in two phases.
func (t *Tree) place(leaf *Node, p region) {
	implicated, isImplicated := t.collectImplicated(leaf, p)

	plans := make(map[*Node]*placePlan, len(implicated))
	for _, n := range implicated {
		excl, ok := intersect(p, n.reg)
		if !ok {
			panic(fmt.Errorf("spacetree: node %s unexpectedly disjoint from parcel box", n.ID))
		}
		children := dropRedundant(subdivideNode(n, excl, t.MinDimension), n.overlaps)
		plans[n] = &placePlan{
			node:     n,
			oldEdges: append([]*edge(nil), n.overlaps...),
			children: children,
		}
	}

	// Phase 1: rewire the inter-family overlap graph using each node's
	// pre-subdivision edges, before any leaf/children/overlaps field changes.
	handled := make(map[[2]*Node]bool)
	for _, n := range implicated {
		pl := plans[n]
		for _, e := range pl.oldEdges {
			a := e.Other
			if isImplicated[a] {
				key := pairKey(n, a)
				if handled[key] {
					continue
				}
				handled[key] = true
				for _, cN := range pl.children {
					for _, cA := range plans[a].children {
						if qualifies(cN.reg, cA.reg, t.MinDimension) {
							addEdge(cN, cA)
						}
					}
				}
				continue
			}
			// Unidirectional: a remains a leaf; drop the stale n<->a edge on
			// a's side and reconnect a to whichever of n's new children
			// still qualify.
			removeEdgeTo(a, n)
			for _, cN := range pl.children {
				if qualifies(cN.reg, a.reg, t.MinDimension) {
					addEdge(cN, a)
				}
			}
		}
	}

	// Phase 2: commit the structural mutation. Each implicated node becomes
	// non-leaf, loses its overlap edges (T4), and gains its new children;
	// siblings among those children get intra-family overlap edges (T3).
	for _, n := range implicated {
		pl := plans[n]
		n.leaf = false
		n.children = pl.children
		n.overlaps = nil
		for _, c := range pl.children {
			c.parent = n
			c.leaf = true
		}
		for i := 0; i < len(pl.children); i++ {
			for j := i + 1; j < len(pl.children); j++ {
				if qualifies(pl.children[i].reg, pl.children[j].reg, t.MinDimension) {
					addEdge(pl.children[i], pl.children[j])
				}
			}
		}
	}
}

// collectImplicated returns {leaf} union every peer leaf whose region the
// parcel box p intersects -- the implicated set.
func (t *Tree) collectImplicated(leaf *Node, p region) ([]*Node, map[*Node]bool) {
	implicated := []*Node{leaf}
	isImplicated := map[*Node]bool{leaf: true}
	for _, e := range leaf.overlaps {
		if !isImplicated[e.Other] && intersects(p, e.Other.reg) {
			implicated = append(implicated, e.Other)
			isImplicated[e.Other] = true
		}
	}

	return implicated, isImplicated
}
