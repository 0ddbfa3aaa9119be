package spacetree

import "fmt"

// CheckInvariants re-derives the space-tree's structural invariants directly
// from the live tree structure, for use in tests and diagnostics. It never
// mutates the tree and returns one message per violation found (empty slice
// if none).
func (t *Tree) CheckInvariants() []string {
	var violations []string

	var walk func(n *Node)
	walk = func(n *Node) {
		if !n.leaf {
			// T4: non-leaf nodes carry no overlap edges.
			if len(n.overlaps) != 0 {
				violations = append(violations, fmt.Sprintf("node %s: non-leaf carries %d overlap edges", n.ID, len(n.overlaps)))
			}
			for _, c := range n.children {
				walk(c)
			}
			return
		}
		// T3/T5: every overlap edge must be reciprocated with a matching region.
		for _, e := range n.overlaps {
			if !hasEdge(e.Other, n) {
				violations = append(violations, fmt.Sprintf("node %s: overlap edge to %s is not reciprocated", n.ID, e.Other.ID))
				continue
			}
			want, ok := intersect(n.reg, e.Other.reg)
			if !ok || want != e.Region {
				violations = append(violations, fmt.Sprintf("node %s: overlap region with %s does not match geometric intersection", n.ID, e.Other.ID))
			}
		}
	}
	walk(t.root)

	// T2: no leaf completely contained in another leaf.
	leaves := bfsLeaves(t.root)
	for i, a := range leaves {
		for j, b := range leaves {
			if i == j {
				continue
			}
			if contains(b.reg, a.reg) {
				violations = append(violations, fmt.Sprintf("node %s: leaf is fully contained in leaf %s", a.ID, b.ID))
			}
		}
	}

	return violations
}
