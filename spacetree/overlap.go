package spacetree

// addEdge records a symmetric overlap edge between a and b if one does not
// already exist, with Region set to their geometric intersection (T5).
func addEdge(a, b *Node) {
	if a == b || hasEdge(a, b) {
		return
	}
	ov, ok := intersect(a.reg, b.reg)
	if !ok {
		return
	}
	a.overlaps = append(a.overlaps, &edge{Other: b, Region: ov})
	b.overlaps = append(b.overlaps, &edge{Other: a, Region: ov})
}

// hasEdge reports whether a already carries an overlap edge to b.
func hasEdge(a, b *Node) bool {
	for _, e := range a.overlaps {
		if e.Other == b {
			return true
		}
	}
	return false
}

// removeEdgeTo drops n's overlap edge to other, if any (n's side only; the
// caller is responsible for n itself being retired when both sides must go).
func removeEdgeTo(n, other *Node) {
	filtered := n.overlaps[:0]
	for _, e := range n.overlaps {
		if e.Other != other {
			filtered = append(filtered, e)
		}
	}
	n.overlaps = filtered
}

// dropRedundant filters out candidate children fully contained within any of
// N's pre-subdivision overlap regions: such a child would be entirely
// redundant with an existing neighbour leaf.
func dropRedundant(children []*Node, oldEdges []*edge) []*Node {
	out := make([]*Node, 0, len(children))
outer:
	for _, c := range children {
		for _, e := range oldEdges {
			if contains(e.Region, c.reg) {
				continue outer
			}
		}
		out = append(out, c)
	}

	return out
}

// pairKey returns a canonical, order-independent key for the unordered pair
// {a, b}, so rewiring logic processes each bidirectional pair exactly once.
func pairKey(a, b *Node) [2]*Node {
	if a.ID.String() < b.ID.String() {
		return [2]*Node{a, b}
	}
	return [2]*Node{b, a}
}
