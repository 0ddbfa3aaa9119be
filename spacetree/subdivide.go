package spacetree

import "github.com/google/uuid"

// subdivideNode emits up to six child leaves describing "n's region minus
// exclusion", using the same slab formula as freerect, dropping any slab
// with an extent below minDim on any axis.
func subdivideNode(n *Node, exclusion region, minDim int) []*Node {
	ax, ay, az := n.reg.Anchor.X, n.reg.Anchor.Y, n.reg.Anchor.Z
	al, aw, ah := n.reg.Extent.L, n.reg.Extent.W, n.reg.Extent.H
	x, y, z := exclusion.Anchor.X, exclusion.Anchor.Y, exclusion.Anchor.Z
	ol, ow, oh := exclusion.Extent.L, exclusion.Extent.W, exclusion.Extent.H

	candidates := []region{
		{Anchor: point(ax, y+ow, az), Extent: dims(al, aw-(y+ow-ay), ah)}, // +Y
		{Anchor: point(ax, ay, az), Extent: dims(al, y-ay, ah)},           // -Y
		{Anchor: point(ax, ay, az), Extent: dims(x-ax, aw, ah)},          // -X
		{Anchor: point(x+ol, ay, az), Extent: dims(al-(x+ol-ax), aw, ah)}, // +X
		{Anchor: point(ax, ay, az), Extent: dims(al, aw, z-az)},          // -Z
		{Anchor: point(ax, ay, z+oh), Extent: dims(al, aw, ah-(z+oh-az))}, // +Z
	}

	out := make([]*Node, 0, 6)
	for _, c := range candidates {
		if c.Extent.L >= minDim && c.Extent.W >= minDim && c.Extent.H >= minDim {
			out = append(out, &Node{ID: uuid.New(), reg: c})
		}
	}

	return out
}
