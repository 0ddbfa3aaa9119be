package spacetree

import "github.com/katalvlaran/cargopack/uld"

// box returns the region covered by an oriented parcel anchored at a.
func box(a uld.Anchor, o uld.Dims) region {
	return region{Anchor: a, Extent: o}
}

func point(x, y, z int) uld.Anchor { return uld.Anchor{X: x, Y: y, Z: z} }

func dims(l, w, h int) uld.Dims { return uld.Dims{L: l, W: w, H: h} }

// intersects reports whether a and b share any volume.
func intersects(a, b region) bool {
	return a.Anchor.X < b.Anchor.X+b.Extent.L && b.Anchor.X < a.Anchor.X+a.Extent.L &&
		a.Anchor.Y < b.Anchor.Y+b.Extent.W && b.Anchor.Y < a.Anchor.Y+a.Extent.W &&
		a.Anchor.Z < b.Anchor.Z+b.Extent.H && b.Anchor.Z < a.Anchor.Z+a.Extent.H
}

// intersect returns the geometric intersection of a and b, and false if
// they do not overlap.
func intersect(a, b region) (region, bool) {
	if !intersects(a, b) {
		return region{}, false
	}
	x0 := maxInt(a.Anchor.X, b.Anchor.X)
	y0 := maxInt(a.Anchor.Y, b.Anchor.Y)
	z0 := maxInt(a.Anchor.Z, b.Anchor.Z)
	x1 := minInt(a.Anchor.X+a.Extent.L, b.Anchor.X+b.Extent.L)
	y1 := minInt(a.Anchor.Y+a.Extent.W, b.Anchor.Y+b.Extent.W)
	z1 := minInt(a.Anchor.Z+a.Extent.H, b.Anchor.Z+b.Extent.H)

	return region{
		Anchor: uld.Anchor{X: x0, Y: y0, Z: z0},
		Extent: uld.Dims{L: x1 - x0, W: y1 - y0, H: z1 - z0},
	}, true
}

// contains reports whether outer fully contains inner.
func contains(outer, inner region) bool {
	return inner.Anchor.X >= outer.Anchor.X && inner.Anchor.Y >= outer.Anchor.Y && inner.Anchor.Z >= outer.Anchor.Z &&
		inner.Anchor.X+inner.Extent.L <= outer.Anchor.X+outer.Extent.L &&
		inner.Anchor.Y+inner.Extent.W <= outer.Anchor.Y+outer.Extent.W &&
		inner.Anchor.Z+inner.Extent.H <= outer.Anchor.Z+outer.Extent.H
}

// qualifies reports whether the overlap between a and b has every dimension
// >= minDim (the T3 threshold for recording an overlap edge).
func qualifies(a, b region, minDim int) bool {
	ov, ok := intersect(a, b)
	if !ok {
		return false
	}
	return ov.Extent.L >= minDim && ov.Extent.W >= minDim && ov.Extent.H >= minDim
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
