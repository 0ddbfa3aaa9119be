package freerect

import (
	"github.com/katalvlaran/cargopack/placement"
	"github.com/katalvlaran/cargopack/uld"
)

// Candidates returns, for the given oriented parcel, every region admitting
// it. Token is the region's current index, resolved again at Commit time
// since regions are mutated in place between calls.
func (l *List) Candidates(orientation uld.Dims) []placement.Candidate {
	out := make([]placement.Candidate, 0, len(l.regions))
	for i, r := range l.regions {
		if r.Fits(orientation) {
			out = append(out, placement.Candidate{
				Token:  i,
				Anchor: r.Anchor,
				Extent: r.Extent,
			})
		}
	}

	return out
}

// Commit places an oriented parcel at anchor and reshapes the free-rectangle
// list accordingly. The anchor must lie within the region identified by
// token; every region in the list -- not only that one -- is tested against
// the parcel box, since other regions may also overlap it.
//
// For each region disjoint from the parcel box, the region is kept
// unchanged. For each region intersecting the box, the region is replaced by
// whichever of the six axis-aligned slabs have every extent >=
// l.MinDimension.
func (l *List) Commit(token any, anchor uld.Anchor, orientation uld.Dims) error {
	idx, ok := token.(int)
	if !ok || idx < 0 || idx >= len(l.regions) {
		return ErrAnchorOutOfRegion
	}
	chosen := l.regions[idx]
	if orientation.L <= 0 || orientation.W <= 0 || orientation.H <= 0 ||
		chosen.Extent.L <= 0 || chosen.Extent.W <= 0 || chosen.Extent.H <= 0 {
		return ErrDegenerateRegion
	}
	if !withinRegion(chosen, anchor, orientation) {
		return ErrAnchorOutOfRegion
	}

	next := make([]Region, 0, len(l.regions)+5)
	for _, r := range l.regions {
		if disjoint(r, anchor, orientation) {
			next = append(next, r)
			continue
		}
		next = append(next, subdivide(r, anchor, orientation, l.MinDimension)...)
	}
	l.regions = next

	return nil
}

// withinRegion reports whether the parcel box anchored at (x,y,z) with the
// given orientation lies entirely inside r.
func withinRegion(r Region, a uld.Anchor, o uld.Dims) bool {
	return a.X >= r.Anchor.X && a.Y >= r.Anchor.Y && a.Z >= r.Anchor.Z &&
		a.X+o.L <= r.Anchor.X+r.Extent.L &&
		a.Y+o.W <= r.Anchor.Y+r.Extent.W &&
		a.Z+o.H <= r.Anchor.Z+r.Extent.H
}

// disjoint reports whether the parcel box anchored at a with orientation o
// has an empty intersection with region r.
func disjoint(r Region, a uld.Anchor, o uld.Dims) bool {
	return a.X+o.L <= r.Anchor.X || a.X >= r.Anchor.X+r.Extent.L ||
		a.Y+o.W <= r.Anchor.Y || a.Y >= r.Anchor.Y+r.Extent.W ||
		a.Z+o.H <= r.Anchor.Z || a.Z >= r.Anchor.Z+r.Extent.H
}

// subdivide emits up to six axis-aligned slabs describing "region minus
// parcel box", dropping any slab with an extent below minDim on any axis.
func subdivide(r Region, a uld.Anchor, o uld.Dims, minDim int) []Region {
	ax, ay, az := r.Anchor.X, r.Anchor.Y, r.Anchor.Z
	al, aw, ah := r.Extent.L, r.Extent.W, r.Extent.H
	x, y, z := a.X, a.Y, a.Z
	ol, ow, oh := o.L, o.W, o.H

	candidates := []Region{
		{Anchor: uld.Anchor{X: ax, Y: y + ow, Z: az}, Extent: uld.Dims{L: al, W: aw - (y + ow - ay), H: ah}},      // +Y
		{Anchor: uld.Anchor{X: ax, Y: ay, Z: az}, Extent: uld.Dims{L: al, W: y - ay, H: ah}},                      // -Y
		{Anchor: uld.Anchor{X: ax, Y: ay, Z: az}, Extent: uld.Dims{L: x - ax, W: aw, H: ah}},                      // -X
		{Anchor: uld.Anchor{X: x + ol, Y: ay, Z: az}, Extent: uld.Dims{L: al - (x + ol - ax), W: aw, H: ah}},      // +X
		{Anchor: uld.Anchor{X: ax, Y: ay, Z: az}, Extent: uld.Dims{L: al, W: aw, H: z - az}},                      // -Z
		{Anchor: uld.Anchor{X: ax, Y: ay, Z: z + oh}, Extent: uld.Dims{L: al, W: aw, H: ah - (z + oh - az)}},      // +Z
	}

	out := make([]Region, 0, 6)
	for _, c := range candidates {
		if c.Extent.L >= minDim && c.Extent.W >= minDim && c.Extent.H >= minDim {
			out = append(out, c)
		}
	}

	return out
}
