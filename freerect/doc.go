// Package freerect implements a flat, possibly-overlapping list of
// axis-aligned free regions per ULD -- the free-rectangle-list free-space
// representation.
//
// A region (x, y, z, dx, dy, dz) is a candidate fit for a parcel orientation
// (ol, ow, oh) iff ol <= dx, ow <= dy, oh <= dz. On commit, every region that
// intersects the placed parcel's box is replaced by up to six axis-aligned
// slabs describing "region minus parcel box"; regions may overlap one
// another afterwards — the representation's only invariant is that their
// union covers all free volume not shrunk below the minimum dimension m.
//
// This mirrors gridgraph's flat-slice-of-cells model (github.com/katalvlaran/lvlath/gridgraph)
// generalised from a 2-D grid to 3-D free rectangles, and reuses lvlath's
// convention of a package-level MinDimension/threshold guard on every
// mutating operation.
//
// Errors:
//
//	ErrDegenerateRegion - a region or parcel with a non-positive extent was supplied.
//	ErrAnchorOutOfRegion - commit's anchor does not lie inside the given region.
package freerect

import "errors"

// Sentinel errors for free-rectangle-list operations.
var (
	// ErrDegenerateRegion indicates a region or orientation with extent <= 0.
	ErrDegenerateRegion = errors.New("freerect: degenerate region or orientation")

	// ErrAnchorOutOfRegion indicates Commit's anchor does not lie inside the named region.
	ErrAnchorOutOfRegion = errors.New("freerect: anchor outside region bounds")
)
