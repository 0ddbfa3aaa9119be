package freerect

import "github.com/katalvlaran/cargopack/uld"

// Region is a non-empty axis-aligned free region (x, y, z, dx, dy, dz).
type Region struct {
	Anchor uld.Anchor
	Extent uld.Dims
}

// Fits reports whether orientation o fits inside r without rotation:
// ol <= dx, ow <= dy, oh <= dz.
func (r Region) Fits(o uld.Dims) bool {
	return o.L <= r.Extent.L && o.W <= r.Extent.W && o.H <= r.Extent.H
}

// SurfaceArea returns dx*dy + dy*dz + dz*dx.
func (r Region) SurfaceArea() int64 {
	l, w, h := int64(r.Extent.L), int64(r.Extent.W), int64(r.Extent.H)
	return l*w + w*h + h*l
}

// Volume returns dx*dy*dz.
func (r Region) Volume() int64 { return r.Extent.Volume() }

// List is the ordered, possibly-overlapping sequence of free Regions owned
// by one ULD. The zero value is not usable; construct with NewList.
type List struct {
	// MinDimension is the smallest side among all parcels in the run; slabs
	// narrower than this on any axis are dropped rather than kept as
	// unusable slivers.
	MinDimension int

	regions []Region
}

// NewList seeds a List with one region spanning the whole ULD.
func NewList(dims uld.Dims, minDimension int) *List {
	return &List{
		MinDimension: minDimension,
		regions: []Region{
			{Anchor: uld.Anchor{}, Extent: dims},
		},
	}
}

// Regions returns the current free regions. The returned slice is owned by
// List; callers must not mutate it.
func (l *List) Regions() []Region { return l.regions }

// Len returns the number of tracked regions.
func (l *List) Len() int { return len(l.regions) }
