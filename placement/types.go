package placement

import "github.com/katalvlaran/cargopack/uld"

// RegionPolicy selects one Candidate among several admissible ones.
type RegionPolicy int

const (
	// FirstFind picks the first admissible candidate in iteration order.
	FirstFind RegionPolicy = iota
	// OriginBias picks the candidate with lexicographically minimal (x, y, z).
	OriginBias
	// MinLengthSum picks the candidate minimizing x+y+z.
	MinLengthSum
	// MaxLengthSum picks the candidate maximizing x+y+z.
	MaxLengthSum
	// MinSurfaceArea picks the candidate minimizing the region's surface area.
	MinSurfaceArea
	// MaxSurfaceArea picks the candidate maximizing the region's surface area.
	MaxSurfaceArea
	// MinVolume picks the candidate minimizing the region's volume.
	MinVolume
	// MaxVolume picks the candidate maximizing the region's volume.
	MaxVolume
	// LeastDiffSides picks the tightest fit: minimal (rl-ol)+(rw-ow)+(rh-oh).
	LeastDiffSides
	// Combined picks the candidate minimizing LeastDiffSides' score plus the
	// difference between the region's and the orientation's volume.
	Combined
)

// OrientationPolicy selects which of a parcel's up-to-six orientations to try.
type OrientationPolicy int

const (
	// NoRotate only tries the parcel's natural orientation.
	NoRotate OrientationPolicy = iota
	// FirstFitRotation tries orientations in order and stops at the first that fits.
	FirstFitRotation
	// MinRegionVolume tries every orientation and keeps the one yielding the
	// smallest admissible region (by RegionPolicy-selected candidate volume).
	MinRegionVolume
)

// Candidate is one admissible (region, token) pair reported by a Fitter for
// a given oriented parcel. Token is an opaque reference the Fitter can later
// resolve in Commit (a region index for freerect, a *spacetree.Node for
// spacetree); placement never inspects it.
type Candidate struct {
	Token  any
	Anchor uld.Anchor
	Extent uld.Dims
}

// Fitter is satisfied by a free-space representation (freerect.List or
// spacetree.Tree). Candidates must return only admissible candidates for the
// given oriented parcel (oriented extents <= region extents on every axis).
type Fitter interface {
	Candidates(orientation uld.Dims) []Candidate
	Commit(token any, anchor uld.Anchor, orientation uld.Dims) error
}

// Options configures a placement Query.
type Options struct {
	RegionPolicy      RegionPolicy
	OrientationPolicy OrientationPolicy
}

// Option configures Options via the functional-option pattern.
type Option func(*Options)

// WithRegionPolicy sets the region tie-break rule.
func WithRegionPolicy(p RegionPolicy) Option {
	return func(o *Options) { o.RegionPolicy = p }
}

// WithOrientationPolicy sets the orientation selection rule.
func WithOrientationPolicy(p OrientationPolicy) Option {
	return func(o *Options) { o.OrientationPolicy = p }
}

// DefaultOptions returns Options{RegionPolicy: FirstFind, OrientationPolicy: FirstFitRotation}.
func DefaultOptions() Options {
	return Options{
		RegionPolicy:      FirstFind,
		OrientationPolicy: FirstFitRotation,
	}
}
