// Package placement implements the placement-policy menu: the rules shared
// by both free-space representations (freerect, spacetree) for choosing
// among admissible fits and for choosing a parcel's orientation.
//
// A representation satisfies the Fitter interface by returning, for a given
// oriented parcel, the list of Candidate regions/leaves that admit it
// (oriented extents <= region extents on every axis), and by applying a
// chosen Candidate's Token back to its own state in Commit. placement itself
// holds no free-space state; it is pure selection logic over whatever a
// Fitter reports, the way lvlath/dijkstra holds pure algorithm logic over
// whatever a *core.Graph reports.
//
// Region tie-break policies: FirstFind, OriginBias, MinLengthSum,
// MaxLengthSum, MinSurfaceArea, MaxSurfaceArea, MinVolume, MaxVolume,
// LeastDiffSides, Combined.
//
// Orientation policies: NoRotate, FirstFitRotation, MinRegionVolume.
//
// Errors:
//
//	ErrNoFitter    - a nil Fitter was supplied to Query.
//	ErrNoCandidate - Query found no admissible (region, orientation) pair.
package placement

import "errors"

// Sentinel errors for placement queries.
var (
	// ErrNoFitter indicates a nil Fitter was supplied to Query.
	ErrNoFitter = errors.New("placement: fitter is nil")

	// ErrNoCandidate indicates no admissible (region, orientation) pair was found.
	ErrNoCandidate = errors.New("placement: no admissible candidate")
)
