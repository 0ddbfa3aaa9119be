// Package uld defines the ULD (Unit Load Device) and Parcel data model shared
// by every representation and policy in cargopack.
//
// A ULD is a rectangular container with integer dimensions (L, W, H) in
// centimetres and an integer weight capacity in kilograms. A Parcel is an
// axis-aligned rectangular package with natural dimensions (l, w, h), a
// weight, a service Class (Priority or Economy), and — for Economy parcels
// only — a delay cost charged if the parcel ships unpacked.
//
// ULD mutation (committed weight and volume) is guarded by a per-ULD mutex so
// that the packer (package packer) can probe several ULDs concurrently for a
// single priority parcel while guaranteeing that only one commit per ULD
// proceeds at a time.
//
// Errors:
//
//	ErrNilULD          - a nil *ULD was passed where one is required.
//	ErrNilParcel       - a nil *Parcel was passed where one is required.
//	ErrWeightExceeded  - committing a parcel would exceed ULD.Capacity.
//	ErrVolumeExceeded  - committing a parcel would exceed the ULD's volume.
//	ErrAlreadyCommitted - the parcel already carries a committed Orientation.
package uld

import "errors"

// Sentinel errors for ULD/Parcel mutation.
var (
	// ErrNilULD indicates a nil *ULD was passed where one is required.
	ErrNilULD = errors.New("uld: ULD is nil")

	// ErrNilParcel indicates a nil *Parcel was passed where one is required.
	ErrNilParcel = errors.New("uld: parcel is nil")

	// ErrWeightExceeded indicates committing a parcel would exceed ULD.Capacity.
	ErrWeightExceeded = errors.New("uld: committed weight would exceed capacity")

	// ErrVolumeExceeded indicates committing a parcel would exceed the ULD volume.
	ErrVolumeExceeded = errors.New("uld: committed volume would exceed ULD volume")

	// ErrAlreadyCommitted indicates the parcel already carries a committed orientation.
	ErrAlreadyCommitted = errors.New("uld: parcel already committed")
)
