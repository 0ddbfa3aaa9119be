// Package manifest reads ULD and parcel manifests and writes the output
// ledger, the CSV contract between cargopack and the outside world.
//
// ULD manifest rows: id,L,W,H,capacity.
// Parcel manifest rows: id,l,w,h,weight,class,delayCost -- class is "Priority"
// or "Economy"; delayCost is "-" for priority parcels, an integer otherwise.
//
// The output ledger's header line is "<total-cost>,<num-packed>,<num-ULDs-with-priority>",
// followed by one row per parcel: a packed row is
// "<id>,<uld-id>,<x1>,<y1>,<z1>,<x2>,<y2>,<z2>"; an unpacked row is
// "<id>,NONE,-1,-1,-1,-1,-1,-1".
//
// This package is the one place cargopack falls back to the standard
// library's encoding/csv rather than a third-party dependency: cargopack has
// no other use for a CSV or CLI-flag library, so there is nothing to ground
// a substitute choice on.
package manifest

import "errors"

// ErrMalformedRow is returned when a manifest row has the wrong field count
// or a field fails to parse as its expected type.
var ErrMalformedRow = errors.New("manifest: malformed row")

// ErrUnknownClass is returned when a parcel row's class column is neither
// "Priority" nor "Economy".
var ErrUnknownClass = errors.New("manifest: unknown parcel class")
