// Package validator implements the user-visible correctness gate: it
// re-derives the containment, non-overlap, and volume invariants directly
// from the placement ledger, independent of whichever free-space
// representation produced it. The weight invariant is checked against each
// ULD's committed-weight counter, since placement records carry no parcel
// weight. A non-empty Violations list means the run is reported failed.
//
// Validate is pure and idempotent: calling it twice on the same ULDs/records
// gives the same verdict, since it only reads committed state.
package validator

import "errors"

// ErrNilULD indicates a nil *uld.ULD appeared among the ULDs passed to Validate.
var ErrNilULD = errors.New("validator: nil ULD in input")
