package validator

import (
	"fmt"

	"github.com/katalvlaran/cargopack/uld"
)

// Violation describes one broken invariant, naming the offending parcel(s)
// and ULD so a caller can act on it without re-deriving the geometry itself.
type Violation struct {
	Kind    string // "containment", "overlap", "weight", "volume"
	ULDID   string
	Parcel  string
	Other   string // second parcel ID, only set for "overlap"
	Message string
}

// Report is the outcome of a Validate call.
type Report struct {
	Valid      bool
	Violations []Violation
}

// Validate re-derives I1 (containment), I2 (non-overlap), and the volume half
// of I3 from records alone, grouping records by ULD via ulds. The weight half
// of I3 is not derived from records: it compares each ULD's own committed-weight
// counter with its Capacity. It does not consult any free-space representation.
func Validate(ulds []*uld.ULD, records []uld.PlacementRecord) (Report, error) {
	byID := make(map[string]*uld.ULD, len(ulds))
	for _, u := range ulds {
		if u == nil {
			return Report{}, ErrNilULD
		}
		byID[u.ID] = u
	}

	var violations []Violation
	byULD := make(map[string][]uld.PlacementRecord)
	for _, r := range records {
		byULD[r.ULDID] = append(byULD[r.ULDID], r)
	}

	for uldID, recs := range byULD {
		u, ok := byID[uldID]
		if !ok {
			for _, r := range recs {
				violations = append(violations, Violation{
					Kind: "containment", ULDID: uldID, Parcel: r.ParcelID,
					Message: fmt.Sprintf("parcel %s references unknown ULD %s", r.ParcelID, uldID),
				})
			}
			continue
		}

		var volume int64
		for i, r := range recs {
			if !within(u.Dims, r.Anchor, r.Orientation) {
				violations = append(violations, Violation{
					Kind: "containment", ULDID: uldID, Parcel: r.ParcelID,
					Message: fmt.Sprintf("parcel %s box escapes ULD %s bounds", r.ParcelID, uldID),
				})
			}
			for j := i + 1; j < len(recs); j++ {
				if overlaps(r, recs[j]) {
					violations = append(violations, Violation{
						Kind: "overlap", ULDID: uldID, Parcel: r.ParcelID, Other: recs[j].ParcelID,
						Message: fmt.Sprintf("parcels %s and %s overlap in ULD %s", r.ParcelID, recs[j].ParcelID, uldID),
					})
				}
			}
			volume += r.Orientation.Volume()
		}

		// Weight is re-derived from the ULD's own committed-weight counter:
		// PlacementRecord does not carry parcel weight, so the only
		// independent source of truth for the weight check is the ULD itself
		// rather than the ledger.
		if cw := u.CommittedWeight(); cw > u.Capacity {
			violations = append(violations, Violation{
				Kind: "weight", ULDID: uldID,
				Message: fmt.Sprintf("ULD %s committed weight %d exceeds capacity %d", uldID, cw, u.Capacity),
			})
		}
		if volume > u.Volume() {
			violations = append(violations, Violation{
				Kind: "volume", ULDID: uldID,
				Message: fmt.Sprintf("ULD %s committed volume %d exceeds capacity %d", uldID, volume, u.Volume()),
			})
		}
	}

	return Report{Valid: len(violations) == 0, Violations: violations}, nil
}

// within reports whether the box anchored at a with orientation o lies
// entirely inside a container of the given dims, with a non-negative anchor (I1).
func within(container uld.Dims, a uld.Anchor, o uld.Dims) bool {
	return a.X >= 0 && a.Y >= 0 && a.Z >= 0 &&
		a.X+o.L <= container.L && a.Y+o.W <= container.W && a.Z+o.H <= container.H
}

// overlaps reports whether two placement records' boxes have non-empty
// intersection (I2 violation check).
func overlaps(a, b uld.PlacementRecord) bool {
	return a.Anchor.X < b.Anchor.X+b.Orientation.L && b.Anchor.X < a.Anchor.X+a.Orientation.L &&
		a.Anchor.Y < b.Anchor.Y+b.Orientation.W && b.Anchor.Y < a.Anchor.Y+a.Orientation.W &&
		a.Anchor.Z < b.Anchor.Z+b.Orientation.H && b.Anchor.Z < a.Anchor.Z+a.Orientation.H
}
