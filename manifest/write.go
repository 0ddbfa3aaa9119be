package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/cargopack/uld"
)

// WriteLedger writes the output ledger to w: a header line
// of totalCost,numPacked,numULDsWithPriority, then one row per parcel in
// parcels -- packed parcels carry their committed box, unpacked parcels carry
// the NONE sentinel row. Rows are emitted in the order parcels is given, not
// the order parcels were packed.
func WriteLedger(w io.Writer, parcels []*uld.Parcel, totalCost int64, uldsWithPriority int) error {
	cw := csv.NewWriter(w)

	packedCount := 0
	for _, p := range parcels {
		if p.Committed() {
			packedCount++
		}
	}

	if err := cw.Write([]string{
		fmt.Sprint(totalCost),
		fmt.Sprint(packedCount),
		fmt.Sprint(uldsWithPriority),
	}); err != nil {
		return err
	}

	for _, p := range parcels {
		if !p.Committed() {
			if err := cw.Write([]string{p.ID, "NONE", "-1", "-1", "-1", "-1", "-1", "-1"}); err != nil {
				return err
			}
			continue
		}
		min, max := p.Box()
		if err := cw.Write([]string{
			p.ID, p.ULDID,
			fmt.Sprint(min.X), fmt.Sprint(min.Y), fmt.Sprint(min.Z),
			fmt.Sprint(max.X), fmt.Sprint(max.Y), fmt.Sprint(max.Z),
		}); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// SortByID sorts parcels by ID ascending, the deterministic ledger row order
// cmd/cargopack uses regardless of pack order.
func SortByID(parcels []*uld.Parcel) {
	sort.SliceStable(parcels, func(i, j int) bool { return parcels[i].ID < parcels[j].ID })
}
