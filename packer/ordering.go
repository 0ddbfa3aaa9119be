package packer

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/cargopack/uld"
)

// orderParcels splits parcels into priority (sorted by volume descending)
// and economy (sorted by value-density descending, ties by weight/volume
// descending). Both comparisons use math/big.Rat so that equal keys never
// flip order under floating-point rounding.
func orderParcels(parcels []*uld.Parcel) (priority, economy []*uld.Parcel) {
	for _, p := range parcels {
		if p.Class == uld.Priority {
			priority = append(priority, p)
		} else {
			economy = append(economy, p)
		}
	}

	sort.SliceStable(priority, func(i, j int) bool {
		return priority[i].Volume() > priority[j].Volume()
	})

	sort.SliceStable(economy, func(i, j int) bool {
		return economyLess(economy[j], economy[i]) // descending: j < i means i is "greater"
	})

	return priority, economy
}

// valueDensity returns delayCost/volume as an exact rational.
func valueDensity(p *uld.Parcel) *big.Rat {
	return big.NewRat(int64(p.DelayCost), p.Volume())
}

// weightDensity returns weight/volume as an exact rational.
func weightDensity(p *uld.Parcel) *big.Rat {
	return big.NewRat(int64(p.Weight), p.Volume())
}

// economyLess reports whether a sorts before b under ascending value-density,
// ties broken by ascending weight-density (denser goods pack first, i.e.
// sort after -- callers invert for descending order).
func economyLess(a, b *uld.Parcel) bool {
	cmp := valueDensity(a).Cmp(valueDensity(b))
	if cmp != 0 {
		return cmp < 0
	}
	return weightDensity(a).Cmp(weightDensity(b)) < 0
}

// orderULDsForPriority orders ulds by volume descending.
func orderULDsForPriority(states []*uldState) []*uldState {
	out := append([]*uldState(nil), states...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].u.Volume() > out[j].u.Volume()
	})
	return out
}

// orderULDsForEconomy orders ulds per cfg.EconomyULDOrder.
func orderULDsForEconomy(states []*uldState, order EconomyULDOrder) []*uldState {
	out := append([]*uldState(nil), states...)
	switch order {
	case ByRemainingWeightDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].u.RemainingWeight() > out[j].u.RemainingWeight()
		})
	default: // ByUtilisationAsc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].u.Utilisation() < out[j].u.Utilisation()
		})
	}
	return out
}
