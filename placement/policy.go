package placement

import "github.com/katalvlaran/cargopack/uld"

// score returns a comparison key for cand under orientation o per policy p.
// Lower is "better" for every policy; Max* policies negate their natural key
// so that selectBest (which always keeps the minimum) picks the maximal one.
func score(p RegionPolicy, cand Candidate, o Orientation) int64 {
	r := cand.Extent
	switch p {
	case FirstFind:
		return 0 // caller relies on stable iteration order, not the score
	case OriginBias:
		// Packed lexicographic key: works because coordinates are small
		// non-negative integers bounded well under 2^20 in any real manifest.
		return int64(cand.Anchor.X)<<40 | int64(cand.Anchor.Y)<<20 | int64(cand.Anchor.Z)
	case MinLengthSum:
		return int64(cand.Anchor.X + cand.Anchor.Y + cand.Anchor.Z)
	case MaxLengthSum:
		return -int64(cand.Anchor.X + cand.Anchor.Y + cand.Anchor.Z)
	case MinSurfaceArea:
		return surfaceArea(r)
	case MaxSurfaceArea:
		return -surfaceArea(r)
	case MinVolume:
		return r.Volume()
	case MaxVolume:
		return -r.Volume()
	case LeastDiffSides:
		return diffSides(r, o.oriented)
	case Combined:
		return diffSides(r, o.oriented) + (r.Volume() - o.oriented.Volume())
	default:
		return 0
	}
}

func surfaceArea(d uld.Dims) int64 {
	l, w, h := int64(d.L), int64(d.W), int64(d.H)
	return l*w + w*h + h*l
}

func diffSides(r, o uld.Dims) int64 {
	return int64((r.L - o.L) + (r.W - o.W) + (r.H - o.H))
}

// Orientation pairs an oriented uld.Dims with the Candidate list it admits.
type Orientation struct {
	oriented   uld.Dims
	candidates []Candidate
}

// selectBest returns the Candidate minimizing score(policy, ., o), breaking
// ties by first occurrence (stable), matching FirstFind's own contract when
// every score happens to tie.
func selectBest(policy RegionPolicy, o Orientation) (Candidate, bool) {
	if len(o.candidates) == 0 {
		return Candidate{}, false
	}
	if policy == FirstFind {
		return o.candidates[0], true
	}

	best := o.candidates[0]
	bestScore := score(policy, best, o)
	for _, c := range o.candidates[1:] {
		s := score(policy, c, o)
		if s < bestScore {
			best, bestScore = c, s
		}
	}

	return best, true
}
