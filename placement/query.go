package placement

import "github.com/katalvlaran/cargopack/uld"

// Result is the outcome of a successful Query: the chosen Candidate and the
// oriented dimensions it was matched against.
type Result struct {
	Candidate   Candidate
	Orientation uld.Dims
}

// Query selects a (candidate, orientation) pair for natural, consulting f for
// admissible candidates under each tried orientation and applying opts'
// OrientationPolicy and RegionPolicy. It returns ErrNoFitter if f is nil and
// ErrNoCandidate if no orientation admits any candidate.
func Query(f Fitter, natural uld.Dims, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNoFitter
	}

	switch opts.OrientationPolicy {
	case NoRotate:
		cands := f.Candidates(natural)
		best, ok := selectBest(opts.RegionPolicy, Orientation{oriented: natural, candidates: cands})
		if !ok {
			return Result{}, ErrNoCandidate
		}
		return Result{Candidate: best, Orientation: natural}, nil

	case FirstFitRotation:
		for _, o := range natural.Orientations() {
			cands := f.Candidates(o)
			if len(cands) == 0 {
				continue
			}
			best, ok := selectBest(opts.RegionPolicy, Orientation{oriented: o, candidates: cands})
			if ok {
				return Result{Candidate: best, Orientation: o}, nil
			}
		}
		return Result{}, ErrNoCandidate

	case MinRegionVolume:
		var (
			found   bool
			bestRes Result
			bestVol int64
		)
		for _, o := range natural.Orientations() {
			cands := f.Candidates(o)
			if len(cands) == 0 {
				continue
			}
			cand, ok := selectBest(opts.RegionPolicy, Orientation{oriented: o, candidates: cands})
			if !ok {
				continue
			}
			if !found || cand.Extent.Volume() < bestVol {
				found = true
				bestVol = cand.Extent.Volume()
				bestRes = Result{Candidate: cand, Orientation: o}
			}
		}
		if !found {
			return Result{}, ErrNoCandidate
		}
		return bestRes, nil

	default:
		return Result{}, ErrNoCandidate
	}
}

// Commit applies res to f, fixing the parcel's anchor and orientation in the
// underlying representation.
func Commit(f Fitter, res Result, anchor uld.Anchor) error {
	return f.Commit(res.Candidate.Token, anchor, res.Orientation)
}
