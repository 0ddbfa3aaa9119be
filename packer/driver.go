package packer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/cargopack/freerect"
	"github.com/katalvlaran/cargopack/placement"
	"github.com/katalvlaran/cargopack/spacetree"
	"github.com/katalvlaran/cargopack/uld"
)

// uldState pairs a ULD with its free-space representation and a mutex
// guarding that representation as a single-owner resource: only one commit
// into this ULD may proceed at a time, whether the driver is running
// sequentially or with concurrent probing enabled.
type uldState struct {
	mu     sync.Mutex
	u      *uld.ULD
	fitter placement.Fitter
}

func newFitter(rep Representation, dims uld.Dims, minDim int) placement.Fitter {
	if rep == SpaceTreeRepresentation {
		return spacetree.NewTree(dims, minDim)
	}
	return freerect.NewList(dims, minDim)
}

// Pack runs the pack driver over ulds and parcels under cfg, in place:
// it mutates every ULD and parcel it successfully commits. It returns
// ErrPriorityUnpackable (wrapped with the offending parcel IDs) if any
// priority parcel could not be packed; Result is populated regardless, so a
// caller can inspect exactly how far the run got.
func Pack(ulds []*uld.ULD, parcels []*uld.Parcel, opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinDimension <= 0 {
		cfg.MinDimension = minDimensionOf(parcels)
	}

	states := make([]*uldState, 0, len(ulds))
	for _, u := range ulds {
		states = append(states, &uldState{
			u:      u,
			fitter: newFitter(cfg.Representation, u.Dims, cfg.MinDimension),
		})
	}

	priority, economy := orderParcels(parcels)

	var result Result
	var unpackablePriority []string

	priorityOrder := orderULDsForPriority(states)
	for _, p := range priority {
		var rec uld.PlacementRecord
		var ok bool
		if cfg.ConcurrentProbing {
			rec, ok = probeConcurrent(priorityOrder, p, cfg.PlacementOptions)
		} else {
			rec, ok = probeSequential(priorityOrder, p, cfg.PlacementOptions)
		}
		if ok {
			result.Packed = append(result.Packed, rec)
		} else {
			unpackablePriority = append(unpackablePriority, p.ID)
			result.Unpacked = append(result.Unpacked, p)
		}
	}

	for _, p := range economy {
		// Utilisation/remaining-weight shift after every commit, so the
		// economy order is recomputed for each parcel rather than once up front.
		order := orderULDsForEconomy(states, cfg.EconomyULDOrder)
		rec, ok := probeSequential(order, p, cfg.PlacementOptions)
		if ok {
			result.Packed = append(result.Packed, rec)
		} else {
			result.Unpacked = append(result.Unpacked, p)
			result.TotalCost += int64(p.DelayCost)
		}
	}

	uldsWithPriority := 0
	for _, s := range states {
		if s.u.HasPriority() {
			uldsWithPriority++
		}
	}
	result.ULDsWithPriority = uldsWithPriority
	result.TotalCost += cfg.SpreadPenalty * int64(uldsWithPriority)

	if len(unpackablePriority) > 0 {
		return result, fmt.Errorf("%w: %v", ErrPriorityUnpackable, unpackablePriority)
	}

	return result, nil
}

// minDimensionOf computes the smallest side among all parcels.
func minDimensionOf(parcels []*uld.Parcel) int {
	best := 0
	for _, p := range parcels {
		for _, side := range [3]int{p.Natural.L, p.Natural.W, p.Natural.H} {
			if best == 0 || (side > 0 && side < best) {
				best = side
			}
		}
	}
	if best == 0 {
		best = 1
	}
	return best
}

// admissibleByWeight reports whether committing p into s would stay within
// capacity, checked before the placement query runs at all.
func admissibleByWeight(s *uldState, p *uld.Parcel) bool {
	return p.Weight+s.u.CommittedWeight() <= s.u.Capacity
}

// attemptCommit runs the placement query and, on a hit, commits p into s's
// representation and ULD. It assumes the caller already holds s.mu.
func attemptCommit(s *uldState, p *uld.Parcel, popts placement.Options) (uld.PlacementRecord, bool) {
	if !admissibleByWeight(s, p) {
		return uld.PlacementRecord{}, false
	}
	res, err := placement.Query(s.fitter, p.Natural, popts)
	if err != nil {
		return uld.PlacementRecord{}, false
	}
	if err := placement.Commit(s.fitter, res, res.Candidate.Anchor); err != nil {
		return uld.PlacementRecord{}, false
	}
	if err := p.MarkCommitted(s.u.ID, res.Candidate.Anchor, res.Orientation); err != nil {
		panic(fmt.Errorf("packer: %s: %w", p.ID, err))
	}
	if err := s.u.Commit(p); err != nil {
		panic(fmt.Errorf("packer: %s already weight-checked but ULD.Commit failed: %w", p.ID, err))
	}
	rec, _ := uld.RecordOf(p)

	return rec, true
}

// probeSequential tries each ULD in order and stops at the first success.
func probeSequential(states []*uldState, p *uld.Parcel, popts placement.Options) (uld.PlacementRecord, bool) {
	for _, s := range states {
		s.mu.Lock()
		rec, ok := attemptCommit(s, p, popts)
		s.mu.Unlock()
		if ok {
			return rec, true
		}
	}
	return uld.PlacementRecord{}, false
}

// probeConcurrent probes every candidate ULD at once. Each goroutine
// locks only its own ULD's mutex, so distinct ULDs never contend; an atomic
// claim on the parcel ensures that even if two ULDs admit it, only the
// goroutine that wins the claim proceeds to Commit -- the rest bail out
// before touching their ULD's state.
func probeConcurrent(states []*uldState, p *uld.Parcel, popts placement.Options) (uld.PlacementRecord, bool) {
	var claimed int32
	var wg sync.WaitGroup
	results := make(chan uld.PlacementRecord, len(states))

	for _, s := range states {
		wg.Add(1)
		go func(s *uldState) {
			defer wg.Done()
			s.mu.Lock()
			defer s.mu.Unlock()

			if !admissibleByWeight(s, p) {
				return
			}
			res, err := placement.Query(s.fitter, p.Natural, popts)
			if err != nil {
				return
			}
			if !atomic.CompareAndSwapInt32(&claimed, 0, 1) {
				return // another ULD already won the claim for this parcel
			}
			if err := placement.Commit(s.fitter, res, res.Candidate.Anchor); err != nil {
				panic(fmt.Errorf("packer: %s: commit failed after winning claim: %w", p.ID, err))
			}
			if err := p.MarkCommitted(s.u.ID, res.Candidate.Anchor, res.Orientation); err != nil {
				panic(fmt.Errorf("packer: %s: %w", p.ID, err))
			}
			if err := s.u.Commit(p); err != nil {
				panic(fmt.Errorf("packer: %s already weight-checked but ULD.Commit failed: %w", p.ID, err))
			}
			rec, _ := uld.RecordOf(p)
			results <- rec
		}(s)
	}

	wg.Wait()
	close(results)
	rec, ok := <-results

	return rec, ok
}
