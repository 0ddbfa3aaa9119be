// Package packer implements the pack driver: it orders parcels and ULDs,
// drives the placement query (package placement) against whichever
// free-space representation (package freerect or package spacetree) the
// caller selected, commits successful placements, and accumulates cost.
//
// Parcel ordering: priority parcels by volume descending, then economy
// parcels by value-density (delay cost / volume) descending, ties broken by
// weight/volume descending -- both compared with math/big.Rat rather than
// float64 so equal keys never flip order under rounding.
//
// ULD ordering: for priority parcels, by ULD volume descending; for economy
// parcels, by current utilisation ascending (or, under
// WithEconomyULDOrder(ByRemainingWeightDesc), by remaining weight capacity
// descending).
//
// Concurrency: WithConcurrentProbing lets the driver probe several ULDs at
// once for a single priority parcel. Querying a free-space representation is
// read-only and touches only that ULD's own state, so concurrent queries
// across distinct ULDs never race; an atomic claim on the parcel itself
// ensures only one ULD's goroutine ever proceeds to Commit, and that commit
// runs under the winning ULD's own mutex -- first successful commit wins,
// under a ULD-local lock, with each ULD's free-space state treated as a
// single-owner resource. Parcels themselves are always processed strictly
// sequentially; only the ULD probe for one parcel is parallelised.
//
// Errors:
//
//	ErrPriorityUnpackable - one or more priority parcels could not be packed (fatal).
package packer

import "errors"

// ErrPriorityUnpackable indicates at least one priority parcel could not be
// packed into any ULD. This is a fatal plan-level error, not a recorded
// "unpacked" outcome; Result still reports everything the driver managed to
// place before surfacing it.
var ErrPriorityUnpackable = errors.New("packer: one or more priority parcels could not be packed")
