package packer

import (
	"github.com/katalvlaran/cargopack/placement"
	"github.com/katalvlaran/cargopack/uld"
)

// Representation selects which free-space representation backs each ULD.
type Representation int

const (
	// FreeRectRepresentation uses package freerect (representation A).
	FreeRectRepresentation Representation = iota
	// SpaceTreeRepresentation uses package spacetree (representation B).
	SpaceTreeRepresentation
)

// EconomyULDOrder selects how candidate ULDs are ordered for economy parcels.
type EconomyULDOrder int

const (
	// ByUtilisationAsc orders ULDs by current volume utilisation ascending,
	// so newly-filled ULDs concentrate later economy parcels. This is the
	// default.
	ByUtilisationAsc EconomyULDOrder = iota
	// ByRemainingWeightDesc orders ULDs by remaining weight capacity
	// descending.
	ByRemainingWeightDesc
)

// Config configures a Pack run.
type Config struct {
	// SpreadPenalty is S, the fixed cost charged once per ULD holding any
	// priority parcel.
	SpreadPenalty int64

	// Representation selects the free-space representation (A or B).
	Representation Representation

	// PlacementOptions configures the region/orientation tie-break policies,
	// shared by every ULD in the run.
	PlacementOptions placement.Options

	// EconomyULDOrder selects the economy ULD-ordering rule.
	EconomyULDOrder EconomyULDOrder

	// MinDimension is the smallest side below which free regions are
	// discarded rather than kept as unusable slivers. If zero, Pack computes
	// it as the smallest side among all supplied parcels.
	MinDimension int

	// ConcurrentProbing enables per-priority-parcel concurrent ULD probing.
	ConcurrentProbing bool
}

// Option configures a Config via the functional-option pattern.
type Option func(*Config)

// WithSpreadPenalty sets S, the per-ULD priority spread penalty.
func WithSpreadPenalty(s int64) Option {
	return func(c *Config) { c.SpreadPenalty = s }
}

// WithRepresentation selects the free-space representation.
func WithRepresentation(r Representation) Option {
	return func(c *Config) { c.Representation = r }
}

// WithPlacementOptions sets the region/orientation tie-break policies.
func WithPlacementOptions(o placement.Options) Option {
	return func(c *Config) { c.PlacementOptions = o }
}

// WithEconomyULDOrder selects the economy ULD-ordering rule.
func WithEconomyULDOrder(o EconomyULDOrder) Option {
	return func(c *Config) { c.EconomyULDOrder = o }
}

// WithMinDimension overrides the minimum free-region dimension m.
func WithMinDimension(m int) Option {
	return func(c *Config) { c.MinDimension = m }
}

// WithConcurrentProbing enables concurrent per-ULD probing for priority parcels.
func WithConcurrentProbing() Option {
	return func(c *Config) { c.ConcurrentProbing = true }
}

// DefaultConfig returns a Config with FirstFind/FirstFitRotation placement
// policies, ByUtilisationAsc economy ULD ordering, and concurrency disabled.
func DefaultConfig() Config {
	return Config{
		SpreadPenalty:     0,
		Representation:    FreeRectRepresentation,
		PlacementOptions:  placement.DefaultOptions(),
		EconomyULDOrder:   ByUtilisationAsc,
		ConcurrentProbing: false,
	}
}

// Result is the outcome of a Pack run.
type Result struct {
	// TotalCost is the sum of unpacked economy delay costs plus
	// SpreadPenalty * (number of ULDs holding any priority parcel).
	TotalCost int64

	// Packed holds one PlacementRecord per successfully committed parcel.
	Packed []uld.PlacementRecord

	// Unpacked holds every parcel that could not be packed (economy: a
	// recorded cost; priority: the cause of ErrPriorityUnpackable).
	Unpacked []*uld.Parcel

	// ULDsWithPriority is the number of ULDs that received at least one
	// priority parcel.
	ULDsWithPriority int
}
