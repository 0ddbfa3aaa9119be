// Package spacetree implements a DAG of free-space regions per ULD, where
// leaves hold live free volume and non-leaf nodes are historical containers
// whose free volume is entirely represented by descendants.
//
// Leaves may overlap; an explicit, symmetric overlap-edge list on each leaf
// records which sibling/peer leaves share volume with it above the minimum
// dimension threshold. Placing a parcel subdivides every node the parcel's
// box touches -- the leaf it was found in, plus every overlapping neighbour
// -- and rewires the overlap graph in two phases (collect, then apply) so
// that no node is visited mid-subdivision, the way lvlath/core separates
// read and mutate phases under its adjacency-list locks.
//
// Node identity is a github.com/google/uuid.UUID, used purely for
// diagnostics: panic messages and CheckInvariants violation messages name
// the offending node by a short, stable identity instead of a raw pointer.
//
// Traversal: search walks live leaves in breadth-first or depth-first order,
// reusing lvlath/bfs and lvlath/dfs's queue/stack walker shape generalised
// from graph vertices to tree leaves.
//
// Errors:
//
//	ErrDegenerateTree     - names a tree with non-positive dimensions; NewTree does not check its dimensions and no function here returns it.
//	ErrNotLeaf            - Commit/Place was asked to subdivide a non-leaf node (programmer error).
//	ErrOutOfBounds        - the parcel box does not lie within the given leaf (programmer error).
package spacetree

import "errors"

// Sentinel errors for space-tree operations.
var (
	// ErrDegenerateTree names a tree with a non-positive dimension. NewTree
	// does not validate its dimensions, so no function in this package
	// returns it.
	ErrDegenerateTree = errors.New("spacetree: degenerate tree dimensions")

	// ErrNotLeaf indicates Commit was asked to place into a non-leaf node.
	ErrNotLeaf = errors.New("spacetree: target node is not a leaf")

	// ErrOutOfBounds indicates the parcel box does not lie within the target leaf.
	ErrOutOfBounds = errors.New("spacetree: parcel box escapes leaf region")
)
