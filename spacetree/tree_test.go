package spacetree_test

import (
	"testing"

	"github.com/katalvlaran/cargopack/spacetree"
	"github.com/katalvlaran/cargopack/uld"
	"github.com/stretchr/testify/require"
)

func TestTree_Candidates_RootFits(t *testing.T) {
	tr := spacetree.NewTree(uld.Dims{L: 100, W: 100, H: 100}, 5)
	cands := tr.Candidates(uld.Dims{L: 60, W: 60, H: 60})
	require.Len(t, cands, 1)
	require.Equal(t, tr.Root(), cands[0].Token)
}

func TestTree_Commit_SubdividesRootAndTracksLeaves(t *testing.T) {
	tr := spacetree.NewTree(uld.Dims{L: 100, W: 100, H: 100}, 5)
	cands := tr.Candidates(uld.Dims{L: 60, W: 60, H: 60})
	require.NoError(t, tr.Commit(cands[0].Token, uld.Anchor{}, uld.Dims{L: 60, W: 60, H: 60}))

	require.False(t, tr.Root().IsLeaf())
	require.Empty(t, tr.CheckInvariants())

	cands2 := tr.Candidates(uld.Dims{L: 4, W: 4, H: 4})
	require.NotEmpty(t, cands2, "remaining free volume should still admit a small parcel")
}

func TestTree_Commit_MultiplePlacementsKeepInvariants(t *testing.T) {
	tr := spacetree.NewTree(uld.Dims{L: 10, W: 10, H: 10}, 1)
	placed := 0
	for i := 0; i < 8; i++ {
		cands := tr.Candidates(uld.Dims{L: 5, W: 5, H: 5})
		if len(cands) == 0 {
			break
		}
		require.NoError(t, tr.Commit(cands[0].Token, cands[0].Anchor, uld.Dims{L: 5, W: 5, H: 5}))
		placed++
		require.Empty(t, tr.CheckInvariants(), "after placement %d", i)
	}
	require.Equal(t, 8, placed, "eight 5x5x5 parcels should fill a 10x10x10 ULD exactly")
}

func TestTree_Commit_NotALeaf_Panics(t *testing.T) {
	tr := spacetree.NewTree(uld.Dims{L: 10, W: 10, H: 10}, 1)
	root := tr.Root()
	require.NoError(t, tr.Commit(root, uld.Anchor{}, uld.Dims{L: 2, W: 2, H: 2}))

	require.Panics(t, func() {
		_ = tr.Commit(root, uld.Anchor{X: 5, Y: 5, Z: 5}, uld.Dims{L: 1, W: 1, H: 1})
	})
}

func TestTree_Commit_OutOfBounds_Panics(t *testing.T) {
	tr := spacetree.NewTree(uld.Dims{L: 10, W: 10, H: 10}, 1)
	root := tr.Root()
	require.Panics(t, func() {
		_ = tr.Commit(root, uld.Anchor{X: 8, Y: 8, Z: 8}, uld.Dims{L: 5, W: 5, H: 5})
	})
}

func TestTree_DFSOrder_VisitsSameLeafSet(t *testing.T) {
	trBFS := spacetree.NewTree(uld.Dims{L: 20, W: 20, H: 20}, 1)
	trDFS := spacetree.NewTree(uld.Dims{L: 20, W: 20, H: 20}, 1, spacetree.WithOrder(spacetree.DFSOrder))

	cb := trBFS.Candidates(uld.Dims{L: 5, W: 5, H: 5})
	require.NoError(t, trBFS.Commit(cb[0].Token, uld.Anchor{}, uld.Dims{L: 5, W: 5, H: 5}))
	cd := trDFS.Candidates(uld.Dims{L: 5, W: 5, H: 5})
	require.NoError(t, trDFS.Commit(cd[0].Token, uld.Anchor{}, uld.Dims{L: 5, W: 5, H: 5}))

	require.Len(t, trBFS.Candidates(uld.Dims{L: 1, W: 1, H: 1}), len(trDFS.Candidates(uld.Dims{L: 1, W: 1, H: 1})))
}
