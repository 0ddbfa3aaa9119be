package freerect_test

import (
	"testing"

	"github.com/katalvlaran/cargopack/freerect"
	"github.com/katalvlaran/cargopack/uld"
)

// BenchmarkList_Candidates_Scan measures the linear-scan cost of Candidates
// over a list that has accumulated slabs from many prior commits.
func BenchmarkList_Candidates_Scan(b *testing.B) {
	const uldSide = 1000
	const parcelSide = 10

	l := freerect.NewList(uld.Dims{L: uldSide, W: uldSide, H: uldSide}, 1)
	natural := uld.Dims{L: parcelSide, W: parcelSide, H: parcelSide}
	for i := 0; i < 200; i++ {
		cands := l.Candidates(natural)
		if len(cands) == 0 {
			break
		}
		_ = l.Commit(cands[0].Token, cands[0].Anchor, natural)
	}

	b.ReportAllocs()
	b.SetBytes(int64(l.Len()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = l.Candidates(natural)
	}
}

// BenchmarkList_Commit_Subdivide measures repeated commit/subdivide cycles
// against a single ULD, the representation's steady-state hot path during a
// real pack run.
func BenchmarkList_Commit_Subdivide(b *testing.B) {
	const uldSide = 2000
	const parcelSide = 4
	natural := uld.Dims{L: parcelSide, W: parcelSide, H: parcelSide}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := freerect.NewList(uld.Dims{L: uldSide, W: uldSide, H: uldSide}, 1)
		b.StartTimer()

		for j := 0; j < 500; j++ {
			cands := l.Candidates(natural)
			if len(cands) == 0 {
				break
			}
			_ = l.Commit(cands[0].Token, cands[0].Anchor, natural)
		}
	}
}
