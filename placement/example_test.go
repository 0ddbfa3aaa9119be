package placement_test

import (
	"fmt"

	"github.com/katalvlaran/cargopack/placement"
	"github.com/katalvlaran/cargopack/uld"
)

// Example demonstrates selecting the tightest-fitting region among two
// candidates reported by a Fitter, using the LeastDiffSides policy.
func Example() {
	natural := uld.Dims{L: 4, W: 4, H: 4}
	f := &fakeFitter{byOrientation: map[uld.Dims][]placement.Candidate{
		natural: {
			{Token: "A", Anchor: uld.Anchor{}, Extent: uld.Dims{L: 10, W: 10, H: 10}},
			{Token: "B", Anchor: uld.Anchor{}, Extent: uld.Dims{L: 4, W: 4, H: 5}},
		},
	}}

	res, err := placement.Query(f, natural, placement.Options{
		RegionPolicy:      placement.LeastDiffSides,
		OrientationPolicy: placement.NoRotate,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Candidate.Token)
	// Output:
	// B
}
