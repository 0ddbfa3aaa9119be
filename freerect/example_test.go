package freerect_test

import (
	"fmt"

	"github.com/katalvlaran/cargopack/freerect"
	"github.com/katalvlaran/cargopack/uld"
)

func Example() {
	l := freerect.NewList(uld.Dims{L: 100, W: 100, H: 100}, 5)
	cands := l.Candidates(uld.Dims{L: 60, W: 60, H: 60})
	if err := l.Commit(cands[0].Token, cands[0].Anchor, uld.Dims{L: 60, W: 60, H: 60}); err != nil {
		panic(err)
	}
	fmt.Println(l.Len())
	// Output:
	// 3
}
