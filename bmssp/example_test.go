package bmssp_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/bmssp"
	"github.com/katalvlaran/pathviz/grid"
)

// ExampleBounded_Search shows a reachable goal lying outside the radius.
func ExampleBounded_Search() {
	g := grid.MustParse(
		"S#G",
		".#.",
		".#.",
		"...",
	)
	s := bmssp.New()
	fmt.Println("limit:", s.Limit(g))
	fmt.Println("found:", s.Search(g, false, nil).Success)

	wide := bmssp.New(bmssp.WithFactor(4))
	res := wide.Search(g, false, nil)
	fmt.Println("found:", res.Success, "cost:", res.Cost)
	// Output:
	// limit: 4
	// found: false
	// found: true cost: 8
}
