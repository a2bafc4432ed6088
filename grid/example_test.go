// File: grid/example_test.go
package grid_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ExampleParse builds a board from ASCII rows and edits it.
func ExampleParse() {
	g, err := grid.Parse(
		"S..",
		".#.",
		"..G",
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.ToggleObstacle(1, 0)
	g.ToggleObstacle(0, 0) // start is protected
	fmt.Println(g)

	// Output:
	// S#.
	// .#.
	// ..G
}

// ExampleGrid_Snapshot shows the wire form the request layer renders.
func ExampleGrid_Snapshot() {
	g := grid.MustParse("S#G")
	data, _ := json.Marshal(g.Snapshot())
	fmt.Println(string(data))

	// Output:
	// {"width":3,"height":1,"start":[0,0],"goal":[2,0],"grid":[[2,1,3]]}
}

// ExampleGrid_Neighbors lists the 4-connected neighbors of a corner cell.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3)
	fmt.Println(g.Neighbors(0, 0, false))
	fmt.Println(len(g.Neighbors(1, 1, true)))

	// Output:
	// [(1,0) (0,1)]
	// 8
}
