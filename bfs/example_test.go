package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/parity/bfs"
)

// ExampleSearch_twoSources layers a ring of six vertices around two sources.
func ExampleSearch_twoSources() {
	// 0→1→2→3→4→5→0
	ring := adj{0: {1}, 1: {2}, 2: {3}, 3: {4}, 4: {5}, 5: {0}}

	res, err := bfs.Search(ring, []int{0, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	for id := 0; id < 6; id++ {
		fmt.Print(res.Depth[id], " ")
	}
	fmt.Println()
	// Output:
	// [0 3 1 4 2 5]
	// 0 1 2 0 1 2
}
