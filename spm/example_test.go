package spm_test

import (
	"fmt"

	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

// ExampleSolve solves a two-vertex game in which Odd, owning vertex 1, can
// force the play through the odd priority 1 forever.
func ExampleSolve() {
	g, err := game.New([]game.Vertex{
		{ID: 0, Priority: 1, Owner: game.Even, Successors: []int{1}},
		{ID: 1, Priority: 2, Owner: game.Odd, Successors: []int{0, 1}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := spm.Solve(g, strategy.MustNew(strategy.SelfLoop))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("even:", res.WinningSet(game.Even))
	fmt.Println("odd: ", res.WinningSet(game.Odd))
	fmt.Println("passes:", res.Passes, "lifts:", res.Lifts)
	// Output:
	// even: []
	// odd:  [0 1]
	// passes: 3 lifts: 10
}

// ExampleProg shows the two halves of the lift operator on an even-owned
// self-loop of priority 1: the odd priority pushes the measure up until
// it overflows to Top.
func ExampleProg() {
	g, _ := game.New([]game.Vertex{
		{ID: 0, Priority: 1, Owner: game.Even, Successors: []int{0}},
	})
	p := spm.NewProgress(g)
	v := g.MustVertex(0)
	for i := 0; i < 2; i++ {
		val, changed := spm.Lift(p, v)
		fmt.Println(val, changed)
	}
	// Output:
	// (0,1) true
	// ⊤ true
}
