// SPDX-License-Identifier: MIT
// Package: parity/builder
//
// games.go — Random, SelfLoop and Ladder generators.
//
// Determinism:
//   • Vertices are drawn in ascending id order 0..n-1.
//   • For each vertex the draws are priority, owner, out-degree, successors,
//     always in that order, so a fixed seed fixes the game.
//
// Complexity:
//   • Random: O(n²) time in the worst case (one permutation per vertex).
//   • Ladder, SelfLoop: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/parity/game"
)

const (
	minRandomVertices = 1
	minLadderVertices = 1
)

// Random returns a game over ids 0..n-1.
//
// Without self-loops at least two vertices are required, otherwise the only
// vertex would have nowhere to move. The out-degree of each vertex is capped
// by the number of admissible successors.
func Random(n int, opts ...Option) (*game.Game, error) {
	cfg := newBuilderConfig(opts...)
	minN := minRandomVertices
	if !cfg.selfLoops {
		minN = 2
	}
	if n < minN {
		return nil, builderErrorf(methodRandom, "n=%d < min=%d: %w", n, minN, ErrTooFewVertices)
	}

	vs := make([]game.Vertex, n)
	for i := 0; i < n; i++ {
		prio := cfg.rng.Intn(cfg.maxPriority + 1)
		owner := game.Owner(cfg.rng.Intn(2))

		candidates := n
		if !cfg.selfLoops {
			candidates = n - 1
		}
		deg := 1 + cfg.rng.Intn(min(cfg.maxOutDegree, candidates))

		succ := make([]int, 0, deg)
		for _, k := range cfg.rng.Perm(candidates)[:deg] {
			// Without self-loops, skip over i by shifting the upper half.
			if !cfg.selfLoops && k >= i {
				k++
			}
			succ = append(succ, k)
		}
		vs[i] = game.Vertex{ID: i, Priority: prio, Owner: owner, Successors: succ, Index: i}
	}

	g, err := game.New(vs)
	if err != nil {
		return nil, builderErrorf(methodRandom, "%w", err)
	}
	return g, nil
}

// SelfLoop returns the one-vertex game {0 → 0} owned by owner. The owner is
// irrelevant to the outcome: priority parity alone decides the winner.
func SelfLoop(owner game.Owner, priority int) (*game.Game, error) {
	g, err := game.New([]game.Vertex{{
		ID: 0, Priority: priority, Owner: owner, Successors: []int{0},
	}})
	if err != nil {
		return nil, builderErrorf(methodSelfLoop, "%w", err)
	}
	return g, nil
}

// Ladder returns a ring 0→1→…→n-1→0 where vertex i has priority i%3+1 and
// owner i%2; every Odd-owned vertex may additionally stay on itself.
func Ladder(n int) (*game.Game, error) {
	if n < minLadderVertices {
		return nil, builderErrorf(methodLadder, "n=%d < min=%d: %w", n, minLadderVertices, ErrTooFewVertices)
	}
	vs := make([]game.Vertex, n)
	for i := range vs {
		owner := game.Owner(i % 2)
		succ := []int{(i + 1) % n}
		if owner == game.Odd {
			succ = append(succ, i)
		}
		vs[i] = game.Vertex{
			ID:         i,
			Priority:   i%3 + 1,
			Owner:      owner,
			Successors: succ,
			Index:      i,
			Name:       fmt.Sprintf("rung%d", i),
		}
	}
	g, err := game.New(vs)
	if err != nil {
		return nil, builderErrorf(methodLadder, "%w", err)
	}
	return g, nil
}
