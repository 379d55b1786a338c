// Package builder generates parity games for tests, benchmarks and
// experiment fixtures.
//
// The package offers:
//
//   - Random(n, opts...): n vertices with priorities in [0, maxPriority],
//     uniform owners and 1..maxOutDegree distinct successors each.
//   - SelfLoop(owner, priority): the one-vertex game whose only move loops.
//   - Ladder(n): a deterministic ring with odd-owned self-loops, used where
//     a fixed workload is needed.
//
// Options follow the functional style:
//
//   - WithSeed / WithRand:   RNG for Random (default seed 1).
//   - WithMaxPriority:       inclusive priority bound (default 3).
//   - WithMaxOutDegree:      inclusive out-degree bound (default 3).
//   - WithSelfLoops:         whether Random may draw v→v (default true).
//
// Guarantees:
//
//   - Determinism: the same options and seed yield the same game.
//   - Fast-fail on meaningless option parameters via panics in the option
//     constructors; generators return ErrTooFewVertices or a wrapped
//     game.ErrInvalidGame instead of panicking.
//   - Every generated game satisfies the game invariants: each vertex has at
//     least one successor and every successor exists.
package builder
