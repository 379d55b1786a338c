// Package spm solves parity games with Jurdzinski's small progress measures
// algorithm.
//
// What
//
//   - Every vertex carries a lattice value (package measure), initially the
//     all-zero measure. Solve repeatedly applies the lift operator, which
//     raises a vertex to the best value its owner can secure through one of
//     its successors, until no vertex can be raised any more.
//   - At the fixpoint, Odd wins exactly the vertices whose value is Top and
//     Even wins every other vertex. The two winning sets partition the game.
//   - Vertex visitation follows a pluggable strategy.Strategy; the fixpoint
//     is order-independent, only the amount of work changes.
//
// Lift
//
//	prog(v, w) = Top                                  if p(w) = Top
//	           = least m with m ≥ p(w) up to prio(v)  if prio(v) even
//	           = least m with m > p(w) up to prio(v)  if prio(v) odd
//	lift(v)    = min over successors (Even owns v) / max (Odd owns v),
//	             applied only when strictly greater than p(v)
//
// Termination
//
//	Each value only grows and the lattice is finite (at most
//	Π(bound[i]+1)+1 values per vertex), so Solve always terminates.
//
// Concurrency
//
//	Solve is synchronous and performs no I/O. The game is read-only and may
//	be shared by concurrent solves; each solve owns its Progress. A solve
//	can be bounded with WithContext (checked before each vertex) or
//	WithMaxPasses.
//
// Usage
//
//	res, err := spm.Solve(g, strategy.MustNew(strategy.SelfLoop))
//	if err != nil {
//	    // only with options: ErrOptionViolation, ErrPassLimit, ctx errors
//	}
//	even := res.WinningSet(game.Even)
//	odd := res.WinningSet(game.Odd)
//	fmt.Println(res.Passes, res.Lifts)
package spm
