package spm

import (
	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/measure"
)

// Prog returns the least value vertex v needs in order to move to w, given
// the current assignment p.
//
//   - A Top successor contributes Top.
//   - Even priority: the least m with m ≥ p(w) up to v.Priority, i.e. p(w)
//     with every position above v.Priority cleared.
//   - Odd priority: the least m with m > p(w) up to v.Priority, i.e. the
//     successor of that prefix within the game bound, or Top on overflow.
//
// w must be a vertex of p's game.
func Prog(p *Progress, v *game.Vertex, w int) measure.Value {
	i, _ := p.g.Position(w)
	mw := p.values[i]
	if mw.IsTop() {
		return mw
	}
	if v.Priority%2 == 0 {
		return measure.Truncate(mw, v.Priority)
	}
	return measure.IncrementUpto(mw, p.g.Bound(), v.Priority)
}

// best picks, over all successors of v, the least Prog value when Even
// owns v and the greatest when Odd owns it.
func best(p *Progress, v *game.Vertex) measure.Value {
	var out measure.Value
	for k, w := range v.Successors {
		val := Prog(p, v, w)
		switch {
		case k == 0:
			out = val
		case v.Owner == game.Even && val.Less(out):
			out = val
		case v.Owner == game.Odd && val.Greater(out):
			out = val
		}
		if v.Owner == game.Odd && out.IsTop() {
			break
		}
	}
	return out
}

// Lift recomputes the value of v from its successors and stores it when it
// is strictly greater than the current one. It returns the value of v after
// the step and whether it changed. Values never decrease.
func Lift(p *Progress, v *game.Vertex) (measure.Value, bool) {
	i, _ := p.g.Position(v.ID)
	cur := p.values[i]
	next := best(p, v)
	if !next.Greater(cur) {
		return cur, false
	}
	p.values[i] = next
	return next, true
}
