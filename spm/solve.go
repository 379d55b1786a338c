package spm

import (
	"fmt"

	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/strategy"
)

// engine encapsulates the mutable state of one solve.
type engine struct {
	game  *game.Game
	order []*game.Vertex
	opts  Options
	res   *Result
}

// Solve computes the least fixpoint of the lift operator on g, starting from
// the minimal assignment and visiting vertices in the order chosen by s.
//
// Each outer pass walks the whole order; every vertex is lifted repeatedly
// until it stops changing before the pass moves on. Solve returns once a
// pass changes nothing. The fixpoint (and hence every winning set) is the
// same for every strategy; only the counters differ.
//
// Returns ErrGameNil, ErrStrategyNil or ErrOptionViolation for invalid
// input, ErrPassLimit when WithMaxPasses is exceeded, or the context error
// on cancellation. In the last two cases the partial Result is returned
// alongside the error. Without options Solve cannot fail on a valid game.
//
// Complexity: O(d·E·Π(bound[i]+1)) lift work in the worst case, where d is
// the maximal priority and the product runs over odd positions.
func Solve(g *game.Game, s strategy.Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	if s == nil {
		return nil, ErrStrategyNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &engine{
		game:  g,
		order: s.Order(g),
		opts:  o,
		res: &Result{
			Progress: NewProgress(g),
			Strategy: s.Kind(),
		},
	}
	return e.res, e.loop()
}

// loop runs outer passes until one of them changes nothing.
func (e *engine) loop() error {
	for {
		if e.opts.MaxPasses > 0 && e.res.Passes >= e.opts.MaxPasses {
			return fmt.Errorf("%w: %d passes", ErrPassLimit, e.res.Passes)
		}
		e.res.Passes++
		changed, err := e.pass()
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// pass drives every vertex of the order to its local fixpoint and reports
// whether any value changed.
func (e *engine) pass() (bool, error) {
	changed := false
	for _, v := range e.order {
		select {
		case <-e.opts.Ctx.Done():
			return changed, e.opts.Ctx.Err()
		default:
		}
		if e.settle(v) {
			changed = true
		}
	}
	return changed, nil
}

// settle lifts v until it is stable and reports whether it moved at all.
func (e *engine) settle(v *game.Vertex) bool {
	p := e.res.Progress
	moved := false
	for {
		before, _ := p.Value(v.ID)
		e.res.Lifts++
		after, ok := Lift(p, v)
		if !ok {
			return moved
		}
		moved = true
		e.res.Updates++
		e.opts.OnLift(v, before, after)
	}
}
