package spm

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/measure"
	"github.com/katalvlaran/parity/strategy"
)

// Sentinel errors for Solve.
var (
	// ErrGameNil is returned if a nil game is passed.
	ErrGameNil = errors.New("spm: game is nil")

	// ErrStrategyNil is returned if a nil strategy is passed.
	ErrStrategyNil = errors.New("spm: strategy is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spm: invalid option supplied")

	// ErrPassLimit is returned when WithMaxPasses is exceeded before convergence.
	ErrPassLimit = errors.New("spm: pass limit reached before fixpoint")
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize Solve.
type Options struct {
	// Ctx allows cooperative cancellation. It is checked before each
	// vertex is lifted; a single lift is never interrupted.
	Ctx context.Context

	// OnLift is called after every lift that changed a vertex, with the
	// value before and after the update.
	OnLift func(v *game.Vertex, before, after measure.Value)

	// MaxPasses, if > 0, bounds the number of outer passes (including the
	// final pass that confirms the fixpoint). 0 means unlimited.
	MaxPasses int

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// OnLift hook and no pass limit.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnLift: func(*game.Vertex, measure.Value, measure.Value) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLift registers a hook observing every applied update.
func WithOnLift(fn func(v *game.Vertex, before, after measure.Value)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLift = fn
		}
	}
}

// WithMaxPasses bounds the number of outer passes.
//
//	n > 0: at most n passes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// Result is the outcome of one Solve call. The counters belong to the call
// and are never shared between solves.
type Result struct {
	// Progress is the final assignment; read-only once returned.
	Progress *Progress

	// Strategy is the ordering that drove the solve.
	Strategy strategy.Kind

	// Passes counts outer passes over the vertex order.
	Passes int

	// Lifts counts lift applications, including the final unchanged one
	// for every visited vertex.
	Lifts int

	// Updates counts lifts that changed a value.
	Updates int
}

// WinningSet returns the ids won by owner, ascending.
func (r *Result) WinningSet(owner game.Owner) []int {
	return WinningSet(r.Progress, owner)
}

// Winner returns the player winning from vertex id.
func (r *Result) Winner(id int) (game.Owner, bool) {
	return Winner(r.Progress, id)
}
