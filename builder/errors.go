// SPDX-License-Identifier: MIT
// Package: parity/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with `%w`; see builderErrorf.
//   • Structural failures from game.New are passed through wrapped.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the requested vertex count is below the
// minimum the generator accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// Method tokens used as error context.
const (
	methodRandom   = "Random"
	methodLadder   = "Ladder"
	methodSelfLoop = "SelfLoop"
)

// builderErrorf prefixes err with the generator name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
