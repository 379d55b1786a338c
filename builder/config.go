// SPDX-License-Identifier: MIT
// Package: parity/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = seed 1 (same fixture on every run unless reseeded)
//   • maxPriority  = 3      (two even and two odd priorities)
//   • maxOutDegree = 3
//   • selfLoops    = true

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed         = int64(1)
	defaultMaxPriority  = 3
	defaultMaxOutDegree = 3
	defaultSelfLoops    = true
)

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng          *rand.Rand
	maxPriority  int
	maxOutDegree int
	selfLoops    bool
}

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:          rand.New(rand.NewSource(defaultSeed)),
		maxPriority:  defaultMaxPriority,
		maxOutDegree: defaultMaxOutDegree,
		selfLoops:    defaultSelfLoops,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
