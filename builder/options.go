// SPDX-License-Identifier: MIT
// Package: parity/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic; they return sentinel errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating builderConfig before the game
// is built.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxPriority sets the inclusive upper bound of generated priorities.
// Panics when p < 0.
func WithMaxPriority(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("builder: WithMaxPriority(%d): must be >= 0", p))
	}
	return func(c *builderConfig) {
		c.maxPriority = p
	}
}

// WithMaxOutDegree sets the inclusive upper bound of successors per vertex.
// Panics when d < 1: every vertex needs at least one successor.
func WithMaxOutDegree(d int) Option {
	if d < 1 {
		panic(fmt.Sprintf("builder: WithMaxOutDegree(%d): must be >= 1", d))
	}
	return func(c *builderConfig) {
		c.maxOutDegree = d
	}
}

// WithSelfLoops controls whether a vertex may be drawn as its own successor.
func WithSelfLoops(allow bool) Option {
	return func(c *builderConfig) {
		c.selfLoops = allow
	}
}
