// Package parity is a solver for two-player parity games built on
// Jurdzinski's small progress measures, with pluggable vertex orderings and
// a batch harness for comparing them.
//
// 🚀 What is parity?
//
//	A small, dependency-light toolkit that brings together:
//		• Game model: validated, immutable games with derived lattice bounds
//		• Measure lattice: odd-position counters, Top, bounded increment
//		• Solver: lift operator + fixpoint engine + winning sets
//		• Orderings: input, random, priority, successor, selfloop
//		• Text format: parse and write "parity <max-id>; ..." files
//		• Harness: per-file timeouts, concurrent strategies, CSV + metrics
//
// ✨ Why choose parity?
//
//   - Order-independent results: every ordering reaches the same fixpoint
//   - Deterministic: seeded random ordering, seeded game generators
//   - Cooperative cancellation: the solver checks its context per vertex
//   - Hooks: observe every lift with spm.WithOnLift
//
// Under the hood, everything is organized under these subpackages:
//
//	game/       — Owner, Vertex and the immutable Game graph
//	measure/    — Measure vectors, Value (measure or Top), comparisons, increment
//	spm/        — Prog, Lift, Solve, Progress and winning sets
//	strategy/   — the five vertex orderings
//	bfs/        — multi-source breadth-first search (selfloop distances)
//	parser/     — the textual game format
//	builder/    — random and fixed game generators
//	config/     — YAML run configuration ($PGSOLVE_CONFIG)
//	logging/    — slog construction and context carriage
//	experiment/ — the batch harness
//	cli/        — command-line parsing
//	cmd/pgsolve — the command
//
// Quick ASCII example:
//
//	  ┌──────────┐
//	  ▼          │
//	(0:1) ──► [1:2] ─┐
//	             ▲   │
//	             └───┘
//
//	Odd owns [1] and escapes to (0) forever: the lowest priority seen
//	infinitely often is 1, so Odd wins both vertices.
//
//	go install github.com/katalvlaran/parity/cmd/pgsolve@latest
//	pgsolve -pg europe.pg -selfloop
package parity
