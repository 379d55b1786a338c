// Package strategy provides the vertex visitation orders used by the small
// progress measures engine (package spm).
//
// The final fixpoint does not depend on the order; only the number of lift
// applications needed to reach it does. Every strategy therefore returns a
// fixed, finite sequence of vertices that the engine walks once per pass.
//
// Strategies
//
//	input      ingestion order (Vertex.Index)
//	random     uniformly random permutation, fixed by the seed
//	priority   ascending priority
//	successor  ascending out-degree
//	selfloop   ascending distance (moves) to a terminating self-loop; a vertex
//	           is terminating when it has a self-loop and either that loop is
//	           its only move or its priority parity matches its owner.
//	           Distances come from one multi-source BFS over reversed edges;
//	           vertices that cannot reach such a loop sort last.
//
// All orders break ties by ascending vertex id, so every strategy except
// random is a pure function of the game, and random is a pure function of
// the game and its seed.
//
// Strategy values hold no mutable state and may be shared between
// goroutines solving the same or different games.
package strategy
