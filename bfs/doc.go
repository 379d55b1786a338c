// Package bfs provides a multi-source breadth-first search over any graph
// exposing int vertex ids, returning unweighted distances to the nearest
// source, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a set of
//     source vertices, all of which start at depth 0.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from the nearest source
//   - Parent: map from vertex → its predecessor in the BFS forest
//   - Supports an OnVisit hook (may abort with an error) and edge filtering
//     via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The self-loop ordering strategy ranks every vertex of a parity game by
//     its distance to a terminating self-loop. Running one search over the
//     reversed game from all such vertices yields every distance in O(V + E).
//
// Determinism
//
//	Sources are enqueued in the order given and neighbors in the order the
//	Graph returns them, so the visit sequence is fully reproducible when
//	Neighbors is deterministic (game.Game returns ascending ids).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.Search(g.Reversed(), sources)
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, ErrNeighbors,
//	    // context errors, or hook errors
//	}
//	d, ok := res.Depth[id]
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
package bfs
