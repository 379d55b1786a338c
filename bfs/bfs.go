// Package bfs provides multi-source breadth-first search over an int-keyed
// Graph, returning unweighted distances to the nearest source, parent links,
// and visit order.
package bfs

import (
	"fmt"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// Search runs breadth-first search on g from every vertex in sources at
// once (all at depth 0), applying any number of functional Options.
// Duplicate sources are visited once.
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func Search(g Graph, sources []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, s)
		}
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, len(sources)),
		res: &Result{
			Order:  make([]int, 0, len(sources)),
			Depth:  make(map[int]int, len(sources)),
			Parent: make(map[int]int),
		},
	}
	for _, s := range sources {
		if !w.res.Reached(s) {
			w.enqueue(s, 0, s, false)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int, hasParent bool) {
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every
// unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.res.Reached(nbr) {
			w.enqueue(nbr, nextDepth, item.id, true)
		}
	}
	return nil
}
