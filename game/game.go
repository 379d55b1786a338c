package game

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/parity/measure"
)

// Game is an immutable parity game. It is safe for concurrent readers once
// returned by New; nothing in this package mutates a Game afterwards.
type Game struct {
	byID        map[int]*Vertex
	sorted      []*Vertex   // ascending id
	pos         map[int]int // id → index in sorted
	preds       map[int][]int
	maxPriority int
	maxMeasure  measure.Measure
}

// New validates vertices and builds a Game.
//
// Successor lists are copied, sorted and de-duplicated. When two vertices
// share an id the later one replaces the earlier one, matching how game
// files are ingested. Validation fails fast with an error wrapping
// ErrInvalidGame and naming the offending vertex.
//
// Complexity: O(V log V + E log E).
func New(vertices []Vertex) (*Game, error) {
	byID := make(map[int]*Vertex, len(vertices))
	for i := range vertices {
		src := &vertices[i]
		if src.ID < 0 {
			return nil, fmt.Errorf("vertex %d: %w", src.ID, ErrNegativeID)
		}
		if src.Priority < 0 {
			return nil, fmt.Errorf("vertex %d: priority %d: %w", src.ID, src.Priority, ErrNegativePriority)
		}
		if src.Owner != Even && src.Owner != Odd {
			return nil, fmt.Errorf("vertex %d: %w", src.ID, ErrBadOwner)
		}
		v := *src
		v.Successors = normalize(src.Successors)
		byID[v.ID] = &v
	}

	g := &Game{
		byID:   byID,
		sorted: make([]*Vertex, 0, len(byID)),
		pos:    make(map[int]int, len(byID)),
		preds:  make(map[int][]int, len(byID)),
	}
	for _, v := range byID {
		g.sorted = append(g.sorted, v)
	}
	sort.Slice(g.sorted, func(i, j int) bool { return g.sorted[i].ID < g.sorted[j].ID })

	for i, v := range g.sorted {
		g.pos[v.ID] = i
		if v.OutDegree() == 0 {
			return nil, fmt.Errorf("vertex %d: %w", v.ID, ErrNoSuccessors)
		}
		if v.Priority > g.maxPriority {
			g.maxPriority = v.Priority
		}
	}
	// sorted is ascending, so every predecessor list comes out ascending too
	for _, v := range g.sorted {
		for _, w := range v.Successors {
			if _, ok := byID[w]; !ok {
				return nil, fmt.Errorf("vertex %d -> %d: %w", v.ID, w, ErrUnknownSuccessor)
			}
			g.preds[w] = append(g.preds[w], v.ID)
		}
	}
	g.maxMeasure = computeMaxMeasure(g.sorted, g.maxPriority)

	return g, nil
}

// normalize returns a sorted copy of ids without duplicates.
func normalize(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

// computeMaxMeasure counts, for every odd priority p <= maxPriority, the
// vertices of priority p. All other positions are 0.
func computeMaxMeasure(vs []*Vertex, maxPriority int) measure.Measure {
	m := measure.Zero(maxPriority + 1)
	for _, v := range vs {
		if v.Priority%2 == 1 {
			m[v.Priority]++
		}
	}
	return m
}

// Len is the number of vertices.
func (g *Game) Len() int { return len(g.sorted) }

// IsEmpty reports whether the game has no vertices.
func (g *Game) IsEmpty() bool { return len(g.sorted) == 0 }

// Has reports whether id is a vertex of g.
func (g *Game) Has(id int) bool {
	_, ok := g.byID[id]
	return ok
}

// Vertex returns the vertex with the given id, or ErrUnknownVertex.
func (g *Game) Vertex(id int) (*Vertex, error) {
	v, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return v, nil
}

// MustVertex is Vertex for ids already known to be valid; it panics otherwise.
func (g *Game) MustVertex(id int) *Vertex {
	v, err := g.Vertex(id)
	if err != nil {
		panic(err)
	}
	return v
}

// Vertices returns all vertices in ascending id order. The slice is a copy;
// the vertices themselves are shared and must not be modified.
func (g *Game) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.sorted))
	copy(out, g.sorted)
	return out
}

// Position returns the dense index (0..Len-1, ascending id) of a vertex.
func (g *Game) Position(id int) (int, bool) {
	i, ok := g.pos[id]
	return i, ok
}

// At returns the vertex at dense index i.
func (g *Game) At(i int) *Vertex { return g.sorted[i] }

// MaxPriority is the largest priority in the game, 0 when empty.
func (g *Game) MaxPriority() int { return g.maxPriority }

// MaxMeasure is the largest admissible measure: the number of vertices of
// each odd priority at that position. The result is a copy.
func (g *Game) MaxMeasure() measure.Measure { return g.maxMeasure.Clone() }

// Bound returns MaxMeasure without copying, for read-only hot paths.
func (g *Game) Bound() measure.Measure { return g.maxMeasure }

// NewMeasure returns the minimal value: the all-zero measure of length
// MaxPriority+1.
func (g *Game) NewMeasure() measure.Value {
	return measure.Of(measure.Zero(g.maxPriority + 1))
}

// Successors returns the successor ids of id (ascending), nil if unknown.
func (g *Game) Successors(id int) []int {
	if v, ok := g.byID[id]; ok {
		return v.Successors
	}
	return nil
}

// Predecessors returns the ids with an edge into id (ascending).
func (g *Game) Predecessors(id int) []int { return g.preds[id] }

// HasVertex reports whether id is a vertex; it lets a Game act as a
// bfs.Graph over its successor edges.
func (g *Game) HasVertex(id int) bool { return g.Has(id) }

// Neighbors returns the successors of id, or ErrUnknownVertex.
func (g *Game) Neighbors(id int) ([]int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}
	return v.Successors, nil
}

// Reversed returns a read-only view of g with every edge reversed.
func (g *Game) Reversed() *Reversed { return &Reversed{g: g} }

// Reversed exposes the predecessor relation of a Game as a graph.
type Reversed struct {
	g *Game
}

// HasVertex reports whether id is a vertex of the underlying game.
func (r *Reversed) HasVertex(id int) bool { return r.g.Has(id) }

// Neighbors returns the predecessors of id, or ErrUnknownVertex.
func (r *Reversed) Neighbors(id int) ([]int, error) {
	if !r.g.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return r.g.preds[id], nil
}
