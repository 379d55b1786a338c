package strategy

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/parity/bfs"
	"github.com/katalvlaran/parity/game"
)

// New constructs the strategy named by kind.
func New(kind Kind, opts ...Option) (Strategy, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch kind {
	case Input:
		return inputOrder{}, nil
	case Random:
		return randomOrder{seed: o.seed}, nil
	case Priority:
		return priorityOrder{}, nil
	case Successor:
		return successorOrder{}, nil
	case SelfLoop:
		return selfLoopOrder{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// MustNew is New for kinds known to be valid; it panics otherwise.
func MustNew(kind Kind, opts ...Option) Strategy {
	s, err := New(kind, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type inputOrder struct{}

func (inputOrder) Kind() Kind { return Input }

func (inputOrder) Order(g *game.Game) []*game.Vertex {
	return sortedBy(g, func(v *game.Vertex) int { return v.Index })
}

type randomOrder struct {
	seed int64
}

func (randomOrder) Kind() Kind { return Random }

// Order permutes the id-sorted vertices with a fresh RNG from the fixed
// seed, so repeated calls on the same game return the same permutation.
func (r randomOrder) Order(g *game.Game) []*game.Vertex {
	vs := g.Vertices()
	perm := permRange(len(vs), rngFromSeed(r.seed))
	out := make([]*game.Vertex, len(vs))
	for i, p := range perm {
		out[i] = vs[p]
	}
	return out
}

type priorityOrder struct{}

func (priorityOrder) Kind() Kind { return Priority }

func (priorityOrder) Order(g *game.Game) []*game.Vertex {
	return sortedBy(g, func(v *game.Vertex) int { return v.Priority })
}

type successorOrder struct{}

func (successorOrder) Kind() Kind { return Successor }

func (successorOrder) Order(g *game.Game) []*game.Vertex {
	return sortedBy(g, func(v *game.Vertex) int { return v.OutDegree() })
}

type selfLoopOrder struct{}

func (selfLoopOrder) Kind() Kind { return SelfLoop }

func (selfLoopOrder) Order(g *game.Game) []*game.Vertex {
	dist := Distances(g)
	return sortedBy(g, func(v *game.Vertex) int { return dist[v.ID] })
}

// Terminating reports whether v is a source of the self-loop ordering: it
// has a self-loop, and either the loop is its only move or its priority has
// the parity its owner wants.
func Terminating(v *game.Vertex) bool {
	if !v.HasSelfLoop() {
		return false
	}
	return v.OutDegree() == 1 || v.Owner.Wants(v.Priority)
}

// Distances returns, for every vertex, the number of moves to the nearest
// terminating self-loop vertex (computed by BFS over reversed edges).
// Vertices that cannot reach one get math.MaxInt.
func Distances(g *game.Game) map[int]int {
	dist := make(map[int]int, g.Len())
	for _, v := range g.Vertices() {
		dist[v.ID] = math.MaxInt
	}
	res, err := selfLoopSearch(g)
	if err != nil {
		return dist
	}
	for id, d := range res.Depth {
		dist[id] = d
	}
	return dist
}

// SelfLoopPath returns the shortest play from id to a terminating self-loop
// vertex, both ends included; its length minus one is Distances(g)[id].
// Returns game.ErrUnknownVertex or ErrNoSelfLoop.
func SelfLoopPath(g *game.Game, id int) ([]int, error) {
	if !g.Has(id) {
		return nil, fmt.Errorf("%w: %d", game.ErrUnknownVertex, id)
	}
	res, err := selfLoopSearch(g)
	if err != nil {
		return nil, err
	}
	// the search runs on reversed edges, so the path comes back sink first
	path, err := res.PathTo(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrNoSelfLoop, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// selfLoopSearch runs the reverse BFS from every terminating vertex.
// Sources come from a validated game and no context or hook is installed,
// so Search cannot fail here.
func selfLoopSearch(g *game.Game) (*bfs.Result, error) {
	var sources []int
	for _, v := range g.Vertices() {
		if Terminating(v) {
			sources = append(sources, v.ID)
		}
	}
	return bfs.Search(g.Reversed(), sources)
}

// sortedBy returns the vertices ordered by key, ties broken by ascending id.
func sortedBy(g *game.Game, key func(*game.Vertex) int) []*game.Vertex {
	vs := g.Vertices()
	sort.SliceStable(vs, func(i, j int) bool {
		return key(vs[i]) < key(vs[j])
	})
	return vs
}
