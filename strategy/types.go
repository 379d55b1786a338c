package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/parity/game"
)

// Sentinel errors for strategy construction.
var (
	// ErrUnknownKind is returned for a name or Kind outside the five strategies.
	ErrUnknownKind = errors.New("strategy: unknown strategy kind")

	// ErrNoSelfLoop is returned by SelfLoopPath for a vertex that cannot
	// reach any terminating self-loop.
	ErrNoSelfLoop = errors.New("strategy: no terminating self-loop reachable")
)

// Kind names one of the vertex ordering strategies.
type Kind int

const (
	// Input visits vertices in the order they were ingested.
	Input Kind = iota
	// Random visits vertices in a seeded uniformly random permutation.
	Random
	// Priority visits vertices by ascending priority.
	Priority
	// Successor visits vertices by ascending out-degree.
	Successor
	// SelfLoop visits vertices by ascending distance to a terminating self-loop.
	SelfLoop
)

var kindNames = [...]string{
	Input:     "input",
	Random:    "random",
	Priority:  "priority",
	Successor: "successor",
	SelfLoop:  "selfloop",
}

// String returns the command-line name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a strategy.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(kindNames) }

// Kinds returns every strategy kind in declaration order.
func Kinds() []Kind {
	return []Kind{Input, Random, Priority, Successor, SelfLoop}
}

// ParseKind maps a name such as "selfloop" (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Strategy decides the order in which the fixpoint engine revisits
// vertices. Order returns a fresh slice the caller owns; it is computed
// once per solve and may be iterated any number of times.
type Strategy interface {
	Kind() Kind
	Order(g *game.Game) []*game.Vertex
}

// Option configures strategy construction.
type Option func(*options)

type options struct {
	seed int64
}

// WithSeed fixes the seed of the Random strategy. Seed 0 selects the
// package default seed, so an unseeded Random strategy is still reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}
