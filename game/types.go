// Package game defines the immutable parity game model: players, vertices,
// and the validated Game graph together with the lattice bounds derived from
// its priorities.
package game

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for game construction and lookup.
//
// Every structural error wraps ErrInvalidGame, so callers can separate
// "bad game structure" from "bad input text" (see package parser).
var (
	// ErrInvalidGame is the umbrella for every structural defect.
	ErrInvalidGame = errors.New("game: invalid game")

	// ErrUnknownVertex is returned by lookups of an id that is not in the game.
	ErrUnknownVertex = errors.New("game: unknown vertex")

	// ErrNoSuccessors indicates a vertex with out-degree 0 (games must be total).
	ErrNoSuccessors = fmt.Errorf("%w: vertex has no successors", ErrInvalidGame)

	// ErrUnknownSuccessor indicates an edge to an id that is not a vertex.
	ErrUnknownSuccessor = fmt.Errorf("%w: successor is not a vertex", ErrInvalidGame)

	// ErrNegativeID indicates a vertex or successor id below zero.
	ErrNegativeID = fmt.Errorf("%w: negative vertex id", ErrInvalidGame)

	// ErrNegativePriority indicates a priority below zero.
	ErrNegativePriority = fmt.Errorf("%w: negative priority", ErrInvalidGame)

	// ErrBadOwner indicates an owner that is neither Even nor Odd.
	ErrBadOwner = fmt.Errorf("%w: owner must be 0 (even) or 1 (odd)", ErrInvalidGame)
)

// Owner identifies the player controlling a vertex.
type Owner int

const (
	// Even is player 0; it wins plays whose lowest priority seen infinitely
	// often is even.
	Even Owner = iota
	// Odd is player 1; it wins plays whose lowest priority seen infinitely
	// often is odd.
	Odd
)

// String returns "even" or "odd".
func (o Owner) String() string {
	switch o {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "owner(" + strconv.Itoa(int(o)) + ")"
	}
}

// Opponent returns the other player.
func (o Owner) Opponent() Owner {
	if o == Even {
		return Odd
	}
	return Even
}

// Wants reports whether priority p has the parity favoured by o.
func (o Owner) Wants(p int) bool {
	return (p%2 == 0) == (o == Even)
}

// ParseOwner parses the textual owner encoding "0" (Even) or "1" (Odd).
func ParseOwner(s string) (Owner, error) {
	switch s {
	case "0":
		return Even, nil
	case "1":
		return Odd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadOwner, s)
	}
}

// Vertex is a single position of the game.
//
// ID is unique within a Game. Successors is sorted ascending and free of
// duplicates once the vertex belongs to a Game. Index records the position
// of the vertex in its source (ingestion order) and is only used for
// ordering. Name is optional.
type Vertex struct {
	ID         int
	Priority   int
	Owner      Owner
	Successors []int
	Name       string
	Index      int
}

// OutDegree is the number of distinct successors.
func (v *Vertex) OutDegree() int { return len(v.Successors) }

// HasSelfLoop reports whether v is among its own successors.
func (v *Vertex) HasSelfLoop() bool {
	for _, w := range v.Successors {
		if w == v.ID {
			return true
		}
	}
	return false
}

// Label returns the display name, falling back to the decimal id.
func (v *Vertex) Label() string {
	if v.Name != "" {
		return v.Name
	}
	return strconv.Itoa(v.ID)
}
