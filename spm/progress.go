package spm

import (
	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/measure"
)

// Progress is the assignment of a lattice value to every vertex of a game.
//
// Values are stored densely by game.Position and updated in place. A
// Progress is exclusively owned by the Solve call that created it and must
// not be shared with another solve while it is running.
type Progress struct {
	g      *game.Game
	values []measure.Value
}

// NewProgress returns the minimal assignment: every vertex at g.NewMeasure().
func NewProgress(g *game.Game) *Progress {
	p := &Progress{g: g, values: make([]measure.Value, g.Len())}
	for i := range p.values {
		p.values[i] = g.NewMeasure()
	}
	return p
}

// Game returns the game the assignment belongs to.
func (p *Progress) Game() *game.Game { return p.g }

// Len is the number of assigned vertices.
func (p *Progress) Len() int { return len(p.values) }

// Value returns the value of vertex id; ok is false for unknown ids.
func (p *Progress) Value(id int) (v measure.Value, ok bool) {
	i, ok := p.g.Position(id)
	if !ok {
		return measure.Value{}, false
	}
	return p.values[i], true
}

// Snapshot copies the assignment into a map keyed by vertex id.
func (p *Progress) Snapshot() map[int]measure.Value {
	out := make(map[int]measure.Value, len(p.values))
	for i, v := range p.values {
		out[p.g.At(i).ID] = v
	}
	return out
}

// Clone returns an independent copy sharing the (immutable) game.
func (p *Progress) Clone() *Progress {
	c := &Progress{g: p.g, values: make([]measure.Value, len(p.values))}
	copy(c.values, p.values)
	return c
}

// Equal reports whether p and o assign equal values to the same vertex ids.
func (p *Progress) Equal(o *Progress) bool {
	if p.Len() != o.Len() {
		return false
	}
	for i, v := range p.values {
		ov, ok := o.Value(p.g.At(i).ID)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// WinningSet returns the vertex ids won by owner, ascending: Even wins
// every vertex whose value is not Top, Odd wins the rest.
func WinningSet(p *Progress, owner game.Owner) []int {
	out := []int{}
	for i, v := range p.values {
		if v.IsTop() == (owner == game.Odd) {
			out = append(out, p.g.At(i).ID)
		}
	}
	return out
}

// Winner returns the player winning from vertex id.
func Winner(p *Progress, id int) (game.Owner, bool) {
	v, ok := p.Value(id)
	if !ok {
		return 0, false
	}
	if v.IsTop() {
		return game.Odd, true
	}
	return game.Even, true
}
