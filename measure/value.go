package measure

// Value is either a Measure or Top. The zero Value is the empty Measure.
//
// Values are treated as immutable: every operation that produces a new
// measure allocates a fresh vector.
type Value struct {
	m   Measure
	top bool
}

// Top returns the distinguished greatest value.
func Top() Value { return Value{top: true} }

// Of wraps m as a Value. m must not be modified afterwards.
func Of(m Measure) Value { return Value{m: m} }

// IsTop reports whether v is Top.
func (v Value) IsTop() bool { return v.top }

// Measure returns the wrapped measure, or nil for Top.
func (v Value) Measure() Measure {
	if v.top {
		return nil
	}
	return v.m
}

// String renders Top as "⊤" and a measure as "(c0,c1,...)".
func (v Value) String() string {
	if v.top {
		return "⊤"
	}
	return v.m.String()
}

// EqualUpto reports whether v and o agree up to index i. Top equals only Top.
func (v Value) EqualUpto(o Value, i int) bool {
	if v.top || o.top {
		return v.top && o.top
	}
	return EqualUpto(v.m, o.m, i)
}

// GreaterUpto reports whether v is greater than o up to index i.
// Top is greater than every measure and not greater than Top.
func (v Value) GreaterUpto(o Value, i int) bool {
	switch {
	case v.top && o.top:
		return false
	case v.top:
		return true
	case o.top:
		return false
	default:
		return GreaterUpto(v.m, o.m, i)
	}
}

// GreaterOrEqualUpto is GreaterUpto or EqualUpto.
func (v Value) GreaterOrEqualUpto(o Value, i int) bool {
	return v.GreaterUpto(o, i) || v.EqualUpto(o, i)
}

// LessUpto is the complement of GreaterOrEqualUpto.
func (v Value) LessUpto(o Value, i int) bool {
	return !v.GreaterOrEqualUpto(o, i)
}

// LessOrEqualUpto is the complement of GreaterUpto.
func (v Value) LessOrEqualUpto(o Value, i int) bool {
	return !v.GreaterUpto(o, i)
}

// Compare returns -1, 0 or +1 under the total order of the lattice.
func (v Value) Compare(o Value) int {
	switch {
	case v.top && o.top:
		return 0
	case v.top:
		return 1
	case o.top:
		return -1
	default:
		return Compare(v.m, o.m)
	}
}

// Equal reports v == o under the total order.
func (v Value) Equal(o Value) bool { return v.Compare(o) == 0 }

// Greater reports v > o under the total order.
func (v Value) Greater(o Value) bool { return v.Compare(o) > 0 }

// Less reports v < o under the total order.
func (v Value) Less(o Value) bool { return v.Compare(o) < 0 }

// Increment returns the smallest value strictly greater than v whose odd
// counters do not exceed bound. The counter is carried from the highest odd
// position downwards: the first position still below its bound is
// incremented and every position passed over is reset to 0. Running off
// position 1 (v equal to bound) yields Top. Top increments to Top.
func Increment(v Value, bound Measure) Value {
	if v.top {
		return v
	}
	n := len(v.m)
	if len(bound) > n {
		n = len(bound)
	}
	return carry(v.m, bound, n-1, n)
}

// IncrementUpto returns the smallest value strictly greater than v up to
// index i: positions above i are zeroed and the carry is confined to the odd
// positions 1..i. Overflow yields Top.
func IncrementUpto(v Value, bound Measure, i int) Value {
	if v.top {
		return v
	}
	n := len(v.m)
	if len(bound) > n {
		n = len(bound)
	}
	if i > n-1 {
		i = n - 1
	}
	return carry(v.m, bound, i, n)
}

// Truncate zeroes every position of v above index i. Top stays Top.
func Truncate(v Value, i int) Value {
	if v.top {
		return v
	}
	out := Zero(len(v.m))
	for x := 1; x <= i && x < len(out); x += 2 {
		out[x] = v.m[x]
	}
	return Of(out)
}

// carry copies the odd positions 1..hi of m into a fresh vector of length n
// and adds one at hi, propagating towards position 1.
func carry(m, bound Measure, hi, n int) Value {
	out := Zero(n)
	for x := 1; x <= hi; x += 2 {
		out[x] = m.At(x)
	}
	for x := lastOdd(hi); x >= 1; x -= 2 {
		if out[x] < bound.At(x) {
			out[x]++
			return Of(out)
		}
		out[x] = 0
	}
	return Top()
}
