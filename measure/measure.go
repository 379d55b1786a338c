package measure

import (
	"strconv"
	"strings"
)

// Measure is a vector of counters indexed by priority. Only odd positions
// are significant; position 1 is the most significant digit.
type Measure []int

// Zero returns the all-zero measure of length n (n < 0 is treated as 0).
func Zero(n int) Measure {
	if n < 0 {
		n = 0
	}
	return make(Measure, n)
}

// Len reports the declared length of m.
func (m Measure) Len() int { return len(m) }

// At returns the counter at index i, or 0 when i lies outside m.
func (m Measure) At(i int) int {
	if i < 0 || i >= len(m) {
		return 0
	}
	return m[i]
}

// Clone returns an independent copy of m.
func (m Measure) Clone() Measure {
	if m == nil {
		return nil
	}
	c := make(Measure, len(m))
	copy(c, m)
	return c
}

// String renders m as "(c0,c1,...)".
func (m Measure) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(')')
	return sb.String()
}

// EqualUpto reports whether a and b agree at every odd position 1..i.
func EqualUpto(a, b Measure, i int) bool {
	for x := 1; x <= i; x += 2 {
		if a.At(x) != b.At(x) {
			return false
		}
	}
	return true
}

// GreaterUpto reports whether a is lexicographically greater than b when
// only the odd positions 1..i are considered, position 1 first.
func GreaterUpto(a, b Measure, i int) bool {
	for x := 1; x <= i; x += 2 {
		av, bv := a.At(x), b.At(x)
		if av != bv {
			return av > bv
		}
	}
	return false
}

// GreaterOrEqualUpto is GreaterUpto or EqualUpto.
func GreaterOrEqualUpto(a, b Measure, i int) bool {
	return !GreaterUpto(b, a, i)
}

// LessUpto is the complement of GreaterOrEqualUpto.
func LessUpto(a, b Measure, i int) bool {
	return GreaterUpto(b, a, i)
}

// LessOrEqualUpto is the complement of GreaterUpto.
func LessOrEqualUpto(a, b Measure, i int) bool {
	return !GreaterUpto(a, b, i)
}

// Compare orders a and b over their full length and returns -1, 0 or +1.
func Compare(a, b Measure) int {
	i := fullIndex(a, b)
	switch {
	case EqualUpto(a, b, i):
		return 0
	case GreaterUpto(a, b, i):
		return 1
	default:
		return -1
	}
}

// Equal reports whether a and b are equal over their full length.
func Equal(a, b Measure) bool {
	return EqualUpto(a, b, fullIndex(a, b))
}

// fullIndex is the last index covered by either vector.
func fullIndex(a, b Measure) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	return n - 1
}

// lastOdd returns the largest odd index <= i, or -1 if there is none.
func lastOdd(i int) int {
	if i < 1 {
		return -1
	}
	if i%2 == 0 {
		i--
	}
	return i
}
