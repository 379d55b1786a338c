// Package measure implements the value lattice used by the small progress
// measures algorithm: bounded counter vectors (Measure) extended with a
// distinguished greatest element (Top).
//
// What
//
//   - A Measure is a vector with one counter per priority 0..d. Only odd
//     positions carry information; even positions (and index 0) stay 0.
//   - Counters are compared lexicographically with index 1 as the most
//     significant digit. The "_upto(i)" family restricts the comparison to
//     the odd positions 1..i; missing positions are read as 0.
//   - A Value is either a Measure or Top. Top is strictly greater than every
//     Measure and equal only to itself, in every "_upto" comparison.
//   - Increment is the successor in a mixed-radix counter whose odd digits
//     range over [0, bound[i]]. Overflow of the most significant digit
//     escapes to Top, and Top increments to Top.
//
// Complexity
//
//   - Every comparison and increment is O(d) time; increments allocate one
//     new vector of length d+1.
//
// Usage
//
//	bound := measure.Measure{0, 1, 0, 2}
//	v := measure.Of(measure.Zero(4))
//	v = measure.Increment(v, bound) // (0,0,0,1)
//	v = measure.Increment(v, bound) // (0,0,0,2)
//	v = measure.Increment(v, bound) // (0,1,0,0)
//	_ = v.GreaterUpto(measure.Top(), 3) // false: Top absorbs
package measure
