package spm_test

import (
	"testing"

	"github.com/katalvlaran/parity/builder"
	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

// BenchmarkSolve_Random compares the orderings on one random game of 300
// vertices with priorities up to 6.
func BenchmarkSolve_Random(b *testing.B) {
	g, err := builder.Random(300, builder.WithSeed(11), builder.WithMaxPriority(6))
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range strategy.Kinds() {
		s := strategy.MustNew(k)
		b.Run(k.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = spm.Solve(g, s)
			}
		})
	}
}

// BenchmarkSolve_Ladder measures the fixed ring workload.
func BenchmarkSolve_Ladder(b *testing.B) {
	g, err := builder.Ladder(1000)
	if err != nil {
		b.Fatal(err)
	}
	s := strategy.MustNew(strategy.Input)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spm.Solve(g, s)
	}
}
