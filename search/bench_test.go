package search_test

import (
	"testing"

	"github.com/katalvlaran/crucible/search"
)

// BenchmarkBestFirst_Map measures the map-backed cost table on a long line.
func BenchmarkBestFirst_Map(b *testing.B) {
	p := &lineProblem{n: 100000, goal: 99999}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BestFirst[int](p, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBestFirst_Dense measures the same search with the Indexed extension.
func BenchmarkBestFirst_Dense(b *testing.B) {
	p := &indexedLine{lineProblem{n: 100000, goal: 99999}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BestFirst[int](p, 0); err != nil {
			b.Fatal(err)
		}
	}
}
