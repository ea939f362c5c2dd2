package maze_test

import (
	"testing"

	"github.com/katalvlaran/orientpath/maze"
)

// BenchmarkCellsOnAnyOptimalPath runs parse-free search plus reconstruction
// on the larger reference maze.
func BenchmarkCellsOnAnyOptimalPath(b *testing.B) {
	m, err := maze.Parse(largeExample)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.CellsOnAnyOptimalPath(m)
	}
}

// BenchmarkParse measures validation and grid construction alone.
func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = maze.Parse(largeExample)
	}
}
