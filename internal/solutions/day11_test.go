package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day11Sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestCosmicExpansion_Sample(t *testing.T) {
	solveAndCheck(t, CosmicExpansionSolver{}, puzzle.PartOne, day11Sample, 374)
	solveAndCheck(t, CosmicExpansionSolver{}, puzzle.PartTwo, day11Sample, 82000210)
}

func TestGalaxyDistances_Factors(t *testing.T) {
	grid, err := puzzle.ParseGrid(day11Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		factor int64
		want   int64
	}{
		{1, 292},
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tt := range tests {
		if got := galaxyDistances(grid, tt.factor); got != tt.want {
			t.Errorf("factor %d: got %d, want %d", tt.factor, got, tt.want)
		}
	}
}

func TestPairwiseSpread(t *testing.T) {
	if got := pairwiseSpread([]int64{5, 1, 3}); got != 8 {
		t.Errorf("pairwiseSpread = %d, want 8", got)
	}
	if got := pairwiseSpread(nil); got != 0 {
		t.Errorf("pairwiseSpread(nil) = %d, want 0", got)
	}
}

func TestCosmicExpansion_InvalidInput(t *testing.T) {
	expectInvalidInput(t, CosmicExpansionSolver{}, "")
	expectInvalidInput(t, CosmicExpansionSolver{}, "#..\n.#")
}
