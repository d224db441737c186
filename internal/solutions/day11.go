package solutions

import (
	"sort"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// CosmicExpansionSolver sums galaxy distances in an expanding universe.
type CosmicExpansionSolver struct{}

func init() { mustRegister(CosmicExpansionSolver{}) }

func (CosmicExpansionSolver) Day() int      { return 11 }
func (CosmicExpansionSolver) Title() string { return "Cosmic Expansion" }

const (
	expansionPartOne = 2
	expansionPartTwo = 1_000_000
)

func (CosmicExpansionSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	grid, err := puzzle.ParseGrid(input)
	if err != nil {
		return 0, err
	}
	factor := int64(expansionPartOne)
	if part == puzzle.PartTwo {
		factor = expansionPartTwo
	}
	return galaxyDistances(grid, factor), nil
}

// galaxyDistances returns the sum of pairwise distances after every empty row
// and column has grown to factor rows or columns.
func galaxyDistances(grid *puzzle.Grid, factor int64) int64 {
	rowUsed := make([]bool, grid.Rows())
	colUsed := make([]bool, grid.Cols())
	var galaxies []puzzle.Coord
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			if grid.At(puzzle.Coord{X: x, Y: y}) == '#' {
				galaxies = append(galaxies, puzzle.Coord{X: x, Y: y})
				rowUsed[y] = true
				colUsed[x] = true
			}
		}
	}
	rowPos := expandedPositions(rowUsed, factor)
	colPos := expandedPositions(colUsed, factor)

	xs := make([]int64, len(galaxies))
	ys := make([]int64, len(galaxies))
	for i, g := range galaxies {
		xs[i] = colPos[g.X]
		ys[i] = rowPos[g.Y]
	}
	return pairwiseSpread(xs) + pairwiseSpread(ys)
}

// expandedPositions maps each index to its coordinate once unused indices are widened.
func expandedPositions(used []bool, factor int64) []int64 {
	out := make([]int64, len(used))
	var pos int64
	for i, u := range used {
		out[i] = pos
		if u {
			pos++
		} else {
			pos += factor
		}
	}
	return out
}

// pairwiseSpread returns the sum of |a-b| over all unordered pairs.
func pairwiseSpread(values []int64) int64 {
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	var sum, prefix int64
	for i, v := range values {
		sum += int64(i)*v - prefix
		prefix += v
	}
	return sum
}
