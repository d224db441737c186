package solutions

import (
	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// GearRatiosSolver reads part numbers off an engine schematic.
type GearRatiosSolver struct{}

func init() { mustRegister(GearRatiosSolver{}) }

func (GearRatiosSolver) Day() int      { return 3 }
func (GearRatiosSolver) Title() string { return "Gear Ratios" }

type partNumber struct {
	value int64
	row   int
	start int // first column
	end   int // last column, inclusive
}

// touches reports whether c is within one cell of the number, diagonals included.
func (n partNumber) touches(c puzzle.Coord) bool {
	return c.Y >= n.row-1 && c.Y <= n.row+1 && c.X >= n.start-1 && c.X <= n.end+1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != 0 && b != '.' && !isDigit(b) }

func (GearRatiosSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return 0, nil
	}
	grid, err := puzzle.ParseGrid(input)
	if err != nil {
		return 0, err
	}
	numbers := scanPartNumbers(grid)

	var sum int64
	switch part {
	case puzzle.PartOne:
		for _, n := range numbers {
			if numberTouchesSymbol(grid, n) {
				sum += n.value
			}
		}
	case puzzle.PartTwo:
		for y := 0; y < grid.Rows(); y++ {
			for x := 0; x < grid.Cols(); x++ {
				c := puzzle.Coord{X: x, Y: y}
				if grid.At(c) != '*' {
					continue
				}
				var adjacent []int64
				for _, n := range numbers {
					if n.touches(c) {
						adjacent = append(adjacent, n.value)
					}
				}
				if len(adjacent) == 2 {
					sum += adjacent[0] * adjacent[1]
				}
			}
		}
	}
	return sum, nil
}

func scanPartNumbers(grid *puzzle.Grid) []partNumber {
	var out []partNumber
	for y := 0; y < grid.Rows(); y++ {
		row := grid.Row(y)
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := partNumber{row: y, start: x}
			for x < len(row) && isDigit(row[x]) {
				n.value = n.value*10 + int64(row[x]-'0')
				x++
			}
			n.end = x - 1
			out = append(out, n)
		}
	}
	return out
}

func numberTouchesSymbol(grid *puzzle.Grid, n partNumber) bool {
	for x := n.start; x <= n.end; x++ {
		for _, c := range (puzzle.Coord{X: x, Y: n.row}).Neighbors8() {
			if isSymbol(grid.At(c)) {
				return true
			}
		}
	}
	return false
}
