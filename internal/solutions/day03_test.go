package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day03Sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestGearRatios_Sample(t *testing.T) {
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartOne, day03Sample, 4361)
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartTwo, day03Sample, 467835)
}

func TestGearRatios_NumberAtRowEnd(t *testing.T) {
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartOne, "..12\n.#..\n", 12)
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartTwo, "2*3\n...\n..4\n", 6)
}

func TestGearRatios_GearNeedsExactlyTwo(t *testing.T) {
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartTwo, "2.3\n.*.\n4..\n", 0)
}

func TestGearRatios_Empty(t *testing.T) {
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartOne, "", 0)
}

func TestGearRatios_DiagonalSymbols(t *testing.T) {
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartOne, "*...\n.12.\n...7\n", 12)
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartOne, "12.\n..#\n", 12)
	solveAndCheck(t, GearRatiosSolver{}, puzzle.PartOne, "12..\n...#\n", 0)
}
