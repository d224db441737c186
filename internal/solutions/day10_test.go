package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day10SimpleLoop = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

const day10ComplexLoop = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

const day10Enclosed = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const day10Squeezed = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

func TestPipeMaze_PartOne(t *testing.T) {
	solveAndCheck(t, PipeMazeSolver{}, puzzle.PartOne, day10SimpleLoop, 4)
	solveAndCheck(t, PipeMazeSolver{}, puzzle.PartOne, day10ComplexLoop, 8)
}

func TestPipeMaze_PartTwo(t *testing.T) {
	solveAndCheck(t, PipeMazeSolver{}, puzzle.PartTwo, day10Enclosed, 4)
	solveAndCheck(t, PipeMazeSolver{}, puzzle.PartTwo, day10Squeezed, 4)
}

func TestPipeLoop_ParityMatchesShoelace(t *testing.T) {
	for _, input := range []string{day10SimpleLoop, day10ComplexLoop, day10Enclosed, day10Squeezed} {
		loop, err := tracePipeLoop(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := int64(len(loop.insideTiles())), loop.enclosed(); got != want {
			t.Errorf("scanline found %d tiles, shoelace %d", got, want)
		}
	}
}

func TestPipeMaze_StartPipe(t *testing.T) {
	loop, err := tracePipeLoop(day10SimpleLoop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := loop.grid.At(puzzle.Coord{X: 1, Y: 1}); got != 'F' {
		t.Errorf("start tile resolved to %q, want 'F'", got)
	}
}

func TestPipeMaze_Animate(t *testing.T) {
	animateAndCheck(t, PipeMazeSolver{}, puzzle.PartOne, day10ComplexLoop)
	animateAndCheck(t, PipeMazeSolver{}, puzzle.PartTwo, day10Enclosed)
}

func TestPipeMaze_InvalidInput(t *testing.T) {
	expectInvalidInput(t, PipeMazeSolver{}, "")
	expectInvalidInput(t, PipeMazeSolver{}, "...\n.-.\n...")
	expectInvalidInput(t, PipeMazeSolver{}, ".S.\n...\n...")
}
