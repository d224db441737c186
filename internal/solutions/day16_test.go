package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day16Sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestFloorWillBeLava_Sample(t *testing.T) {
	solveAndCheck(t, FloorWillBeLavaSolver{}, puzzle.PartOne, day16Sample, 46)
	solveAndCheck(t, FloorWillBeLavaSolver{}, puzzle.PartTwo, day16Sample, 51)
}

func TestBestEntry(t *testing.T) {
	g, err := parseContraption(day16Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, n := bestEntry(g)
	if n != 51 {
		t.Fatalf("best entry energizes %d tiles, want 51", n)
	}
	want := beam{pos: puzzle.Coord{X: 3, Y: 0}, heading: puzzle.Down}
	if entry != want {
		t.Errorf("best entry = %+v, want %+v", entry, want)
	}
}

func TestDeflect(t *testing.T) {
	tests := []struct {
		tile byte
		in   puzzle.Direction
		want []puzzle.Direction
	}{
		{'.', puzzle.Right, []puzzle.Direction{puzzle.Right}},
		{'/', puzzle.Right, []puzzle.Direction{puzzle.Up}},
		{'/', puzzle.Down, []puzzle.Direction{puzzle.Left}},
		{'\\', puzzle.Up, []puzzle.Direction{puzzle.Left}},
		{'\\', puzzle.Left, []puzzle.Direction{puzzle.Up}},
		{'|', puzzle.Up, []puzzle.Direction{puzzle.Up}},
		{'|', puzzle.Left, []puzzle.Direction{puzzle.Up, puzzle.Down}},
		{'-', puzzle.Down, []puzzle.Direction{puzzle.Left, puzzle.Right}},
	}
	for _, tt := range tests {
		got := deflect(tt.tile, tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("deflect(%q, %v) = %v, want %v", tt.tile, tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("deflect(%q, %v) = %v, want %v", tt.tile, tt.in, got, tt.want)
			}
		}
	}
}

func TestEnergize_LoopTerminates(t *testing.T) {
	g, err := parseContraption("/-\\\n|.|\n\\-/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := energizedCount(g, beam{pos: puzzle.Coord{X: 1, Y: 0}, heading: puzzle.Right}); got != 8 {
		t.Errorf("energized %d tiles, want 8", got)
	}
}

func TestFloorWillBeLava_Animate(t *testing.T) {
	animateAndCheck(t, FloorWillBeLavaSolver{}, puzzle.PartOne, day16Sample)
	animateAndCheck(t, FloorWillBeLavaSolver{}, puzzle.PartTwo, day16Sample)
}

func TestFloorWillBeLava_InvalidInput(t *testing.T) {
	expectInvalidInput(t, FloorWillBeLavaSolver{}, "")
	expectInvalidInput(t, FloorWillBeLavaSolver{}, ".x.")
}
