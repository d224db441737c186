package solutions

import (
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const day15Sample = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"

func TestLensLibrary_Sample(t *testing.T) {
	solveAndCheck(t, LensLibrarySolver{}, puzzle.PartOne, day15Sample, 1320)
	solveAndCheck(t, LensLibrarySolver{}, puzzle.PartTwo, day15Sample, 145)
}

func TestHash(t *testing.T) {
	tests := map[string]int{
		"HASH": 52,
		"rn=1": 30,
		"cm-":  253,
		"rn":   0,
		"qp":   1,
		"":     0,
	}
	for in, want := range tests {
		if got := hash(in); got != want {
			t.Errorf("hash(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLensShelf_Apply(t *testing.T) {
	steps, err := parseLensSteps(day15Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var shelf lensShelf
	for _, step := range steps {
		shelf.apply(step)
	}
	if got := shelf[0]; len(got) != 2 || got[0] != (lens{"rn", 1}) || got[1] != (lens{"cm", 2}) {
		t.Errorf("box 0 = %v, want [rn 1] [cm 2]", got)
	}
	if got := shelf[3]; len(got) != 3 || got[0].label != "ot" || got[0].focal != 7 || got[2].label != "pc" {
		t.Errorf("box 3 = %v, want ot 7, ab 5, pc 6", got)
	}
	if got := shelf[1]; len(got) != 0 {
		t.Errorf("box 1 should be empty, got %v", got)
	}
}

func TestLensLibrary_IgnoresNewlines(t *testing.T) {
	solveAndCheck(t, LensLibrarySolver{}, puzzle.PartOne, "rn=1,cm-,qp=3,cm=2,\nqp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7", 1320)
}

func TestLensLibrary_Animate(t *testing.T) {
	animateAndCheck(t, LensLibrarySolver{}, puzzle.PartOne, day15Sample)
	animateAndCheck(t, LensLibrarySolver{}, puzzle.PartTwo, day15Sample)
}

func TestLensLibrary_InvalidInput(t *testing.T) {
	expectInvalidInput(t, LensLibrarySolver{}, "")
	expectInvalidInput(t, LensLibrarySolver{}, "rn=x")
	expectInvalidInput(t, LensLibrarySolver{}, "rn")
	expectInvalidInput(t, LensLibrarySolver{}, "=3")
}
