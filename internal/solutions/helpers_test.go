package solutions

import (
	"errors"
	"testing"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

func solveAndCheck(t *testing.T, solver puzzle.Solver, part puzzle.Part, input string, want int64) {
	t.Helper()
	got, err := solver.Solve(part, input)
	if err != nil {
		t.Fatalf("day %d part %v: unexpected error: %v", solver.Day(), part, err)
	}
	if got != want {
		t.Errorf("day %d part %v = %d, want %d", solver.Day(), part, got, want)
	}
}

func expectInvalidInput(t *testing.T, solver puzzle.Solver, input string) {
	t.Helper()
	for _, part := range []puzzle.Part{puzzle.PartOne, puzzle.PartTwo} {
		_, err := solver.Solve(part, input)
		if !errors.Is(err, puzzle.ErrInvalidInput) {
			t.Errorf("day %d part %v: expected ErrInvalidInput, got %v", solver.Day(), part, err)
		}
	}
}

func animateAndCheck(t *testing.T, solver puzzle.Solver, part puzzle.Part, input string) {
	t.Helper()
	animator, ok := solver.(puzzle.Animator)
	if !ok {
		t.Fatalf("day %d does not implement Animator", solver.Day())
	}
	scenes, err := animator.Animate(part, input)
	if err != nil {
		t.Fatalf("day %d part %v: animate error: %v", solver.Day(), part, err)
	}
	if len(scenes) < 2 {
		t.Fatalf("day %d part %v: expected several frames, got %d", solver.Day(), part, len(scenes))
	}
	for i, scene := range scenes {
		if scene.Width <= 0 || scene.Height <= 0 {
			t.Fatalf("frame %d has invalid size %dx%d", i, scene.Width, scene.Height)
		}
	}
}
