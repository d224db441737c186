package puzzle

import (
	"errors"
	"testing"
)

type stubSolver struct {
	day int
}

func (s stubSolver) Day() int      { return s.day }
func (s stubSolver) Title() string { return "Stub" }
func (s stubSolver) Solve(Part, string) (int64, error) {
	return int64(s.day), nil
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubSolver{day: 3}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := registry.Register(stubSolver{day: 3}); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if err := registry.Register(stubSolver{day: 0}); err == nil {
		t.Error("expected error for day 0")
	}
	if err := registry.Register(stubSolver{day: 26}); err == nil {
		t.Error("expected error for day 26")
	}
	if err := registry.Register(nil); err == nil {
		t.Error("expected error for nil solver")
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubSolver{day: 7}); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	solver, err := registry.Get(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if solver.Day() != 7 {
		t.Errorf("expected day 7, got %d", solver.Day())
	}

	_, err = registry.Get(8)
	if !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}
	if registry.IsRegistered(8) {
		t.Error("expected day 8 to not be registered")
	}
}

func TestRegistry_DaysSorted(t *testing.T) {
	registry := NewRegistry()
	if got := registry.Days(); len(got) != 0 {
		t.Fatalf("expected empty registry, got %v", got)
	}
	for _, day := range []int{12, 1, 5} {
		if err := registry.Register(stubSolver{day: day}); err != nil {
			t.Fatalf("failed to register day %d: %v", day, err)
		}
	}
	got := registry.Days()
	want := []int{1, 5, 12}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
