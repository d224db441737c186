package solutions

import (
	"fmt"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

func mustRegister(solver puzzle.Solver) {
	if err := puzzle.DefaultRegistry.Register(solver); err != nil {
		panic(fmt.Sprintf("failed to register day %d: %v", solver.Day(), err))
	}
}

func unknownPart(part puzzle.Part) error {
	return fmt.Errorf("%w: %v", puzzle.ErrInvalidPart, part)
}
