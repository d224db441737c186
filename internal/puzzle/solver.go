package puzzle

import (
	"errors"
	"fmt"

	"github.com/jo-hoe/goadvent/internal/render"
)

var (
	// ErrUnknownDay is returned for days without a registered solver.
	ErrUnknownDay = errors.New("unknown day")
	// ErrInvalidInput wraps every parse failure of puzzle input.
	ErrInvalidInput = errors.New("invalid puzzle input")
	// ErrNotAnimated is returned when a day (or part) has no animation.
	ErrNotAnimated = errors.New("no animation available")
)

// Solver answers both parts of one day.
type Solver interface {
	Day() int
	Title() string
	Solve(part Part, input string) (int64, error)
}

// Animator is implemented by solvers that can show their work frame by frame.
type Animator interface {
	Animate(part Part, input string) ([]*render.Scene, error)
}

// InvalidInput builds an error wrapping ErrInvalidInput.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
