package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

const (
	FirstDay = 1
	LastDay  = 25
)

// Registry manages the solvers available per day.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[int]Solver),
	}
}

// Register adds a solver for its day.
func (r *Registry) Register(solver Solver) error {
	if solver == nil {
		return fmt.Errorf("solver cannot be nil")
	}
	day := solver.Day()
	if day < FirstDay || day > LastDay {
		return fmt.Errorf("day %d is outside %d..%d", day, FirstDay, LastDay)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.solvers[day]; exists {
		return fmt.Errorf("day %d is already registered", day)
	}
	r.solvers[day] = solver
	return nil
}

// Get returns the solver registered for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	solver, exists := r.solvers[day]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return solver, nil
}

// IsRegistered checks if a solver exists for day.
func (r *Registry) IsRegistered(day int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.solvers[day]
	return exists
}

// Days returns all registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// DefaultRegistry is the registry the solutions package registers into.
var DefaultRegistry = NewRegistry()
