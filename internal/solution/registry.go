package solution

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrUnknownDay is returned when no solution is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// Func computes one answer from the puzzle input.
type Func func(ctx context.Context, input string) (int, error)

// Solution is one registered day.
type Solution struct {
	Day   int
	Part1 Func
	Part2 Func
	// Parse optionally exposes the parsed puzzle model for debugging.
	Parse func(input string) (any, error)
}

// Func returns the solver for part, or nil if the part is not implemented.
func (s Solution) Func(part Part) Func {
	switch part {
	case Part1:
		return s.Part1
	case Part2:
		return s.Part2
	default:
		return nil
	}
}

// Run computes the answer for part.
func (s Solution) Run(ctx context.Context, part Part, input string) (int, error) {
	fn := s.Func(part)
	if fn == nil {
		return 0, fmt.Errorf("day %d %s is not implemented", s.Day, part)
	}

	return fn(ctx, input)
}

// Registry maps days to solutions. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Solution
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Solution)}
}

// Register adds s. Registering a day twice or a day outside 1..25 panics,
// since it can only happen through a programming error at init time.
func (r *Registry) Register(s Solution) {
	if s.Day < 1 || s.Day > 25 {
		panic(fmt.Sprintf("solution: day %d out of range", s.Day))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.days[s.Day]; dup {
		panic(fmt.Sprintf("solution: day %d registered twice", s.Day))
	}

	r.days[s.Day] = s
}

// Lookup returns the solution for day.
func (r *Registry) Lookup(day int) (Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.days[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.days))
}

// Default is the registry day packages register into.
var Default = NewRegistry()

// Register adds s to the Default registry.
func Register(s Solution) {
	Default.Register(s)
}
