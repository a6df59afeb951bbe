package engine

import (
	"errors"
	"fmt"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// Outcome classifies how a solve attempt ended.
type Outcome string

const (
	OutcomeCompleted       Outcome = "completed"
	OutcomeStalled         Outcome = "stalled"
	OutcomeMaxStepsReached Outcome = "max_steps_reached"
)

// ErrNoApplicableTechnique is returned by FindNextMove when no
// registered technique can make progress on a board.
var ErrNoApplicableTechnique = errors.New("engine: no applicable technique found")

// Step pairs an applied Solution with the descriptor that produced
// it, for reporting a worked solution back to the caller.
type Step struct {
	Solution  *solution.Solution
	Technique *Descriptor
}

// Solver orchestrates the technique registry against a board.
type Solver struct {
	registry *Registry
}

// NewSolver builds a solver with every technique enabled.
func NewSolver() *Solver {
	return &Solver{registry: NewRegistry()}
}

// NewSolverWithRegistry builds a solver around a caller-supplied
// registry, e.g. one with specific techniques disabled for testing.
func NewSolverWithRegistry(r *Registry) *Solver {
	return &Solver{registry: r}
}

// Registry exposes the solver's technique registry.
func (s *Solver) Registry() *Registry { return s.registry }

// Apply performs every action in sol against b.
func Apply(b *board.Board, sol *solution.Solution) error {
	for _, a := range sol.Actions {
		switch {
		case a.Confirm != nil:
			if err := b.Place(a.Confirm.Cell, a.Confirm.Digit); err != nil {
				return fmt.Errorf("engine: applying confirmation: %w", err)
			}
		case a.Eliminate != nil:
			if err := b.Eliminate(a.Eliminate.Cell, a.Eliminate.Target); err != nil {
				return fmt.Errorf("engine: applying elimination: %w", err)
			}
		}
	}
	return nil
}

// FindNextMove returns the next solution the registry can find
// against b, or ErrNoApplicableTechnique if none applies.
func (s *Solver) FindNextMove(b *board.Board) (*solution.Solution, *Descriptor, error) {
	sol, d := FindNextMove(s.registry, b)
	if sol == nil {
		return nil, nil, ErrNoApplicableTechnique
	}
	return sol, d, nil
}

// SolveSteps repeatedly finds and applies the next move until the
// board is solved, no technique applies, or maxSteps is reached.
func (s *Solver) SolveSteps(b *board.Board, maxSteps int) ([]Step, Outcome) {
	var steps []Step
	for i := 0; i < maxSteps && !b.IsSolved(); i++ {
		sol, d, err := s.FindNextMove(b)
		if err != nil {
			return steps, OutcomeStalled
		}
		if err := Apply(b, sol); err != nil {
			return steps, OutcomeStalled
		}
		steps = append(steps, Step{Solution: sol, Technique: d})
	}
	if b.IsSolved() {
		return steps, OutcomeCompleted
	}
	return steps, OutcomeMaxStepsReached
}
