package engine

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
)

const classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestSolveStepsCompletesClassicPuzzle(t *testing.T) {
	b, err := board.ParsePuzzleString(classicPuzzle)
	if err != nil {
		t.Fatalf("ParsePuzzleString: %v", err)
	}
	s := NewSolver()
	steps, outcome := s.SolveSteps(b, 500)
	if outcome != OutcomeCompleted {
		t.Fatalf("got outcome %v after %d steps, want completed", outcome, len(steps))
	}
	if !b.IsSolved() {
		t.Fatalf("board not solved after completed outcome")
	}
}

func TestRegistryDisableTechnique(t *testing.T) {
	r := NewRegistry()
	if !r.SetEnabled("naked-single", false) {
		t.Fatalf("expected naked-single to be a known slug")
	}
	for _, d := range r.Enabled() {
		if d.Slug == "naked-single" {
			t.Fatalf("naked-single should be disabled")
		}
	}
	if r.SetEnabled("not-a-real-technique", true) {
		t.Fatalf("expected unknown slug to report false")
	}
}
