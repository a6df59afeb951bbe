package core

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/engine"
)

const classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestFromStepAndBoardGridAgainstClassicPuzzle(t *testing.T) {
	b, err := board.ParsePuzzleString(classicPuzzle)
	if err != nil {
		t.Fatalf("ParsePuzzleString: %v", err)
	}
	solver := engine.NewSolver()
	steps, outcome := solver.SolveSteps(b, 500)
	if outcome != engine.OutcomeCompleted {
		t.Fatalf("expected completed outcome, got %v", outcome)
	}
	if len(steps) == 0 {
		t.Fatalf("expected at least one step")
	}

	move := FromStep(0, steps[0])
	if move.Refs.Slug != steps[0].Technique.Slug {
		t.Fatalf("move refs slug mismatch: got %q want %q", move.Refs.Slug, steps[0].Technique.Slug)
	}
	if move.Action != "assign" && move.Action != "eliminate" {
		t.Fatalf("unexpected move action: %q", move.Action)
	}

	grid := BoardGrid(b)
	for _, d := range grid {
		if d < 0 || d > 9 {
			t.Fatalf("grid digit out of range: %d", d)
		}
		if d == 0 {
			t.Fatalf("expected a fully solved grid with no blanks")
		}
	}
}
