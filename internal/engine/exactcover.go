package engine

import (
	"context"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/dlx"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
)

// FullSolveOutcome mirrors dlx.Outcome at the engine's API boundary,
// independent of the solver's internal package layout.
type FullSolveOutcome int

const (
	FullSolveNone FullSolveOutcome = iota
	FullSolveUnique
	FullSolveMultiple
)

// FullSolve exhaustively solves b's givens via exact cover, for
// callers that want the completed grid regardless of whether a
// human-style technique chain could reach it (puzzle generation,
// uniqueness validation).
func FullSolve(ctx context.Context, b *board.Board) ([81]int, FullSolveOutcome) {
	var givens [81]int
	for i, c := range geometry.AllCells() {
		cell := b.Cell(c)
		if cell.Kind != board.KindUnsolved {
			givens[i] = cell.Digit
		}
	}
	solver := dlx.New(givens)
	grid, outcome := solver.Solve(ctx)
	return grid, FullSolveOutcome(outcome)
}

// HasUniqueSolution reports whether b's givens admit exactly one
// completion, the well-posedness check a puzzle must pass.
func HasUniqueSolution(ctx context.Context, b *board.Board) bool {
	_, outcome := FullSolve(ctx, b)
	return outcome == FullSolveUnique
}
