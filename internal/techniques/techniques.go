// Package techniques implements the human-style Sudoku solving
// battery: singles, locked candidates, subsets, fish, single-digit
// chain patterns, uniqueness rectangles, wings, coloring, and Sue de
// Coq. Every technique has the same shape: given a board, either find
// one applicable move and report it as a solution.Solution, or report
// nothing.
package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// Func is the shape every technique in this package implements.
type Func func(b *board.Board) (*solution.Solution, bool)
