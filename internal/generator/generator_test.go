package generator

import (
	"context"
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/engine"
)

func TestFullGridIsValid(t *testing.T) {
	grid := FullGrid(42)
	b, err := board.NewFromGivens(grid)
	if err != nil {
		t.Fatalf("generated grid failed validation: %v", err)
	}
	if !b.IsSolved() {
		t.Fatalf("generated grid is not fully solved")
	}
}

func TestCarveGivensKeepsUniqueSolution(t *testing.T) {
	grid := FullGrid(7)
	puzzle := CarveGivens(grid, 30, 7)
	givenCount := 0
	for _, d := range puzzle {
		if d != 0 {
			givenCount++
		}
	}
	if givenCount > 81 || givenCount < 17 {
		t.Fatalf("unreasonable given count: %d", givenCount)
	}
	b, err := board.NewFromGivens(puzzle)
	if err != nil {
		t.Fatalf("carved puzzle failed validation: %v", err)
	}
	if !engine.HasUniqueSolution(context.Background(), b) {
		t.Fatalf("carved puzzle should retain a unique solution")
	}
}
