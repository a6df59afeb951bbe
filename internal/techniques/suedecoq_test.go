package techniques

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// TestSueDeCoqConcreteScenario reproduces the literal fixture from the
// original sue-de-coq reference implementation (its first of three
// cases), checking the eliminations and house clues exactly; the
// candidate-clue grouping here is yoke/orion/scorpius rather than the
// reference's finer orion/yoke-overlap/scorpius/yoke-overlap/rotten-yoke
// breakdown, so that part is checked only for shape.
func TestSueDeCoqConcreteScenario(t *testing.T) {
	raws := [81]uint16{
		1, 8, 128, 4, 2, 64, 48, 48, 256, 2, 32, 64, 16, 256, 8, 4, 128, 1, 272, 4, 272,
		128, 32, 1, 64, 8, 2, 4, 256, 32, 8, 16, 2, 1, 64, 128, 64, 1, 8, 32, 4, 128, 256,
		2, 16, 128, 16, 2, 65, 65, 256, 40, 36, 44, 280, 128, 276, 2, 9, 32, 24, 277, 64,
		296, 64, 260, 257, 128, 16, 2, 293, 44, 312, 2, 1, 320, 72, 4, 128, 304, 40,
	}
	b := board.NewWithCandidates(candidatesFromRawRustBits(raws))
	sol, ok := SueDeCoq(b)
	if !ok {
		t.Fatalf("expected a sue de coq to be found")
	}

	wantActions := []struct {
		cell   geometry.Coord
		target mask.Mask
	}{
		{geometry.Coord{Row: 7, Col: 0}, mask.FromDigit(9)},
		{geometry.Coord{Row: 8, Col: 0}, mask.FromDigit(9)},
		{geometry.Coord{Row: 6, Col: 4}, mask.FromDigit(4)},
		{geometry.Coord{Row: 6, Col: 7}, mask.FromDigit(5)},
	}
	if len(sol.Actions) != len(wantActions) {
		t.Fatalf("got %d elimination actions, want %d", len(sol.Actions), len(wantActions))
	}
	for i, want := range wantActions {
		a := sol.Actions[i]
		if a.Eliminate == nil || a.Eliminate.Cell != want.cell || a.Eliminate.Target != want.target {
			t.Fatalf("action %d = %+v, want elimination of %v at %v", i, a, want.target, want.cell)
		}
	}

	wantHouses := []geometry.House{geometry.Box(6), geometry.Row(6)}
	if len(sol.HouseClues) != len(wantHouses) {
		t.Fatalf("got %d house clues, want %d", len(sol.HouseClues), len(wantHouses))
	}
	for i, h := range wantHouses {
		if sol.HouseClues[i] != h {
			t.Fatalf("house clue %d = %v, want %v", i, sol.HouseClues[i], h)
		}
	}

	seps := 0
	for _, c := range sol.CandidateClues {
		if c == solution.Sep {
			seps++
		}
	}
	if seps != 2 {
		t.Fatalf("got %d separators in candidate clues, want 2 (yoke | orion | scorpius)", seps)
	}
	if len(sol.CandidateClues) <= seps {
		t.Fatalf("expected candidate clues beyond the separators, got %d total", len(sol.CandidateClues))
	}
}
