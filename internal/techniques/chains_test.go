package techniques

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
)

// TestEmptyRectangleConcreteScenario reproduces the literal fixture
// from the original empty-rectangle reference implementation.
func TestEmptyRectangleConcreteScenario(t *testing.T) {
	raws := [81]uint16{
		1, 66, 128, 256, 96, 16, 8, 6, 36, 258, 98, 288, 8, 4, 66, 128, 16, 1, 8, 16, 4,
		162, 33, 129, 64, 258, 288, 130, 131, 67, 4, 16, 66, 256, 32, 8, 32, 4, 66, 66, 8,
		256, 16, 1, 128, 16, 256, 8, 1, 128, 32, 4, 64, 2, 388, 161, 16, 224, 353, 133, 2,
		8, 260, 64, 8, 288, 160, 2, 132, 1, 388, 16, 134, 131, 3, 16, 257, 8, 32, 388, 64,
	}
	b := board.NewWithCandidates(candidatesFromRawRustBits(raws))
	sol, ok := EmptyRectangle(b)
	if !ok {
		t.Fatalf("expected an empty rectangle to be found")
	}

	target := mask.FromDigit(2)
	wantCell := geometry.Coord{Row: 3, Col: 1}
	if len(sol.Actions) != 1 {
		t.Fatalf("expected 1 elimination action, got %d", len(sol.Actions))
	}
	if sol.Actions[0].Eliminate == nil || sol.Actions[0].Eliminate.Cell != wantCell || sol.Actions[0].Eliminate.Target != target {
		t.Fatalf("action = %+v, want elimination of digit 2 at %v", sol.Actions[0], wantCell)
	}

	wantHouses := []geometry.House{geometry.Box(0), geometry.Row(1), geometry.Col(1)}
	if len(sol.HouseClues) != len(wantHouses) {
		t.Fatalf("got %d house clues, want %d", len(sol.HouseClues), len(wantHouses))
	}
	for i, h := range wantHouses {
		if sol.HouseClues[i] != h {
			t.Fatalf("house clue %d = %v, want %v", i, sol.HouseClues[i], h)
		}
	}

	wantClues := []geometry.Coord{
		{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 5}, {Row: 3, Col: 5},
	}
	if len(sol.CandidateClues) != len(wantClues) {
		t.Fatalf("got %d candidate clues, want %d", len(sol.CandidateClues), len(wantClues))
	}
	for i, c := range wantClues {
		clue := sol.CandidateClues[i]
		if clue.Cell != c || clue.Mask != target {
			t.Fatalf("candidate clue %d = %+v, want {%v, digit 2}", i, clue, c)
		}
	}
}
