package techniques

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
)

// candidatesFromRawRustBits converts the original Rust reference's
// 0-indexed BitMap raw values (bit i = digit i+1) into this package's
// 1-indexed mask.Mask (bit d = digit d): every bit shifts up by one.
func candidatesFromRawRustBits(raws [81]uint16) [81]mask.Mask {
	var out [81]mask.Mask
	for i, r := range raws {
		out[i] = mask.Mask(r) << 1
	}
	return out
}

// TestHiddenPairConcreteScenario reproduces the literal fixture from
// the original hidden-pair reference implementation.
func TestHiddenPairConcreteScenario(t *testing.T) {
	raws := [81]uint16{
		1, 64, 32, 256, 2, 136, 28, 20, 144, 144, 8, 256, 209, 4, 193, 96, 34, 226, 148, 134,
		150, 32, 144, 200, 72, 1, 256, 2, 260, 1, 28, 56, 288, 116, 128, 112, 388, 32, 132, 23,
		64, 259, 20, 8, 18, 72, 16, 72, 134, 160, 162, 256, 38, 1, 472, 386, 218, 202, 168, 4,
		1, 48, 56, 92, 6, 94, 74, 1, 98, 128, 256, 56, 32, 1, 136, 136, 256, 16, 2, 64, 4,
	}
	b := board.NewWithCandidates(candidatesFromRawRustBits(raws))
	sol, ok := HiddenPair(b)
	if !ok {
		t.Fatalf("expected a hidden pair to be found")
	}
	if len(sol.Actions) != 1 {
		t.Fatalf("expected exactly one elimination action, got %d", len(sol.Actions))
	}
	elim := sol.Actions[0].Eliminate
	wantCell := geometry.Coord{Row: 2, Col: 5}
	if elim == nil || elim.Cell != wantCell || elim.Target != mask.FromDigit(8) {
		t.Fatalf("got action %+v, want elimination of digit 8 at %v", sol.Actions[0], wantCell)
	}
	if len(sol.HouseClues) != 1 || sol.HouseClues[0] != geometry.Row(2) {
		t.Fatalf("got house clues %v, want [Row(2)]", sol.HouseClues)
	}
	wantClueMask := mask.FromDigits([]int{4, 7})
	wantClueCells := []geometry.Coord{{Row: 2, Col: 5}, {Row: 2, Col: 6}}
	if len(sol.CandidateClues) != 2 {
		t.Fatalf("expected 2 candidate clues, got %d", len(sol.CandidateClues))
	}
	for i, clue := range sol.CandidateClues {
		if clue.Cell != wantClueCells[i] || clue.Mask != wantClueMask {
			t.Fatalf("clue %d = %+v, want cell %v mask %v", i, clue, wantClueCells[i], wantClueMask)
		}
	}
}

func TestHiddenPairNotFound(t *testing.T) {
	raws := [81]uint16{
		16, 1, 2, 32, 72, 192, 136, 4, 256, 44, 64, 36, 137, 256, 3, 170, 16, 129, 40, 256,
		128, 4, 11, 16, 64, 34, 33, 1, 52, 8, 144, 34, 132, 256, 98, 80, 256, 2, 52, 81, 65,
		69, 48, 128, 8, 128, 48, 64, 264, 40, 258, 50, 1, 4, 100, 52, 256, 2, 132, 8, 1, 96,
		144, 2, 128, 33, 321, 16, 321, 4, 8, 96, 68, 8, 17, 65, 132, 32, 144, 256, 2,
	}
	b := board.NewWithCandidates(candidatesFromRawRustBits(raws))
	if _, ok := HiddenPair(b); ok {
		t.Fatalf("expected no hidden pair in this board")
	}
}

func TestHiddenTripleConcreteScenario(t *testing.T) {
	raws := [81]uint16{
		194, 256, 82, 130, 146, 32, 1, 4, 8, 4, 25, 19, 64, 27, 17, 256, 32, 128, 129, 9, 32,
		4, 137, 256, 82, 82, 18, 67, 128, 87, 257, 68, 8, 50, 275, 307, 32, 17, 256, 130, 130,
		17, 4, 8, 64, 8, 68, 19, 32, 273, 68, 18, 128, 275, 65, 100, 69, 272, 96, 128, 8, 338,
		306, 16, 96, 128, 8, 257, 2, 96, 257, 4, 256, 2, 8, 17, 100, 68, 128, 81, 49,
	}
	b := board.NewWithCandidates(candidatesFromRawRustBits(raws))
	sol, ok := HiddenTriple(b)
	if !ok {
		t.Fatalf("expected a hidden triple to be found")
	}
	if len(sol.Actions) != 2 {
		t.Fatalf("expected 2 elimination actions, got %d", len(sol.Actions))
	}
	wantCells := []geometry.Coord{{Row: 6, Col: 7}, {Row: 6, Col: 8}}
	wantTargets := []mask.Mask{mask.FromDigit(7), mask.FromDigit(6)}
	for i, a := range sol.Actions {
		if a.Eliminate == nil || a.Eliminate.Cell != wantCells[i] || a.Eliminate.Target != wantTargets[i] {
			t.Fatalf("action %d = %+v, want cell %v target %v", i, a, wantCells[i], wantTargets[i])
		}
	}
	if len(sol.HouseClues) != 1 || sol.HouseClues[0] != geometry.Row(6) {
		t.Fatalf("got house clues %v, want [Row(6)]", sol.HouseClues)
	}
}

func TestHiddenQuadrupleConcreteScenario(t *testing.T) {
	raws := [81]uint16{
		16, 1, 2, 32, 72, 192, 136, 4, 256, 44, 64, 36, 137, 256, 3, 170, 16, 129, 40, 256,
		128, 4, 11, 16, 64, 34, 33, 1, 52, 8, 144, 34, 132, 256, 98, 80, 256, 2, 52, 81, 65,
		69, 48, 128, 8, 128, 48, 64, 280, 40, 258, 50, 1, 4, 100, 52, 256, 2, 132, 8, 1, 96,
		144, 2, 128, 33, 321, 16, 321, 4, 8, 96, 68, 8, 17, 65, 132, 32, 144, 256, 2,
	}
	b := board.NewWithCandidates(candidatesFromRawRustBits(raws))
	sol, ok := HiddenQuadruple(b)
	if !ok {
		t.Fatalf("expected a hidden quadruple to be found")
	}
	if len(sol.Actions) != 1 {
		t.Fatalf("expected 1 elimination action, got %d", len(sol.Actions))
	}
	wantCell := geometry.Coord{Row: 5, Col: 3}
	if sol.Actions[0].Eliminate == nil || sol.Actions[0].Eliminate.Cell != wantCell || sol.Actions[0].Eliminate.Target != mask.FromDigit(5) {
		t.Fatalf("action = %+v, want elimination of digit 5 at %v", sol.Actions[0], wantCell)
	}
	if len(sol.HouseClues) != 1 || sol.HouseClues[0] != geometry.Box(4) {
		t.Fatalf("got house clues %v, want [Box(4)]", sol.HouseClues)
	}
}
