package board

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/geometry"
)

const nakedSinglePuzzle = "..24...5...92..7.334..8.....3.1....495.....378....3.1.....7..616.5..23...9...84.."

func TestParsePuzzleStringRoundTrip(t *testing.T) {
	b, err := ParsePuzzleString(nakedSinglePuzzle)
	if err != nil {
		t.Fatalf("ParsePuzzleString: %v", err)
	}
	if b.String() != nakedSinglePuzzle {
		t.Fatalf("round trip mismatch:\ngot  %s\nwant %s", b.String(), nakedSinglePuzzle)
	}
}

func TestParsePuzzleStringInvalidLength(t *testing.T) {
	if _, err := ParsePuzzleString("123"); err == nil {
		t.Fatalf("expected error for short puzzle string")
	}
}

func TestPlaceRemovesFromPeers(t *testing.T) {
	var givens [81]int
	b, err := NewFromGivens(givens)
	if err != nil {
		t.Fatalf("NewFromGivens: %v", err)
	}
	c := geometry.Coord{Row: 0, Col: 0}
	if err := b.Place(c, 5); err != nil {
		t.Fatalf("Place: %v", err)
	}
	for _, p := range geometry.SeeableCells(c) {
		if b.Candidates(p).Has(5) {
			t.Fatalf("peer %v still has candidate 5 after Place", p)
		}
	}
	if b.Cell(c).Kind != KindSolved || b.Cell(c).Digit != 5 {
		t.Fatalf("cell at %v = %+v, want Solved(5)", c, b.Cell(c))
	}
}

func TestValidateDetectsDuplicate(t *testing.T) {
	var givens [81]int
	givens[0] = 5
	givens[1] = 5 // same row, duplicate
	b := &Board{}
	for i, d := range givens {
		if d == 0 {
			b.cells[i] = Cell{Kind: KindUnsolved, Candidates: 0x3FE}
		} else {
			b.cells[i] = Cell{Kind: KindGiven, Digit: d}
		}
	}
	if err := b.Validate(); err == nil {
		t.Fatalf("expected Validate to reject duplicate digits in a row")
	}
}

func TestEliminateTracksEliminatedSeparately(t *testing.T) {
	var givens [81]int
	b, _ := NewFromGivens(givens)
	c := geometry.Coord{Row: 3, Col: 3}
	if err := b.Eliminate(c, 0b10); err != nil { // digit 1
		t.Fatalf("Eliminate: %v", err)
	}
	if b.Candidates(c).Has(1) {
		t.Fatalf("expected digit 1 eliminated at %v", c)
	}
}

func TestALSByHouse(t *testing.T) {
	b, err := ParsePuzzleString(nakedSinglePuzzle)
	if err != nil {
		t.Fatalf("ParsePuzzleString: %v", err)
	}
	for _, h := range geometry.AllHouses() {
		for _, als := range b.ALSByHouse(h) {
			if als.Candidates.Count() != len(als.Cells)+1 {
				t.Fatalf("ALS %+v violates size invariant", als)
			}
		}
	}
}
