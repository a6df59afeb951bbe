package techniques

import (
	"testing"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
)

// TestXYWingConcreteScenario builds the hinge/pincer triangle
// described by the XY-Wing scenario: a bivalue hinge P{1,2} seeing
// pincers Q{1,3} and R{2,3}, both sharing extra digit 3 with each
// other - eliminating 3 from every cell pinched by Q and R.
func TestXYWingConcreteScenario(t *testing.T) {
	var candidates [81]mask.Mask
	for i := range candidates {
		candidates[i] = mask.All9
	}
	p := geometry.Coord{Row: 0, Col: 0}
	q := geometry.Coord{Row: 0, Col: 8}
	r := geometry.Coord{Row: 8, Col: 0}
	candidates[p.Row*9+p.Col] = mask.FromDigits([]int{1, 2})
	candidates[q.Row*9+q.Col] = mask.FromDigits([]int{1, 3})
	candidates[r.Row*9+r.Col] = mask.FromDigits([]int{2, 3})

	b := board.NewWithCandidates(candidates)
	sol, ok := XYWing(b)
	if !ok {
		t.Fatalf("expected an xy-wing to be found")
	}

	pinched := geometry.PinchedBy(q, r)
	var wantActions []geometry.Coord
	for _, c := range pinched {
		if candidates[c.Row*9+c.Col].Has(3) {
			wantActions = append(wantActions, c)
		}
	}
	if len(wantActions) == 0 {
		t.Fatalf("test setup error: no pinched cell carries digit 3")
	}
	if len(sol.Actions) != len(wantActions) {
		t.Fatalf("got %d elimination actions, want %d", len(sol.Actions), len(wantActions))
	}
	for i, c := range wantActions {
		a := sol.Actions[i]
		if a.Eliminate == nil || a.Eliminate.Cell != c || a.Eliminate.Target != mask.FromDigit(3) {
			t.Fatalf("action %d = %+v, want elimination of digit 3 at %v", i, a, c)
		}
	}
}
