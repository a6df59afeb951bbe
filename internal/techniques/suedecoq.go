package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// SueDeCoq looks at the 2-3 cell intersection ("yoke") of a box and a
// line. If the yoke's candidates can be partitioned, together with an
// Almost Locked Set from the rest of the box ("orion") and one from
// the rest of the line ("scorpius"), with no digit in common, into
// exactly as many digits as cells, orion's digits are eliminated from
// the rest of the box and scorpius's digits from the rest of the line;
// a yoke digit in neither ALS is eliminated from both. Grounded on the
// yoke/orion/scorpius reference implementation.
func SueDeCoq(b *board.Board) (*solution.Solution, bool) {
	for boxIdx := 0; boxIdx < 9; boxIdx++ {
		boxHouse := geometry.Box(boxIdx)
		for _, line := range intersectingLines(boxIdx) {
			sol, ok := trySueDeCoq(b, boxHouse, line)
			if ok {
				return sol, true
			}
		}
	}
	return nil, false
}

func intersectingLines(boxIdx int) []geometry.House {
	startR, startC := (boxIdx/3)*3, (boxIdx%3)*3
	lines := make([]geometry.House, 0, 6)
	for i := 0; i < 3; i++ {
		lines = append(lines, geometry.Row(startR+i), geometry.Col(startC+i))
	}
	return lines
}

func trySueDeCoq(b *board.Board, boxHouse, line geometry.House) (*solution.Solution, bool) {
	var yoke []geometry.Coord
	for _, c := range geometry.Intersect(boxHouse, line) {
		if b.Cell(c).Kind == board.KindUnsolved {
			yoke = append(yoke, c)
		}
	}
	if len(yoke) < 2 {
		return nil, false
	}
	k := mask.Empty
	for _, c := range yoke {
		k = k.Union(b.Candidates(c))
	}
	if k.Count() < len(yoke)+2 {
		return nil, false
	}
	boxRest := restOfHouse(b, boxHouse, yoke)
	lineRest := restOfHouse(b, line, yoke)
	for _, orion := range alsCandidatesWithin(b, boxRest, k) {
		for _, scorpius := range alsCandidatesWithin(b, lineRest, k) {
			if !orion.Candidates.Intersect(scorpius.Candidates).IsEmpty() {
				continue
			}
			union := k.Union(orion.Candidates).Union(scorpius.Candidates)
			cellCount := len(yoke) + len(orion.Cells) + len(scorpius.Cells)
			if union.Count() != cellCount {
				continue
			}
			boxElim := orion.Candidates.Union(k.Subtract(scorpius.Candidates))
			lineElim := scorpius.Candidates.Union(k.Subtract(orion.Candidates))
			var actions []solution.Action
			for _, c := range boxRest {
				if containsCoord(orion.Cells, c) {
					continue
				}
				extra := b.Candidates(c).Intersect(boxElim)
				if !extra.IsEmpty() {
					actions = append(actions, solution.Eliminate(c, extra))
				}
			}
			for _, c := range lineRest {
				if containsCoord(scorpius.Cells, c) {
					continue
				}
				extra := b.Candidates(c).Intersect(lineElim)
				if !extra.IsEmpty() {
					actions = append(actions, solution.Eliminate(c, extra))
				}
			}
			if len(actions) == 0 {
				continue
			}
			clues := make([]solution.Candidate, 0, cellCount)
			for _, c := range yoke {
				clues = append(clues, solution.Candidate{Cell: c, Mask: b.Candidates(c)})
			}
			clues = append(clues, solution.Sep)
			for _, c := range orion.Cells {
				clues = append(clues, solution.Candidate{Cell: c, Mask: b.Candidates(c)})
			}
			clues = append(clues, solution.Sep)
			for _, c := range scorpius.Cells {
				clues = append(clues, solution.Candidate{Cell: c, Mask: b.Candidates(c)})
			}
			return &solution.Solution{
				Actions:        actions,
				HouseClues:     []geometry.House{boxHouse, line},
				CandidateClues: clues,
				SolverID:       solution.SueDeCoq,
			}, true
		}
	}
	return nil, false
}

func restOfHouse(b *board.Board, h geometry.House, exclude []geometry.Coord) []geometry.Coord {
	var out []geometry.Coord
	for _, c := range b.UnsolvedCells(h) {
		if !containsCoord(exclude, c) {
			out = append(out, c)
		}
	}
	return out
}

// alsCandidatesWithin enumerates every ALS found among cells whose
// combined candidates lie within k.
func alsCandidatesWithin(b *board.Board, cells []geometry.Coord, k mask.Mask) []board.ALS {
	var out []board.ALS
	for n := 1; n < len(cells); n++ {
		for _, combo := range mask.CombinationsOf(cells, n) {
			union := mask.Empty
			for _, c := range combo {
				union = union.Union(b.Candidates(c))
			}
			if !union.Subset(k) {
				continue
			}
			if union.Count() != n+1 {
				continue
			}
			out = append(out, board.ALS{Cells: append([]geometry.Coord{}, combo...), Candidates: union})
		}
	}
	return out
}

