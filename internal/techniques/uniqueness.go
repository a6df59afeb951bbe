package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// uniquenessRectangles lists every rectangle of two rows and two
// columns whose four corners lie in exactly two boxes (rows in one
// band and columns in two stacks, or the reverse), as
// {(r1,c1), (r1,c2), (r2,c1), (r2,c2)}. It makes no candidate check;
// callers test the corners' candidates themselves.
func uniquenessRectangles(b *board.Board) [][4]geometry.Coord {
	var out [][4]geometry.Coord
	for r1 := 0; r1 < 9; r1++ {
		for r2 := r1 + 1; r2 < 9; r2++ {
			for c1 := 0; c1 < 9; c1++ {
				for c2 := c1 + 1; c2 < 9; c2++ {
					if (r1/3 == r2/3) == (c1/3 == c2/3) {
						continue
					}
					out = append(out, [4]geometry.Coord{{r1, c1}, {r1, c2}, {r2, c1}, {r2, c2}})
				}
			}
		}
	}
	return out
}

// UniqueRectangleType1 finds a deadly rectangle's floor of three cells
// sharing bivalue pair {x,y} and a roof cell with x, y plus extras,
// eliminating x and y from the roof (forcing it to its extra digits).
func UniqueRectangleType1(b *board.Board) (*solution.Solution, bool) {
	for _, rect := range uniquenessRectangles(b) {
		cells := rect[:]
		floor, roof, pair, ok := classifyRectangle(b, cells)
		if !ok || len(floor) != 3 {
			continue
		}
		rc := b.Cell(roof)
		if rc.Kind != board.KindUnsolved || rc.Candidates.Intersect(pair).Count() != 2 {
			continue
		}
		extra := rc.Candidates.Subtract(pair)
		if extra.IsEmpty() {
			continue
		}
		return &solution.Solution{
			Actions:        []solution.Action{solution.Eliminate(roof, pair)},
			CandidateClues: rectClues(cells, pair),
			SolverID:       solution.UniqueRectangleType1,
		}, true
	}
	return nil, false
}

// BUGPlusOne fires when every unsolved cell has exactly 2 candidates
// except one with exactly 3: that cell's extra digit (the one not
// shared as a strict pair partner anywhere) must be the solution.
func BUGPlusOne(b *board.Board) (*solution.Solution, bool) {
	var triValued geometry.Coord
	found := false
	for _, c := range geometry.AllCells() {
		cell := b.Cell(c)
		if cell.Kind != board.KindUnsolved {
			continue
		}
		switch cell.Candidates.Count() {
		case 2:
			continue
		case 3:
			if found {
				return nil, false
			}
			triValued = c
			found = true
		default:
			return nil, false
		}
	}
	if !found {
		return nil, false
	}
	for _, d := range b.Cell(triValued).Candidates.Digits() {
		occurrences := 0
		occurrences += len(b.CellsWithCandidate(geometry.Row(triValued.Row), d))
		occurrences += len(b.CellsWithCandidate(geometry.Col(triValued.Col), d))
		occurrences += len(b.CellsWithCandidate(geometry.Box(geometry.BoxOf(triValued.Row, triValued.Col)), d))
		if occurrences%2 == 1 {
			return &solution.Solution{
				Actions:        []solution.Action{solution.Confirm(triValued, d)},
				CandidateClues: []solution.Candidate{{Cell: triValued, Mask: b.Candidates(triValued)}},
				SolverID:       solution.BUGPlusOne,
			}, true
		}
	}
	return nil, false
}

// classifyRectangle reports whether 3 of the 4 cells share the same
// bivalue pair (the "floor"), returning that floor, the remaining
// cell (the "roof"), and the shared pair.
func classifyRectangle(b *board.Board, cells []geometry.Coord) (floor []geometry.Coord, roof geometry.Coord, pair mask.Mask, ok bool) {
	for _, c := range cells {
		cell := b.Cell(c)
		if cell.Kind != board.KindUnsolved || cell.Candidates.Count() < 2 {
			return nil, geometry.Coord{}, 0, false
		}
	}
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			pm := mask.FromDigits([]int{x, y})
			var group []geometry.Coord
			for _, c := range cells {
				if b.Candidates(c) == pm {
					group = append(group, c)
				}
			}
			if len(group) != 3 {
				continue
			}
			for _, c := range cells {
				if !containsCoord(group, c) {
					return group, c, pm, true
				}
			}
		}
	}
	return nil, geometry.Coord{}, 0, false
}

func rectClues(cells []geometry.Coord, pair mask.Mask) []solution.Candidate {
	out := make([]solution.Candidate, len(cells))
	for i, c := range cells {
		out[i] = solution.Candidate{Cell: c, Mask: pair}
	}
	return out
}
