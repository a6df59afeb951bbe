package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// NakedSingle confirms any unsolved cell that has exactly one
// remaining candidate.
func NakedSingle(b *board.Board) (*solution.Solution, bool) {
	for _, c := range geometry.AllCells() {
		cell := b.Cell(c)
		if cell.Kind != board.KindUnsolved {
			continue
		}
		if d, ok := cell.Candidates.Single(); ok {
			return &solution.Solution{
				Actions:        []solution.Action{solution.Confirm(c, d)},
				CandidateClues: []solution.Candidate{{Cell: c, Mask: mask.FromDigit(d)}},
				SolverID:       solution.NakedSingle,
			}, true
		}
	}
	return nil, false
}

// HiddenSingle confirms a digit that, within some house, has only one
// remaining candidate cell.
func HiddenSingle(b *board.Board) (*solution.Solution, bool) {
	for _, h := range geometry.AllHouses() {
		for d := 1; d <= 9; d++ {
			cells := b.CellsWithCandidate(h, d)
			if len(cells) == 1 {
				c := cells[0]
				if b.Cell(c).Candidates.Count() == 1 {
					continue // already a naked single, let that technique claim it
				}
				return &solution.Solution{
					Actions:        []solution.Action{solution.Confirm(c, d)},
					HouseClues:     []geometry.House{h},
					CandidateClues: []solution.Candidate{{Cell: c, Mask: mask.FromDigit(d)}},
					SolverID:       solution.HiddenSingle,
				}, true
			}
		}
	}
	return nil, false
}

// Pointing looks for a digit confined, within one box, to a single
// row or column, and eliminates it from the rest of that row/column.
func Pointing(b *board.Board) (*solution.Solution, bool) {
	for boxIdx := 0; boxIdx < 9; boxIdx++ {
		boxHouse := geometry.Box(boxIdx)
		for d := 1; d <= 9; d++ {
			cells := b.CellsWithCandidate(boxHouse, d)
			if len(cells) < 2 {
				continue
			}
			sameRow, sameCol := true, true
			for _, c := range cells[1:] {
				if c.Row != cells[0].Row {
					sameRow = false
				}
				if c.Col != cells[0].Col {
					sameCol = false
				}
			}
			var line geometry.House
			switch {
			case sameRow:
				line = geometry.Row(cells[0].Row)
			case sameCol:
				line = geometry.Col(cells[0].Col)
			default:
				continue
			}
			var actions []solution.Action
			for _, c := range b.CellsWithCandidate(line, d) {
				if geometry.BoxOf(c.Row, c.Col) != boxIdx {
					actions = append(actions, solution.Eliminate(c, mask.FromDigit(d)))
				}
			}
			if len(actions) == 0 {
				continue
			}
			clues := make([]solution.Candidate, len(cells))
			for i, c := range cells {
				clues[i] = solution.Candidate{Cell: c, Mask: mask.FromDigit(d)}
			}
			return &solution.Solution{
				Actions:        actions,
				HouseClues:     []geometry.House{boxHouse, line},
				CandidateClues: clues,
				SolverID:       solution.Pointing,
			}, true
		}
	}
	return nil, false
}

// Claiming looks for a digit confined, within one row or column, to a
// single box, and eliminates it from the rest of that box.
func Claiming(b *board.Board) (*solution.Solution, bool) {
	lines := make([]geometry.House, 0, 18)
	for i := 0; i < 9; i++ {
		lines = append(lines, geometry.Row(i), geometry.Col(i))
	}
	for _, line := range lines {
		for d := 1; d <= 9; d++ {
			cells := b.CellsWithCandidate(line, d)
			if len(cells) < 2 {
				continue
			}
			boxIdx := geometry.BoxOf(cells[0].Row, cells[0].Col)
			sameBox := true
			for _, c := range cells[1:] {
				if geometry.BoxOf(c.Row, c.Col) != boxIdx {
					sameBox = false
					break
				}
			}
			if !sameBox {
				continue
			}
			boxHouse := geometry.Box(boxIdx)
			var actions []solution.Action
			for _, c := range b.CellsWithCandidate(boxHouse, d) {
				inLine := false
				for _, lc := range cells {
					if lc == c {
						inLine = true
						break
					}
				}
				if !inLine {
					actions = append(actions, solution.Eliminate(c, mask.FromDigit(d)))
				}
			}
			if len(actions) == 0 {
				continue
			}
			clues := make([]solution.Candidate, len(cells))
			for i, c := range cells {
				clues[i] = solution.Candidate{Cell: c, Mask: mask.FromDigit(d)}
			}
			return &solution.Solution{
				Actions:        actions,
				HouseClues:     []geometry.House{line, boxHouse},
				CandidateClues: clues,
				SolverID:       solution.Claiming,
			}, true
		}
	}
	return nil, false
}
