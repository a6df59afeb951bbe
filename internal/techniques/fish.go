package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

var fishSolverIDs = map[int]solution.SolverID{
	2: solution.XWing,
	3: solution.Swordfish,
	4: solution.Jellyfish,
}

// Fish finds an n-fish for some digit: n base lines (all rows, or all
// columns) whose candidate positions for that digit are confined to
// the same n cross lines, eliminating the digit from the rest of
// those cross lines. Tries rows-as-base and columns-as-base in turn,
// the way a row/column-symmetric fish search naturally does.
func Fish(n int) Func {
	return func(b *board.Board) (*solution.Solution, bool) {
		if sol, ok := fishOneOrientation(b, n, geometry.DimRow); ok {
			return sol, true
		}
		return fishOneOrientation(b, n, geometry.DimCol)
	}
}

func fishOneOrientation(b *board.Board, n int, baseDim geometry.Dimension) (*solution.Solution, bool) {
	crossDim := baseDim.Other()
	baseLines := make([]geometry.House, 9)
	for i := 0; i < 9; i++ {
		baseLines[i] = geometry.FromDimAndID(baseDim, i)
	}
	for d := 1; d <= 9; d++ {
		for _, combo := range mask.CombinationsOf(baseLines, n) {
			crossIdx := mask.Empty
			cellCount := 0
			for _, h := range combo {
				positions := b.CellsWithCandidate(h, d)
				if len(positions) == 0 || len(positions) > n {
					crossIdx = mask.Mask(0xFFFF) // sentinel: too many, bail this combo
					break
				}
				for _, c := range positions {
					idx := crossIndex(c, crossDim)
					if !crossIdx.Has(idx + 1) {
						crossIdx = crossIdx.With(idx + 1)
						cellCount++
					}
				}
			}
			if crossIdx == mask.Mask(0xFFFF) || cellCount != n {
				continue
			}
			var actions []solution.Action
			for _, crossID := range crossIdx.Digits() {
				crossHouse := geometry.FromDimAndID(crossDim, crossID-1)
				for _, c := range b.CellsWithCandidate(crossHouse, d) {
					if !inHouseSet(c, combo, baseDim) {
						actions = append(actions, solution.Eliminate(c, mask.FromDigit(d)))
					}
				}
			}
			if len(actions) == 0 {
				continue
			}
			clues := fishClues(b, combo, d)
			houseClues := append(append([]geometry.House{}, combo...), crossHousesOf(crossIdx, crossDim)...)
			return &solution.Solution{
				Actions:        actions,
				HouseClues:     houseClues,
				CandidateClues: clues,
				SolverID:       fishSolverIDs[n],
			}, true
		}
	}
	return nil, false
}

func crossIndex(c geometry.Coord, crossDim geometry.Dimension) int {
	if crossDim == geometry.DimRow {
		return c.Row
	}
	return c.Col
}

func inHouseSet(c geometry.Coord, houses []geometry.House, dim geometry.Dimension) bool {
	for _, h := range houses {
		if geometry.IsInHouse(c, h) {
			return true
		}
	}
	_ = dim
	return false
}

func crossHousesOf(idx mask.Mask, crossDim geometry.Dimension) []geometry.House {
	var out []geometry.House
	for _, id := range idx.Digits() {
		out = append(out, geometry.FromDimAndID(crossDim, id-1))
	}
	return out
}

func fishClues(b *board.Board, baseLines []geometry.House, d int) []solution.Candidate {
	var out []solution.Candidate
	for _, h := range baseLines {
		for _, c := range b.CellsWithCandidate(h, d) {
			out = append(out, solution.Candidate{Cell: c, Mask: mask.FromDigit(d)})
		}
	}
	return out
}

var (
	XWing     = Fish(2)
	Swordfish = Fish(3)
	Jellyfish = Fish(4)
)
