package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

var finnedFishSolverIDs = map[int]solution.SolverID{
	2: solution.FinnedXWing,
	3: solution.FinnedSwordfish,
	4: solution.FinnedJellyfish,
}

// FinnedFish relaxes Fish's exact base/cover match: one base line may
// carry extra ("fin") occurrences of the digit outside the ordinary
// cover set, so long as every fin cell shares a single box. Any cover
// cell outside the base lines but inside that box can then be
// eliminated, since a fin-box cell and the fish body can't both hold
// the digit without one fin cell seeing it twice over. Grounded on the
// reference find_finned_fish (base/cover mask search with an
// all_equal_value box check over the fin cells).
func FinnedFish(n int) Func {
	return func(b *board.Board) (*solution.Solution, bool) {
		if sol, ok := finnedFishOneOrientation(b, n, geometry.DimRow); ok {
			return sol, true
		}
		return finnedFishOneOrientation(b, n, geometry.DimCol)
	}
}

func finnedFishOneOrientation(b *board.Board, n int, baseDim geometry.Dimension) (*solution.Solution, bool) {
	crossDim := baseDim.Other()
	baseLines := make([]geometry.House, 9)
	crossLines := make([]geometry.House, 9)
	for i := 0; i < 9; i++ {
		baseLines[i] = geometry.FromDimAndID(baseDim, i)
		crossLines[i] = geometry.FromDimAndID(crossDim, i)
	}
	for d := 1; d <= 9; d++ {
		baseWithD := linesContaining(b, baseLines, d)
		crossWithD := linesContaining(b, crossLines, d)
		if len(baseWithD) < n || len(crossWithD) < n {
			continue
		}
		for _, base := range mask.CombinationsOf(baseWithD, n) {
			for _, cover := range mask.CombinationsOf(crossWithD, n) {
				body := cellsWithDigitAcross(b, base, cover, d)
				if len(body) == 0 {
					continue
				}
				coverComplement := complementOf(cover, crossLines)
				fins := cellsWithDigitAcross(b, base, coverComplement, d)
				if len(fins) == 0 {
					continue
				}
				finBox, ok := sameBox(fins)
				if !ok {
					continue
				}
				baseComplement := complementOf(base, baseLines)
				var actions []solution.Action
				for _, c := range cellsWithDigitAcross(b, baseComplement, cover, d) {
					if geometry.BoxOf(c.Row, c.Col) == finBox {
						actions = append(actions, solution.Eliminate(c, mask.FromDigit(d)))
					}
				}
				if len(actions) == 0 {
					continue
				}
				clues := make([]solution.Candidate, 0, len(body)+len(fins))
				for _, c := range body {
					clues = append(clues, solution.Candidate{Cell: c, Mask: mask.FromDigit(d)})
				}
				for _, c := range fins {
					clues = append(clues, solution.Candidate{Cell: c, Mask: mask.FromDigit(d)})
				}
				return &solution.Solution{
					Actions:        actions,
					HouseClues:     append(append([]geometry.House{}, base...), cover...),
					CandidateClues: clues,
					SolverID:       finnedFishSolverIDs[n],
				}, true
			}
		}
	}
	return nil, false
}

// linesContaining filters lines down to those still carrying d.
func linesContaining(b *board.Board, lines []geometry.House, d int) []geometry.House {
	var out []geometry.House
	for _, h := range lines {
		if len(b.CellsWithCandidate(h, d)) > 0 {
			out = append(out, h)
		}
	}
	return out
}

// complementOf returns the houses of all not present in chosen,
// preserving all's order.
func complementOf(chosen, all []geometry.House) []geometry.House {
	var out []geometry.House
	for _, h := range all {
		if !containsHouse(chosen, h) {
			out = append(out, h)
		}
	}
	return out
}

func containsHouse(houses []geometry.House, h geometry.House) bool {
	for _, x := range houses {
		if x == h {
			return true
		}
	}
	return false
}

// cellsWithDigitAcross enumerates, in first-line-major then
// second-line-minor order, the cells at the intersection of each
// first/second line pair that still carry d - mirroring the
// reference's nested flat_map over base then cross indices.
func cellsWithDigitAcross(b *board.Board, firstLines, secondLines []geometry.House, d int) []geometry.Coord {
	var out []geometry.Coord
	for _, fh := range firstLines {
		for _, sh := range secondLines {
			c := geometry.Intersect(fh, sh)[0]
			if b.Candidates(c).Has(d) {
				out = append(out, c)
			}
		}
	}
	return out
}

func sameBox(cells []geometry.Coord) (int, bool) {
	if len(cells) == 0 {
		return 0, false
	}
	box := geometry.BoxOf(cells[0].Row, cells[0].Col)
	for _, c := range cells[1:] {
		if geometry.BoxOf(c.Row, c.Col) != box {
			return 0, false
		}
	}
	return box, true
}

var (
	FinnedXWing     = FinnedFish(2)
	FinnedSwordfish = FinnedFish(3)
	FinnedJellyfish = FinnedFish(4)
)
