package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

var subsetSolverIDs = map[int]struct {
	naked, hidden solution.SolverID
}{
	2: {solution.NakedPair, solution.HiddenPair},
	3: {solution.NakedTriple, solution.HiddenTriple},
	4: {solution.NakedQuadruple, solution.HiddenQuadruple},
}

// NakedSubset finds n unsolved cells within one house whose candidate
// union has exactly n digits, and eliminates those digits from every
// other cell in the house.
func NakedSubset(n int) Func {
	return func(b *board.Board) (*solution.Solution, bool) {
		for _, h := range geometry.AllHouses() {
			unsolved := b.UnsolvedCells(h)
			for _, combo := range mask.CombinationsOf(unsolved, n) {
				union := mask.Empty
				for _, c := range combo {
					union = union.Union(b.Candidates(c))
				}
				if union.Count() != n {
					continue
				}
				var actions []solution.Action
				for _, c := range unsolved {
					if containsCoord(combo, c) {
						continue
					}
					overlap := b.Candidates(c).Intersect(union)
					if !overlap.IsEmpty() {
						actions = append(actions, solution.Eliminate(c, overlap))
					}
				}
				if len(actions) == 0 {
					continue
				}
				clues := make([]solution.Candidate, len(combo))
				for i, c := range combo {
					clues[i] = solution.Candidate{Cell: c, Mask: b.Candidates(c)}
				}
				return &solution.Solution{
					Actions:        actions,
					HouseClues:     []geometry.House{h},
					CandidateClues: clues,
					SolverID:       subsetSolverIDs[n].naked,
				}, true
			}
		}
		return nil, false
	}
}

// HiddenSubset finds n digits within one house confined between them
// to exactly n cells, and eliminates every other candidate from those
// cells. Grounded on the working Rust hidden_subset.rs generic solver.
func HiddenSubset(n int) Func {
	return func(b *board.Board) (*solution.Solution, bool) {
		for _, h := range geometry.AllHouses() {
			for _, combo := range mask.Combinations(n) {
				var actionCells []geometry.Coord
				for _, c := range b.UnsolvedCells(h) {
					if !b.Candidates(c).Intersect(combo).IsEmpty() {
						actionCells = append(actionCells, c)
					}
				}
				if len(actionCells) != n {
					continue
				}
				var actions []solution.Action
				for _, c := range actionCells {
					extra := b.Candidates(c).Subtract(combo)
					if !extra.IsEmpty() {
						actions = append(actions, solution.Eliminate(c, extra))
					}
				}
				if len(actions) == 0 {
					continue
				}
				clues := make([]solution.Candidate, len(actionCells))
				for i, c := range actionCells {
					clues[i] = solution.Candidate{Cell: c, Mask: b.Candidates(c).Intersect(combo)}
				}
				return &solution.Solution{
					Actions:        actions,
					HouseClues:     []geometry.House{h},
					CandidateClues: clues,
					SolverID:       subsetSolverIDs[n].hidden,
				}, true
			}
		}
		return nil, false
	}
}

func containsCoord(cells []geometry.Coord, c geometry.Coord) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

var (
	NakedPair      = NakedSubset(2)
	NakedTriple    = NakedSubset(3)
	NakedQuadruple = NakedSubset(4)

	HiddenPair      = HiddenSubset(2)
	HiddenTriple    = HiddenSubset(3)
	HiddenQuadruple = HiddenSubset(4)
)
