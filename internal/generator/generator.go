// Package generator builds complete grids and carves them down into
// puzzles with a unique solution, labelled by difficulty through the
// target clue counts in TierTargets; RequiredTechniques separately
// reports which techniques the engine uses to finish a puzzle.
// Grounded on the teacher's dp-package
// generator, with its hand-rolled backtracking uniqueness check
// replaced by the exact-cover solver in internal/dlx.
package generator

import (
	"context"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/engine"
)

// rng is a small deterministic LCG, used so a generation seed
// reproduces the exact same grid and carve order across runs.
type rng struct{ state int64 }

func newRNG(seed int64) *rng { return &rng{state: seed} }

func (r *rng) next() int {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return int(r.state)
}

func (r *rng) shuffle(arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := r.next() % (i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// FullGrid generates a complete, valid 9x9 solution deterministically
// from seed via randomized backtracking.
func FullGrid(seed int64) [81]int {
	var grid [81]int
	r := newRNG(seed)
	fillGrid(grid[:], r)
	return grid
}

func fillGrid(grid []int, r *rng) bool {
	idx := -1
	for i, v := range grid {
		if v == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	row, col := idx/9, idx%9
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.shuffle(digits)
	for _, d := range digits {
		if placementValid(grid, row, col, d) {
			grid[idx] = d
			if fillGrid(grid, r) {
				return true
			}
			grid[idx] = 0
		}
	}
	return false
}

func placementValid(grid []int, row, col, d int) bool {
	for i := 0; i < 9; i++ {
		if grid[row*9+i] == d || grid[i*9+col] == d {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if grid[(br+r)*9+bc+c] == d {
				return false
			}
		}
	}
	return true
}

func hasUniqueSolutionBoard(b *board.Board) bool {
	if b == nil {
		return false
	}
	return engine.HasUniqueSolution(context.Background(), b)
}

// CarveGivens removes cells from fullGrid, in a deterministic random
// order seeded by seed, stopping once targetGivens clues remain or no
// further cell can be removed without losing uniqueness.
func CarveGivens(fullGrid [81]int, targetGivens int, seed int64) [81]int {
	puzzle := fullGrid
	r := newRNG(seed + 1)
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	r.shuffle(positions)

	removed := 0
	target := 81 - targetGivens
	for _, pos := range positions {
		if removed >= target {
			break
		}
		old := puzzle[pos]
		puzzle[pos] = 0
		b, err := board.NewFromGivens(puzzle)
		if err != nil || !hasUniqueSolutionBoard(b) {
			puzzle[pos] = old
			continue
		}
		removed++
	}
	return puzzle
}

// TierTargets maps a difficulty name to its target clue count, fewer
// clues grading harder.
var TierTargets = map[string]int{
	"easy":       40,
	"medium":     34,
	"hard":       28,
	"extreme":    24,
	"impossible": 20,
}

// CarveWithSubset carves fullGrid down to the hardest ("impossible")
// target, then restores cells in reverse removal order to produce
// every easier difficulty, guaranteeing impossible ⊂ extreme ⊂ hard ⊂
// medium ⊂ easy as sets of givens.
func CarveWithSubset(fullGrid [81]int, seed int64) map[string][81]int {
	puzzle := fullGrid
	r := newRNG(seed + 1)
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	r.shuffle(positions)

	var removalOrder []int
	targetRemoved := 81 - TierTargets["impossible"]
	for _, pos := range positions {
		if len(removalOrder) >= targetRemoved {
			break
		}
		old := puzzle[pos]
		puzzle[pos] = 0
		b, err := board.NewFromGivens(puzzle)
		if err != nil || !hasUniqueSolutionBoard(b) {
			puzzle[pos] = old
			continue
		}
		removalOrder = append(removalOrder, pos)
	}

	result := map[string][81]int{"impossible": puzzle}
	for _, diff := range []string{"extreme", "hard", "medium", "easy"} {
		diffPuzzle := puzzle
		currentGivens := 81 - len(removalOrder)
		toRestore := TierTargets[diff] - currentGivens
		restored := 0
		for i := len(removalOrder) - 1; i >= 0 && restored < toRestore; i-- {
			pos := removalOrder[i]
			diffPuzzle[pos] = fullGrid[pos]
			restored++
		}
		result[diff] = diffPuzzle
	}
	return result
}

// RequiredTechniques drives the engine over givens until solved or
// stalled, returning which technique slugs fired and how many times.
func RequiredTechniques(givens [81]int) (map[string]int, engine.Outcome, error) {
	b, err := board.NewFromGivens(givens)
	if err != nil {
		return nil, engine.OutcomeStalled, err
	}
	solver := engine.NewSolver()
	steps, outcome := solver.SolveSteps(b, 1000)
	counts := make(map[string]int)
	for _, step := range steps {
		counts[step.Technique.Slug]++
	}
	return counts, outcome, nil
}
