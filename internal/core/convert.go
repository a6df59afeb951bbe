package core

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/engine"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// FromStep converts an engine.Step into the wire-format Move the
// HTTP transport returns, flattening the technique's actions and
// house/candidate clues into renderer-friendly primary/secondary
// highlight lists.
func FromStep(stepIndex int, step engine.Step) Move {
	sol := step.Solution
	m := Move{
		StepIndex: stepIndex,
		Technique: step.Technique.Name,
		Refs: TechniqueRef{
			Title: step.Technique.Name,
			Slug:  step.Technique.Slug,
			Tier:  string(step.Technique.Tier),
		},
	}

	for _, a := range sol.Actions {
		switch {
		case a.Confirm != nil:
			m.Action = "assign"
			m.Digit = a.Confirm.Digit
			m.Targets = append(m.Targets, CellRef{Row: a.Confirm.Cell.Row, Col: a.Confirm.Cell.Col})
		case a.Eliminate != nil:
			m.Action = "eliminate"
			for _, d := range a.Eliminate.Target.Digits() {
				m.Eliminations = append(m.Eliminations, Candidate{
					Row: a.Eliminate.Cell.Row, Col: a.Eliminate.Cell.Col, Digit: d,
				})
			}
		}
	}

	m.Highlights = highlightsFromClues(sol)
	return m
}

// highlightsFromClues splits a Solution's candidate clues into
// primary (before the first Sep) and secondary (after it) highlight
// groups; house clues contribute every cell of the named house to
// the primary group.
func highlightsFromClues(sol *solution.Solution) Highlights {
	var h Highlights
	group := &h.Primary
	for _, cl := range sol.CandidateClues {
		if cl.Separator {
			group = &h.Secondary
			continue
		}
		*group = append(*group, CellRef{Row: cl.Cell.Row, Col: cl.Cell.Col})
	}
	for _, house := range sol.HouseClues {
		for _, c := range geometry.Cells(house) {
			h.Primary = append(h.Primary, CellRef{Row: c.Row, Col: c.Col})
		}
	}
	return h
}

// BoardGrid flattens a board into a row-major digit grid, 0 for
// still-unsolved cells, for JSON responses.
func BoardGrid(b *board.Board) [81]int {
	var grid [81]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := b.Cell(geometry.Coord{Row: r, Col: c})
			if cell.Kind != board.KindUnsolved {
				grid[r*9+c] = cell.Digit
			}
		}
	}
	return grid
}
