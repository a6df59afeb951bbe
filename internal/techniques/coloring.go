package techniques

import (
	"sort"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// color is a cell's place in one hard-link chain for a single digit:
// light and dark alternate across every strong link in the chain, so
// any two same-colored cells that see each other are a contradiction.
type color int

const (
	uncolored color = iota
	light
	dark
)

func (c color) other() color {
	if c == light {
		return dark
	}
	if c == dark {
		return light
	}
	return uncolored
}

// Coloring builds a hard-link chain for each digit and looks for two
// ways a coloring contradicts itself: two same-colored cells seeing
// each other (that color is impossible, confirm the other), or a cell
// outside the chain seeing one cell of each color (it cannot hold the
// digit either way, eliminate it). Grounded on the colorizer/analyzer
// pair in the reference implementation.
func Coloring(b *board.Board) (*solution.Solution, bool) {
	for d := 1; d <= 9; d++ {
		for _, colors := range buildColoring(b, d) {
			if len(colors) < 4 {
				continue
			}
			if sol, ok := findColorContradiction(b, d, colors); ok {
				return sol, true
			}
			if sol, ok := findColorElimination(b, d, colors); ok {
				return sol, true
			}
		}
	}
	return nil, false
}

func buildColoring(b *board.Board, d int) []map[geometry.Coord]color {
	var chains []map[geometry.Coord]color
	visited := make(map[geometry.Coord]bool)
	for _, c := range geometry.AllCells() {
		if visited[c] || !b.Candidates(c).Has(d) {
			continue
		}
		colors := map[geometry.Coord]color{c: light}
		colorizeRec(b, d, c, light, colors)
		for cc := range colors {
			visited[cc] = true
		}
		chains = append(chains, colors)
	}
	return chains
}

func colorizeRec(b *board.Board, d int, c geometry.Coord, col color, colors map[geometry.Coord]color) {
	for _, ht := range []geometry.HouseType{geometry.TypeRow, geometry.TypeCol, geometry.TypeBox} {
		other, ok := b.HardLinkInHouseType(c, d, ht)
		if !ok {
			continue
		}
		if _, seen := colors[other]; seen {
			continue
		}
		colors[other] = col.other()
		colorizeRec(b, d, other, col.other(), colors)
	}
}

func findColorContradiction(b *board.Board, d int, colors map[geometry.Coord]color) (*solution.Solution, bool) {
	cells := coloredCells(colors)
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			a, c := cells[i], cells[j]
			if colors[a] != colors[c] || !geometry.Sees(a, c) {
				continue
			}
			// Both same-colored cells see each other: that color is
			// wrong everywhere, so confirm the opposite color's cells.
			wrong := colors[a]
			var actions []solution.Action
			var clues []solution.Candidate
			for _, cell := range cells {
				clues = append(clues, solution.Candidate{Cell: cell, Mask: mask.FromDigit(d)})
				if colors[cell] == wrong {
					actions = append(actions, solution.Eliminate(cell, mask.FromDigit(d)))
				} else {
					actions = append(actions, solution.Confirm(cell, d))
				}
			}
			return &solution.Solution{
				Actions:        actions,
				CandidateClues: clues,
				SolverID:       solution.Coloring,
			}, true
		}
	}
	return nil, false
}

func findColorElimination(b *board.Board, d int, colors map[geometry.Coord]color) (*solution.Solution, bool) {
	for _, c := range geometry.AllCells() {
		cell := b.Cell(c)
		if cell.Kind != board.KindUnsolved || !cell.Candidates.Has(d) {
			continue
		}
		if _, isColored := colors[c]; isColored {
			continue
		}
		seesLight, seesDark := false, false
		for peer, col := range colors {
			if !geometry.Sees(c, peer) {
				continue
			}
			if col == light {
				seesLight = true
			} else if col == dark {
				seesDark = true
			}
		}
		if seesLight && seesDark {
			var clues []solution.Candidate
			for _, cell := range coloredCells(colors) {
				clues = append(clues, solution.Candidate{Cell: cell, Mask: mask.FromDigit(d)})
			}
			return &solution.Solution{
				Actions:        []solution.Action{solution.Eliminate(c, mask.FromDigit(d))},
				CandidateClues: clues,
				SolverID:       solution.Coloring,
			}, true
		}
	}
	return nil, false
}

func coloredCells(colors map[geometry.Coord]color) []geometry.Coord {
	out := make([]geometry.Coord, 0, len(colors))
	for c := range colors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
