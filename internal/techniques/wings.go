package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// XYWing looks for a bivalue hinge cell XY seeing two bivalue pincers
// XZ and YZ (sharing one candidate each with the hinge and a common
// candidate Z with each other), eliminating Z from every cell both
// pincers see.
func XYWing(b *board.Board) (*solution.Solution, bool) {
	bivalues := bivalueCells(b)
	for _, hinge := range bivalues {
		hingeCands := b.Candidates(hinge).Digits()
		if len(hingeCands) != 2 {
			continue
		}
		x, y := hingeCands[0], hingeCands[1]
		var pincerX, pincerY []geometry.Coord
		for _, c := range bivalues {
			if c == hinge || !geometry.Sees(hinge, c) {
				continue
			}
			cand := b.Candidates(c)
			if cand.Has(x) && !cand.Has(y) {
				pincerX = append(pincerX, c)
			} else if cand.Has(y) && !cand.Has(x) {
				pincerY = append(pincerY, c)
			}
		}
		for _, px := range pincerX {
			zx := b.Candidates(px).Without(x)
			z, ok := zx.Single()
			if !ok {
				continue
			}
			for _, py := range pincerY {
				zy := b.Candidates(py).Without(y)
				if zv, ok := zy.Single(); !ok || zv != z {
					continue
				}
				var actions []solution.Action
				for _, c := range geometry.PinchedBy(px, py) {
					cell := b.Cell(c)
					if cell.Kind == board.KindUnsolved && cell.Candidates.Has(z) {
						actions = append(actions, solution.Eliminate(c, mask.FromDigit(z)))
					}
				}
				if len(actions) == 0 {
					continue
				}
				clues := []solution.Candidate{
					{Cell: hinge, Mask: b.Candidates(hinge)},
					{Cell: px, Mask: b.Candidates(px)},
					{Cell: py, Mask: b.Candidates(py)},
				}
				return &solution.Solution{
					Actions:        actions,
					CandidateClues: clues,
					SolverID:       solution.XYWing,
				}, true
			}
		}
	}
	return nil, false
}

// XYZWing is XY-Wing with a trivalent hinge XYZ that itself sees both
// pincers, so Z is eliminated only from cells that see the hinge as
// well as both pincers.
func XYZWing(b *board.Board) (*solution.Solution, bool) {
	for _, hinge := range geometry.AllCells() {
		hc := b.Cell(hinge)
		if hc.Kind != board.KindUnsolved || hc.Candidates.Count() != 3 {
			continue
		}
		digits := hc.Candidates.Digits()
		for _, z := range digits {
			rest := hc.Candidates.Without(z).Digits()
			if len(rest) != 2 {
				continue
			}
			x, y := rest[0], rest[1]
			var pincerX, pincerY []geometry.Coord
			for _, c := range geometry.SeeableCells(hinge) {
				cell := b.Cell(c)
				if cell.Kind != board.KindUnsolved || cell.Candidates.Count() != 2 {
					continue
				}
				cand := cell.Candidates
				if cand.Has(x) && cand.Has(z) && !cand.Has(y) {
					pincerX = append(pincerX, c)
				}
				if cand.Has(y) && cand.Has(z) && !cand.Has(x) {
					pincerY = append(pincerY, c)
				}
			}
			for _, px := range pincerX {
				for _, py := range pincerY {
					var actions []solution.Action
					common := append(geometry.PinchedBy(px, py), hinge)
					seen := map[geometry.Coord]bool{}
					for _, c := range common {
						if seen[c] {
							continue
						}
						seen[c] = true
						if c == hinge {
							continue
						}
						if !geometry.Sees(c, hinge) {
							continue
						}
						cell := b.Cell(c)
						if cell.Kind == board.KindUnsolved && cell.Candidates.Has(z) {
							actions = append(actions, solution.Eliminate(c, mask.FromDigit(z)))
						}
					}
					if len(actions) == 0 {
						continue
					}
					clues := []solution.Candidate{
						{Cell: hinge, Mask: hc.Candidates},
						{Cell: px, Mask: b.Candidates(px)},
						{Cell: py, Mask: b.Candidates(py)},
					}
					return &solution.Solution{
						Actions:        actions,
						CandidateClues: clues,
						SolverID:       solution.XYZWing,
					}, true
				}
			}
		}
	}
	return nil, false
}

// WWing looks for two bivalue cells sharing the same candidate pair
// {x, y}, joined by a strong (hard) link on y between some cell each
// of them sees, eliminating x from every cell both bivalue cells see.
func WWing(b *board.Board) (*solution.Solution, bool) {
	bivalues := bivalueCells(b)
	for i := 0; i < len(bivalues); i++ {
		for j := i + 1; j < len(bivalues); j++ {
			p, q := bivalues[i], bivalues[j]
			cp, cq := b.Candidates(p), b.Candidates(q)
			if cp != cq || geometry.Sees(p, q) {
				continue
			}
			digits := cp.Digits()
			if len(digits) != 2 {
				continue
			}
			for _, vx := range digits {
				vy := digits[0]
				if vy == vx {
					vy = digits[1]
				}
				if !wWingLinked(b, p, q, vy) {
					continue
				}
				var actions []solution.Action
				for _, c := range geometry.PinchedBy(p, q) {
					cell := b.Cell(c)
					if cell.Kind == board.KindUnsolved && cell.Candidates.Has(vx) {
						actions = append(actions, solution.Eliminate(c, mask.FromDigit(vx)))
					}
				}
				if len(actions) == 0 {
					continue
				}
				clues := []solution.Candidate{
					{Cell: p, Mask: cp},
					{Cell: q, Mask: cq},
				}
				return &solution.Solution{
					Actions:        actions,
					CandidateClues: clues,
					SolverID:       solution.WWing,
				}, true
			}
		}
	}
	return nil, false
}

// wWingLinked reports whether p and q are joined by a strong link on
// digit d: some cell r seen by p and some cell s seen by q, both
// holding d, with r and s themselves hard-linked on d within a row or
// column (r and s are always two different cells).
func wWingLinked(b *board.Board, p, q geometry.Coord, d int) bool {
	for _, r := range geometry.SeeableCells(p) {
		if !b.Candidates(r).Has(d) {
			continue
		}
		for _, dim := range []geometry.Dimension{geometry.DimRow, geometry.DimCol} {
			other, ok := b.HardLink(r, d, dim)
			if ok && other != p && geometry.Sees(other, q) {
				return true
			}
		}
	}
	return false
}

func bivalueCells(b *board.Board) []geometry.Coord {
	var out []geometry.Coord
	for _, c := range geometry.AllCells() {
		cell := b.Cell(c)
		if cell.Kind == board.KindUnsolved && cell.Candidates.Count() == 2 {
			out = append(out, c)
		}
	}
	return out
}
