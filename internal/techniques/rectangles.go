package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// baseLine is a row or column carrying two unsolved cells that share
// the exact same bivalue pair - the starting point shared by
// Uniqueness Test 2, 3, and 4. Grounded on the reference
// find_base_line.
type baseLine struct {
	house         geometry.House
	first, second int
	biValue       mask.Mask
}

func findBaseLines(b *board.Board) []baseLine {
	var out []baseLine
	for _, dim := range []geometry.Dimension{geometry.DimRow, geometry.DimCol} {
		for i := 0; i < 9; i++ {
			h := geometry.FromDimAndID(dim, i)
			for first := 0; first < 9; first++ {
				fcell := b.Cell(geometry.FromHouseAndIndex(h, first))
				if fcell.Kind != board.KindUnsolved || fcell.Candidates.Count() != 2 {
					continue
				}
				for second := first + 1; second < 9; second++ {
					scell := b.Cell(geometry.FromHouseAndIndex(h, second))
					if scell.Kind == board.KindUnsolved && scell.Candidates == fcell.Candidates {
						out = append(out, baseLine{house: h, first: first, second: second, biValue: fcell.Candidates})
						break
					}
				}
			}
		}
	}
	return out
}

// semiPossibleUR pairs a base line with a candidate span line: the
// parallel line, on the opposite side of the box band, whose two
// cells at the base's positions could still hold the base's bivalue
// pair. Grounded on the reference semi_possible_ur.
type semiPossibleUR struct {
	base      baseLine
	spanHouse geometry.House
	first     mask.Mask
	second    mask.Mask
}

func semiPossibleURs(b *board.Board) []semiPossibleUR {
	var out []semiPossibleUR
	for _, bl := range findBaseLines(b) {
		sameHouseFlag := bl.first/3 == bl.second/3
		dim := dimOf(bl.house)
		for x := 0; x < 9; x++ {
			if x == bl.house.Index || (x/3 == bl.house.Index/3) == sameHouseFlag {
				continue
			}
			spanHouse := geometry.FromDimAndID(dim, x)
			fc := geometry.FromHouseAndIndex(spanHouse, bl.first)
			sc := geometry.FromHouseAndIndex(spanHouse, bl.second)
			fcell, scell := b.Cell(fc), b.Cell(sc)
			if fcell.Kind != board.KindUnsolved || scell.Kind != board.KindUnsolved {
				continue
			}
			if !bl.biValue.Subset(fcell.Candidates) || !bl.biValue.Subset(scell.Candidates) {
				continue
			}
			out = append(out, semiPossibleUR{base: bl, spanHouse: spanHouse, first: fcell.Candidates, second: scell.Candidates})
		}
	}
	return out
}

func dimOf(h geometry.House) geometry.Dimension {
	if h.Type == geometry.TypeRow {
		return geometry.DimRow
	}
	return geometry.DimCol
}

// perpendicularHouse returns the cross-line house passing through
// position idx of a same-dimension house h.
func perpendicularHouse(h geometry.House, idx int) geometry.House {
	if h.Type == geometry.TypeRow {
		return geometry.Col(idx)
	}
	return geometry.Row(idx)
}

// UniqueRectangleType2 finds a base line of two bivalue cells whose
// span-line counterparts both carry the same single extra digit (the
// target), eliminating the target from every cell that sees both span
// cells.
func UniqueRectangleType2(b *board.Board) (*solution.Solution, bool) {
	for _, s := range semiPossibleURs(b) {
		firstDiff := s.first.Subtract(s.base.biValue)
		secondDiff := s.second.Subtract(s.base.biValue)
		if firstDiff.Count() != 1 || firstDiff != secondDiff {
			continue
		}
		target, _ := firstDiff.Single()
		fc := geometry.FromHouseAndIndex(s.spanHouse, s.base.first)
		sc := geometry.FromHouseAndIndex(s.spanHouse, s.base.second)
		var actions []solution.Action
		for _, c := range geometry.PinchedBy(fc, sc) {
			if b.Candidates(c).Has(target) {
				actions = append(actions, solution.Eliminate(c, mask.FromDigit(target)))
			}
		}
		if len(actions) == 0 {
			continue
		}
		baseFirst := geometry.FromHouseAndIndex(s.base.house, s.base.first)
		baseSecond := geometry.FromHouseAndIndex(s.base.house, s.base.second)
		return &solution.Solution{
			Actions: actions,
			HouseClues: []geometry.House{
				s.base.house, s.spanHouse,
				perpendicularHouse(s.base.house, s.base.first),
				perpendicularHouse(s.base.house, s.base.second),
			},
			CandidateClues: []solution.Candidate{
				{Cell: baseFirst, Mask: s.base.biValue},
				{Cell: baseSecond, Mask: s.base.biValue},
				{Cell: fc, Mask: s.base.biValue.Intersect(s.first)},
				{Cell: sc, Mask: s.base.biValue.Intersect(s.second)},
				{Cell: fc, Mask: mask.FromDigit(target)},
				{Cell: sc, Mask: mask.FromDigit(target)},
			},
			SolverID: solution.UniqueRectangleType2,
		}, true
	}
	return nil, false
}

// UniqueRectangleType3 is Type 2 with span extras that differ: their
// union forms a "virtual cell" that, together with other unsolved
// cells of the span house, can complete a naked subset. This covers
// the span-house investigation only (the reference also tries the
// span cells' shared box; that branch is not reproduced here).
func UniqueRectangleType3(b *board.Board) (*solution.Solution, bool) {
	for _, s := range semiPossibleURs(b) {
		fc := geometry.FromHouseAndIndex(s.spanHouse, s.base.first)
		sc := geometry.FromHouseAndIndex(s.spanHouse, s.base.second)
		virtual := s.first.Subtract(s.base.biValue).Union(s.second.Subtract(s.base.biValue))
		if virtual.IsEmpty() {
			continue
		}
		others := restOfHouse(b, s.spanHouse, []geometry.Coord{fc, sc})
		minN := virtual.Count() - 1
		if minN < 1 {
			minN = 1
		}
		for n := minN; n < len(others); n++ {
			for _, combo := range mask.CombinationsOf(others, n) {
				union := virtual
				for _, c := range combo {
					union = union.Union(b.Candidates(c))
				}
				if union.Count() != n+1 {
					continue
				}
				var actions []solution.Action
				for _, c := range others {
					if containsCoord(combo, c) {
						continue
					}
					extra := b.Candidates(c).Intersect(union)
					if !extra.IsEmpty() {
						actions = append(actions, solution.Eliminate(c, extra))
					}
				}
				if len(actions) == 0 {
					continue
				}
				baseFirst := geometry.FromHouseAndIndex(s.base.house, s.base.first)
				baseSecond := geometry.FromHouseAndIndex(s.base.house, s.base.second)
				return &solution.Solution{
					Actions: actions,
					HouseClues: []geometry.House{
						s.base.house, s.spanHouse,
						perpendicularHouse(s.base.house, s.base.first),
						perpendicularHouse(s.base.house, s.base.second),
						s.spanHouse,
					},
					CandidateClues: []solution.Candidate{
						{Cell: baseFirst, Mask: s.base.biValue},
						{Cell: baseSecond, Mask: s.base.biValue},
						{Cell: fc, Mask: s.first},
						{Cell: sc, Mask: s.second},
					},
					SolverID: solution.UniqueRectangleType3,
				}, true
			}
		}
	}
	return nil, false
}

// UniqueRectangleType4 finds a base/span pair where one of the two
// bivalue digits is hard-linked within the span house to exactly the
// two span cells, forcing the other bivalue digit out of both.
func UniqueRectangleType4(b *board.Board) (*solution.Solution, bool) {
	for _, s := range semiPossibleURs(b) {
		fc := geometry.FromHouseAndIndex(s.spanHouse, s.base.first)
		sc := geometry.FromHouseAndIndex(s.spanHouse, s.base.second)
		for _, competitor := range s.base.biValue.Digits() {
			positions := b.CellsWithCandidate(s.spanHouse, competitor)
			if !sameCells(positions, []geometry.Coord{fc, sc}) {
				continue
			}
			target, _ := s.base.biValue.Without(competitor).Single()
			var actions []solution.Action
			for _, c := range []geometry.Coord{fc, sc} {
				if b.Candidates(c).Has(target) {
					actions = append(actions, solution.Eliminate(c, mask.FromDigit(target)))
				}
			}
			if len(actions) == 0 {
				continue
			}
			baseFirst := geometry.FromHouseAndIndex(s.base.house, s.base.first)
			baseSecond := geometry.FromHouseAndIndex(s.base.house, s.base.second)
			return &solution.Solution{
				Actions: actions,
				HouseClues: []geometry.House{
					s.base.house, s.spanHouse,
					perpendicularHouse(s.base.house, s.base.first),
					perpendicularHouse(s.base.house, s.base.second),
				},
				CandidateClues: []solution.Candidate{
					{Cell: baseFirst, Mask: s.base.biValue},
					{Cell: baseSecond, Mask: s.base.biValue},
					{Cell: fc, Mask: mask.FromDigit(competitor)},
					{Cell: sc, Mask: mask.FromDigit(competitor)},
				},
				SolverID: solution.UniqueRectangleType4,
			}, true
		}
	}
	return nil, false
}

// UniqueRectangleType5 generalizes Type 1 to an L-shaped base: a
// bivalue pivot plus a row pincer and column pincer that both carry
// the pivot's pair plus the same extra digit, eliminating that extra
// from cells both pincers see.
func UniqueRectangleType5(b *board.Board) (*solution.Solution, bool) {
	for _, rect := range uniquenessRectangles(b) {
		cells := rect[:]
		for pi, pivot := range cells {
			pc := b.Cell(pivot)
			if pc.Kind != board.KindUnsolved || pc.Candidates.Count() != 2 {
				continue
			}
			pair := pc.Candidates
			var rowPincer, colPincer, target geometry.Coord
			foundRow, foundCol, foundTarget := false, false, false
			for qi, c := range cells {
				if qi == pi {
					continue
				}
				switch {
				case c.Row == pivot.Row:
					rowPincer, foundRow = c, true
				case c.Col == pivot.Col:
					colPincer, foundCol = c, true
				default:
					target, foundTarget = c, true
				}
			}
			if !foundRow || !foundCol || !foundTarget {
				continue
			}
			rc, cc := b.Cell(rowPincer), b.Cell(colPincer)
			if rc.Kind != board.KindUnsolved || cc.Kind != board.KindUnsolved {
				continue
			}
			if !pair.Subset(rc.Candidates) || !pair.Subset(cc.Candidates) {
				continue
			}
			rowExtra := rc.Candidates.Subtract(pair)
			colExtra := cc.Candidates.Subtract(pair)
			z, ok := rowExtra.Single()
			if !ok || rowExtra != colExtra {
				continue
			}
			var actions []solution.Action
			for _, c := range geometry.PinchedBy(rowPincer, colPincer) {
				if b.Candidates(c).Has(z) {
					actions = append(actions, solution.Eliminate(c, mask.FromDigit(z)))
				}
			}
			if len(actions) == 0 {
				continue
			}
			clues := []solution.Candidate{
				{Cell: pivot, Mask: pair},
				{Cell: rowPincer, Mask: pair},
				{Cell: colPincer, Mask: pair},
				{Cell: target, Mask: b.Candidates(target)},
				{Cell: rowPincer, Mask: mask.FromDigit(z)},
				{Cell: colPincer, Mask: mask.FromDigit(z)},
			}
			return &solution.Solution{
				Actions: actions,
				HouseClues: []geometry.House{
					geometry.Row(pivot.Row), geometry.Row(target.Row),
					geometry.Col(pivot.Col), geometry.Col(target.Col),
				},
				CandidateClues: clues,
				SolverID:       solution.UniqueRectangleType5,
			}, true
		}
	}
	return nil, false
}

// UniqueRectangleType6 finds two diagonal bivalue "principal" cells
// sharing a pair {target, clue} where target is hard-linked, within
// both connecting rows, to the two remaining "counter" corners -
// forming an X-Wing shape on target that forces target into both
// counters.
func UniqueRectangleType6(b *board.Board) (*solution.Solution, bool) {
	for _, rect := range uniquenessRectangles(b) {
		if sol, ok := tryURType6(b, rect[0], rect[1], rect[2], rect[3]); ok {
			return sol, true
		}
	}
	return nil, false
}

func tryURType6(b *board.Board, p, q, r, s geometry.Coord) (*solution.Solution, bool) {
	pc, sc := b.Cell(p), b.Cell(s)
	if pc.Kind != board.KindUnsolved || sc.Kind != board.KindUnsolved {
		return nil, false
	}
	if pc.Candidates.Count() != 2 || pc.Candidates != sc.Candidates {
		return nil, false
	}
	for _, target := range pc.Candidates.Digits() {
		clue, _ := pc.Candidates.Without(target).Single()
		if !sameCells(b.CellsWithCandidate(geometry.Row(p.Row), target), []geometry.Coord{p, q}) {
			continue
		}
		if !sameCells(b.CellsWithCandidate(geometry.Row(s.Row), target), []geometry.Coord{s, r}) {
			continue
		}
		var actions []solution.Action
		for _, c := range []geometry.Coord{q, r} {
			cell := b.Cell(c)
			if cell.Kind == board.KindUnsolved && cell.Candidates.Has(target) {
				actions = append(actions, solution.Confirm(c, target))
			}
		}
		if len(actions) != 2 {
			continue
		}
		return &solution.Solution{
			Actions: actions,
			HouseClues: []geometry.House{
				geometry.Row(p.Row), geometry.Row(s.Row), geometry.Col(p.Col), geometry.Col(q.Col),
			},
			CandidateClues: []solution.Candidate{
				{Cell: p, Mask: mask.FromDigit(clue)},
				{Cell: s, Mask: mask.FromDigit(clue)},
				{Cell: q, Mask: b.Candidates(q)},
				{Cell: r, Mask: b.Candidates(r)},
			},
			SolverID: solution.UniqueRectangleType6,
		}, true
	}
	return nil, false
}

func sameCells(got, want []geometry.Coord) bool {
	if len(got) != len(want) {
		return false
	}
	for _, w := range want {
		if !containsCoord(got, w) {
			return false
		}
	}
	return true
}

// HiddenRectangle looks for a bivalue pivot P, a row pincer Q and a
// column pincer R each still able to hold P's pair, and the diagonal
// cell S where one of the pair digits (target) is hard-linked to R
// within S's row and to Q within S's column - eliminating the other
// pair digit (clue) from S.
func HiddenRectangle(b *board.Board) (*solution.Solution, bool) {
	for _, rect := range uniquenessRectangles(b) {
		if sol, ok := tryHiddenRectangle(b, rect[0], rect[1], rect[2], rect[3]); ok {
			return sol, true
		}
	}
	return nil, false
}

func tryHiddenRectangle(b *board.Board, p, q, r, s geometry.Coord) (*solution.Solution, bool) {
	pc := b.Cell(p)
	if pc.Kind != board.KindUnsolved || pc.Candidates.Count() != 2 {
		return nil, false
	}
	biValue := pc.Candidates
	qc, rc, sc := b.Cell(q), b.Cell(r), b.Cell(s)
	if qc.Kind != board.KindUnsolved || rc.Kind != board.KindUnsolved || sc.Kind != board.KindUnsolved {
		return nil, false
	}
	if !biValue.Subset(qc.Candidates) || !biValue.Subset(rc.Candidates) || !biValue.Subset(sc.Candidates) {
		return nil, false
	}
	for _, target := range biValue.Digits() {
		clue, _ := biValue.Without(target).Single()
		if !sameCells(b.CellsWithCandidate(geometry.Row(s.Row), target), []geometry.Coord{s, r}) {
			continue
		}
		if !sameCells(b.CellsWithCandidate(geometry.Col(s.Col), target), []geometry.Coord{s, q}) {
			continue
		}
		if !sc.Candidates.Has(clue) {
			continue
		}
		return &solution.Solution{
			Actions: []solution.Action{solution.Eliminate(s, mask.FromDigit(clue))},
			HouseClues: []geometry.House{
				geometry.Row(p.Row), geometry.Row(s.Row), geometry.Col(p.Col), geometry.Col(s.Col),
			},
			CandidateClues: []solution.Candidate{
				{Cell: p, Mask: biValue},
				{Cell: q, Mask: qc.Candidates.Subtract(biValue)},
				{Cell: r, Mask: rc.Candidates.Subtract(biValue)},
				{Cell: s, Mask: mask.FromDigit(target)},
			},
			SolverID: solution.HiddenRectangle,
		}, true
	}
	return nil, false
}

func solvedCells(b *board.Board) []geometry.Coord {
	var out []geometry.Coord
	for _, c := range geometry.AllCells() {
		if b.Cell(c).Kind != board.KindUnsolved {
			out = append(out, c)
		}
	}
	return out
}

// AvoidableRectangle1 treats a given/solved digit as a "pen mark": a
// solved P, a same-row solved Q, and a same-column solved R sharing
// Q's digit close off three corners of a rectangle whose fourth
// corner S could still hold P's digit - eliminate it, since filling S
// would make the rectangle swappable with an equally valid solution.
func AvoidableRectangle1(b *board.Board) (*solution.Solution, bool) {
	for _, p := range solvedCells(b) {
		target := b.Cell(p).Digit
		for qy := 0; qy < 9; qy++ {
			if qy == p.Col {
				continue
			}
			qCell := b.Cell(geometry.Coord{Row: p.Row, Col: qy})
			if qCell.Kind == board.KindUnsolved {
				continue
			}
			pincer := qCell.Digit
			for rx := 0; rx < 9; rx++ {
				if rx == p.Row || (rx/3 == p.Row/3) == (p.Col/3 == qy/3) {
					continue
				}
				rCell := b.Cell(geometry.Coord{Row: rx, Col: p.Col})
				if rCell.Kind == board.KindUnsolved || rCell.Digit != pincer {
					continue
				}
				s := geometry.Coord{Row: rx, Col: qy}
				sCell := b.Cell(s)
				if sCell.Kind != board.KindUnsolved || !sCell.Candidates.Has(target) {
					continue
				}
				return &solution.Solution{
					Actions: []solution.Action{solution.Eliminate(s, mask.FromDigit(target))},
					HouseClues: []geometry.House{
						geometry.Row(p.Row), geometry.Row(rx), geometry.Col(p.Col), geometry.Col(qy),
					},
					SolverID: solution.AvoidableRectangle1,
				}, true
			}
		}
	}
	return nil, false
}

func lineIndexOf(c geometry.Coord, dim geometry.Dimension) int {
	if dim == geometry.DimRow {
		return c.Row
	}
	return c.Col
}

func perpIndexOf(c geometry.Coord, dim geometry.Dimension) int {
	if dim == geometry.DimRow {
		return c.Col
	}
	return c.Row
}

func extraBivalueDigit(b *board.Board, c geometry.Coord, target int) (int, bool) {
	cell := b.Cell(c)
	if cell.Kind != board.KindUnsolved || cell.Candidates.Count() != 2 || !cell.Candidates.Has(target) {
		return 0, false
	}
	extra, _ := cell.Candidates.Without(target).Single()
	return extra, true
}

// AvoidableRectangle2 is the bivalue-span version of AvoidableRectangle1:
// solved P and Q share a base line, and the two span cells R (under P)
// and S (under Q) are each bivalue - R holding Q's digit plus a common
// extra, S holding P's digit plus that same extra - eliminating the
// extra from every cell both R and S see.
func AvoidableRectangle2(b *board.Board) (*solution.Solution, bool) {
	for _, p := range solvedCells(b) {
		pDigit := b.Cell(p).Digit
		for _, dim := range []geometry.Dimension{geometry.DimRow, geometry.DimCol} {
			baseHouse := geometry.FromDimAndID(dim, lineIndexOf(p, dim))
			pi := perpIndexOf(p, dim)
			for qi := 0; qi < 9; qi++ {
				if qi == pi {
					continue
				}
				q := geometry.FromHouseAndIndex(baseHouse, qi)
				qCell := b.Cell(q)
				if qCell.Kind == board.KindUnsolved {
					continue
				}
				qDigit := qCell.Digit
				for span := 0; span < 9; span++ {
					if span == baseHouse.Index || (span/3 == baseHouse.Index/3) == (pi/3 == qi/3) {
						continue
					}
					spanHouse := geometry.FromDimAndID(dim, span)
					rCoord := geometry.FromHouseAndIndex(spanHouse, pi)
					sCoord := geometry.FromHouseAndIndex(spanHouse, qi)
					rClue, ok := extraBivalueDigit(b, rCoord, qDigit)
					if !ok {
						continue
					}
					sClue, ok := extraBivalueDigit(b, sCoord, pDigit)
					if !ok || sClue != rClue {
						continue
					}
					var actions []solution.Action
					for _, c := range geometry.PinchedBy(rCoord, sCoord) {
						if b.Candidates(c).Has(rClue) {
							actions = append(actions, solution.Eliminate(c, mask.FromDigit(rClue)))
						}
					}
					if len(actions) == 0 {
						continue
					}
					return &solution.Solution{
						Actions: actions,
						HouseClues: []geometry.House{
							baseHouse, spanHouse,
							perpendicularHouse(baseHouse, pi), perpendicularHouse(baseHouse, qi),
						},
						CandidateClues: []solution.Candidate{
							{Cell: rCoord, Mask: mask.FromDigit(qDigit)},
							{Cell: sCoord, Mask: mask.FromDigit(pDigit)},
							{Cell: rCoord, Mask: mask.FromDigit(rClue)},
							{Cell: sCoord, Mask: mask.FromDigit(rClue)},
						},
						SolverID: solution.AvoidableRectangle2,
					}, true
				}
			}
		}
	}
	return nil, false
}
