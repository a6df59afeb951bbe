package techniques

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
	"github.com/sudoku-engine/hlsolve/internal/solution"
)

// Skyscraper looks for a digit hard-linked in two rows (or two cols)
// that share a common column (or row) through one endpoint each,
// eliminating the digit from cells that see both free endpoints.
func Skyscraper(b *board.Board) (*solution.Solution, bool) {
	if sol, ok := singleDigitKite(b, geometry.DimRow, false); ok {
		return sol, true
	}
	return singleDigitKite(b, geometry.DimCol, false)
}

// TwoStringKite is the row/column dual of Skyscraper: two hard links,
// one on a row and one on a column, joined through a box.
func TwoStringKite(b *board.Board) (*solution.Solution, bool) {
	return singleDigitKite(b, geometry.DimRow, true)
}

// singleDigitKite tries every pair of hard links on the same digit —
// two lines of dimension dimA for Skyscraper, a row and a column for
// Two-String-Kite — and, whenever one endpoint of each link sees the
// other link's endpoint, eliminates the digit from every cell that
// sees both remaining ("free") endpoints.
func singleDigitKite(b *board.Board, dimA geometry.Dimension, cross bool) (*solution.Solution, bool) {
	for d := 1; d <= 9; d++ {
		linksA := pairUp(hardLinkEndpoints(b, d, dimA))
		dimB := dimA
		if cross {
			dimB = dimA.Other()
		}
		linksB := pairUp(hardLinkEndpoints(b, d, dimB))
		for _, la := range linksA {
			for _, lb := range linksB {
				if !cross && la == lb {
					continue // same line, not two distinct links
				}
				if la[0] == lb[0] || la[0] == lb[1] || la[1] == lb[0] || la[1] == lb[1] {
					continue
				}
				for ai := 0; ai < 2; ai++ {
					for bi := 0; bi < 2; bi++ {
						anchor, free1 := la[ai], la[1-ai]
						partner, free2 := lb[bi], lb[1-bi]
						if !geometry.Sees(anchor, partner) || free1 == free2 || geometry.Sees(free1, free2) {
							continue
						}
						var actions []solution.Action
						for _, c := range geometry.PinchedBy(free1, free2) {
							cell := b.Cell(c)
							if cell.Kind == board.KindUnsolved && cell.Candidates.Has(d) {
								actions = append(actions, solution.Eliminate(c, mask.FromDigit(d)))
							}
						}
						if len(actions) == 0 {
							continue
						}
						id := solution.Skyscraper
						if cross {
							id = solution.TwoStringKite
						}
						return &solution.Solution{
							Actions: actions,
							CandidateClues: []solution.Candidate{
								{Cell: la[0], Mask: mask.FromDigit(d)}, {Cell: la[1], Mask: mask.FromDigit(d)},
								{Cell: lb[0], Mask: mask.FromDigit(d)}, {Cell: lb[1], Mask: mask.FromDigit(d)},
							},
							SolverID: id,
						}, true
					}
				}
			}
		}
	}
	return nil, false
}

// TurbotFish generalizes the row/column kite to any pair of distinct
// house types (including a box), the way a line-and-box "turbot
// fish" joins a box's hard link to a line's.
func TurbotFish(b *board.Board) (*solution.Solution, bool) {
	types := []geometry.HouseType{geometry.TypeRow, geometry.TypeCol, geometry.TypeBox}
	for d := 1; d <= 9; d++ {
		for ta := 0; ta < 3; ta++ {
			for tb := ta + 1; tb < 3; tb++ {
				linksA := pairUp(hardLinkEndpointsHT(b, d, types[ta]))
				linksB := pairUp(hardLinkEndpointsHT(b, d, types[tb]))
				for _, la := range linksA {
					for _, lb := range linksB {
						if sharesCell(la, lb) {
							continue
						}
						for ai := 0; ai < 2; ai++ {
							for bi := 0; bi < 2; bi++ {
								anchor, free1 := la[ai], la[1-ai]
								partner, free2 := lb[bi], lb[1-bi]
								if !geometry.Sees(anchor, partner) || free1 == free2 || geometry.Sees(free1, free2) {
									continue
								}
								var actions []solution.Action
								for _, c := range geometry.PinchedBy(free1, free2) {
									cell := b.Cell(c)
									if cell.Kind == board.KindUnsolved && cell.Candidates.Has(d) {
										actions = append(actions, solution.Eliminate(c, mask.FromDigit(d)))
									}
								}
								if len(actions) == 0 {
									continue
								}
								return &solution.Solution{
									Actions: actions,
									CandidateClues: []solution.Candidate{
										{Cell: la[0], Mask: mask.FromDigit(d)}, {Cell: la[1], Mask: mask.FromDigit(d)},
										{Cell: lb[0], Mask: mask.FromDigit(d)}, {Cell: lb[1], Mask: mask.FromDigit(d)},
									},
									SolverID: solution.TurbotFish,
								}, true
							}
						}
					}
				}
			}
		}
	}
	return nil, false
}

func sharesCell(la, lb [2]geometry.Coord) bool {
	return la[0] == lb[0] || la[0] == lb[1] || la[1] == lb[0] || la[1] == lb[1]
}

func hardLinkEndpointsHT(b *board.Board, d int, ht geometry.HouseType) []geometry.Coord {
	var out []geometry.Coord
	for i := 0; i < 9; i++ {
		var h geometry.House
		switch ht {
		case geometry.TypeRow:
			h = geometry.Row(i)
		case geometry.TypeCol:
			h = geometry.Col(i)
		default:
			h = geometry.Box(i)
		}
		cells := b.CellsWithCandidate(h, d)
		if len(cells) == 2 {
			out = append(out, cells[0], cells[1])
		}
	}
	return out
}

func pairUp(cells []geometry.Coord) [][2]geometry.Coord {
	out := make([][2]geometry.Coord, 0, len(cells)/2)
	for i := 0; i+1 < len(cells); i += 2 {
		out = append(out, [2]geometry.Coord{cells[i], cells[i+1]})
	}
	return out
}

// hardLinkEndpoints returns, for every line of the given dimension
// where digit d has exactly two candidate positions, those two
// positions as a consecutive pair.
func hardLinkEndpoints(b *board.Board, d int, dim geometry.Dimension) []geometry.Coord {
	var out []geometry.Coord
	for i := 0; i < 9; i++ {
		h := geometry.FromDimAndID(dim, i)
		cells := b.CellsWithCandidate(h, d)
		if len(cells) == 2 {
			out = append(out, cells[0], cells[1])
		}
	}
	return out
}

// EmptyRectangle looks for a box where a digit's candidates are
// confined to the union of one row and one column within the box (an
// "empty rectangle" cross), then chases a hard link on that digit
// from the cross's row (or column) through the perpendicular
// dimension, eliminating the digit where the hard link's partner
// lines up with the cross's other line. Grounded on the reference
// EmptyRectangle::solve and its EMPTY_RECTANGLE_MASK cross lookup.
func EmptyRectangle(b *board.Board) (*solution.Solution, bool) {
	for boxIdx := 0; boxIdx < 9; boxIdx++ {
		for d := 1; d <= 9; d++ {
			if sol, ok := emptyRectangleInBox(b, boxIdx, d); ok {
				return sol, true
			}
		}
	}
	return nil, false
}

func emptyRectangleInBox(b *board.Board, boxIdx, d int) (*solution.Solution, bool) {
	boxCells := geometry.Cells(geometry.Box(boxIdx))
	var clues []geometry.Coord
	localBits := 0
	for i, c := range boxCells {
		if b.Candidates(c).Has(d) {
			clues = append(clues, c)
			localBits |= 1 << uint(i)
		}
	}
	if len(clues) < 2 {
		return nil, false
	}
	rowVal, colVal, ok := emptyRectangleCross(localBits)
	if !ok {
		return nil, false
	}
	startRow, startCol := (boxIdx/3)*3, (boxIdx%3)*3
	erRow, erCol := startRow+rowVal, startCol+colVal

	for _, dim := range []geometry.Dimension{geometry.DimRow, geometry.DimCol} {
		pHouse := geometry.Row(erRow)
		if dim == geometry.DimCol {
			pHouse = geometry.Col(erCol)
		}
		for _, p := range b.CellsWithCandidate(pHouse, d) {
			if geometry.BoxOf(p.Row, p.Col) == boxIdx {
				continue
			}
			q, linked := b.HardLink(p, d, dim.Other())
			if !linked {
				continue
			}
			var r geometry.Coord
			var rHouse geometry.House
			if dim == geometry.DimRow {
				r, rHouse = geometry.Coord{Row: q.Row, Col: erCol}, geometry.Col(erCol)
			} else {
				r, rHouse = geometry.Coord{Row: erRow, Col: q.Col}, geometry.Row(erRow)
			}
			if !b.Candidates(r).Has(d) {
				continue
			}
			cellClues := make([]solution.Candidate, 0, len(clues)+2)
			for _, c := range clues {
				cellClues = append(cellClues, solution.Candidate{Cell: c, Mask: mask.FromDigit(d)})
			}
			cellClues = append(cellClues,
				solution.Candidate{Cell: p, Mask: mask.FromDigit(d)},
				solution.Candidate{Cell: q, Mask: mask.FromDigit(d)})
			return &solution.Solution{
				Actions:        []solution.Action{solution.Eliminate(r, mask.FromDigit(d))},
				HouseClues:     []geometry.House{geometry.Box(boxIdx), pHouse, rHouse},
				CandidateClues: cellClues,
				SolverID:       solution.EmptyRectangle,
			}, true
		}
	}
	return nil, false
}

// emptyRectangleCross reports the box-local (row, col) pair whose
// cross (that row's three cells union that column's three cells)
// fully contains localBits - the set of box-local cell indices (0-8,
// row-major) that still carry the digit - trying local rows/cols in
// row-major order and taking the first match, same as the reference's
// EMPTY_RECTANGLE_MASK scan.
func emptyRectangleCross(localBits int) (row, col int, ok bool) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cross := 0
			for i := 0; i < 9; i++ {
				if i/3 == r || i%3 == c {
					cross |= 1 << uint(i)
				}
			}
			if localBits&^cross == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
