// Package board implements the Sudoku grid: solved/given digits,
// remaining candidates, and the derived queries (house occupancy,
// Almost Locked Sets) that the technique engine reads from.
package board

import (
	"fmt"

	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
)

// Kind distinguishes how a cell came to hold (or not hold) a digit.
type Kind int

const (
	// KindGiven is an original puzzle clue.
	KindGiven Kind = iota
	// KindSolved was placed by the solver during this session.
	KindSolved
	// KindUnsolved still carries a candidate mask.
	KindUnsolved
)

// Cell is the sum-type cell value: a Given or Solved digit, or an
// Unsolved candidate mask plus the set of candidates the solver has
// eliminated from it (tracked separately from "never possible" so a
// renderer can show solver progress).
type Cell struct {
	Kind       Kind
	Digit      int       // valid when Kind != KindUnsolved
	Candidates mask.Mask // valid when Kind == KindUnsolved
	Eliminated mask.Mask // valid when Kind == KindUnsolved
}

// ALS is an Almost Locked Set: n unsolved cells in one house whose
// union of candidates has exactly n+1 digits.
type ALS struct {
	House      geometry.House
	Cells      []geometry.Coord
	Indices    mask.Mask // digit i+1 set iff Cells includes FromHouseAndIndex(House, i)
	Candidates mask.Mask
}

// Board is a 9x9 Sudoku grid.
type Board struct {
	cells [81]Cell

	alsCache map[geometry.House][]ALS
	alsValid bool
}

func idx(c geometry.Coord) int { return c.Row*9 + c.Col }

// NewFromGivens builds a board from 81 digits (0 = blank) in row-major
// order, with every blank cell's candidates initialized from its
// peers.
func NewFromGivens(givens [81]int) (*Board, error) {
	b := &Board{}
	for i, d := range givens {
		if d < 0 || d > 9 {
			return nil, fmt.Errorf("board: cell %d has out-of-range digit %d: %w", i, d, ErrInvalidDigit)
		}
		if d == 0 {
			b.cells[i] = Cell{Kind: KindUnsolved, Candidates: mask.All9}
		} else {
			b.cells[i] = Cell{Kind: KindGiven, Digit: d}
		}
	}
	b.recomputeCandidates()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithCandidates builds a board directly from 81 candidate masks,
// every cell Unsolved, without deriving candidates from peers or
// validating consistency. Used to drive a single technique against a
// hand-built candidate grid in isolation, the way a technique's own
// unit tests do.
func NewWithCandidates(candidates [81]mask.Mask) *Board {
	b := &Board{}
	for i, m := range candidates {
		b.cells[i] = Cell{Kind: KindUnsolved, Candidates: m}
	}
	return b
}

// ParsePuzzleString parses an 81-character string using '.' or '0' for
// blanks and '1'-'9' for givens.
func ParsePuzzleString(s string) (*Board, error) {
	if len(s) != 81 {
		return nil, fmt.Errorf("board: puzzle string has length %d, want 81: %w", len(s), ErrInvalidPuzzleString)
	}
	var givens [81]int
	for i, r := range s {
		switch {
		case r == '.' || r == '0':
			givens[i] = 0
		case r >= '1' && r <= '9':
			givens[i] = int(r - '0')
		default:
			return nil, fmt.Errorf("board: invalid character %q at position %d: %w", r, i, ErrInvalidPuzzleString)
		}
	}
	return NewFromGivens(givens)
}

// String renders the board back into an 81-character puzzle string,
// givens and solved cells as digits, unsolved cells as '.'.
func (b *Board) String() string {
	buf := make([]byte, 81)
	for i, c := range b.cells {
		if c.Kind == KindUnsolved {
			buf[i] = '.'
		} else {
			buf[i] = byte('0' + c.Digit)
		}
	}
	return string(buf)
}

// Clone returns an independent deep copy of b.
func (b *Board) Clone() *Board {
	nb := &Board{cells: b.cells}
	return nb
}

// Cell returns the cell at c.
func (b *Board) Cell(c geometry.Coord) Cell {
	return b.cells[idx(c)]
}

// Candidates returns the candidate mask at c (Empty if not Unsolved).
func (b *Board) Candidates(c geometry.Coord) mask.Mask {
	cell := b.cells[idx(c)]
	if cell.Kind != KindUnsolved {
		return mask.Empty
	}
	return cell.Candidates
}

// IsSolved reports whether every cell holds a digit.
func (b *Board) IsSolved() bool {
	for _, c := range b.cells {
		if c.Kind == KindUnsolved {
			return false
		}
	}
	return true
}

// recomputeCandidates strips, from every unsolved cell, the digits
// already placed by a peer. Used once at construction; incremental
// mutation is handled by Place/Eliminate directly.
func (b *Board) recomputeCandidates() {
	for i := range b.cells {
		if b.cells[i].Kind == KindUnsolved {
			c := geometry.Coord{Row: i / 9, Col: i % 9}
			m := mask.All9
			for _, p := range geometry.SeeableCells(c) {
				pc := b.cells[idx(p)]
				if pc.Kind != KindUnsolved {
					m = m.Without(pc.Digit)
				}
			}
			b.cells[i].Candidates = m
		}
	}
}

// Place confirms digit d at c, turning it from Unsolved into Solved
// and removing d from every peer's candidates.
func (b *Board) Place(c geometry.Coord, d int) error {
	cell := b.cells[idx(c)]
	if cell.Kind != KindUnsolved {
		return fmt.Errorf("board: cell %v is already %v: %w", c, cell.Kind, ErrCellNotUnsolved)
	}
	if !cell.Candidates.Has(d) {
		return fmt.Errorf("board: digit %d is not a candidate at %v: %w", d, c, ErrBoardCollision)
	}
	b.cells[idx(c)] = Cell{Kind: KindSolved, Digit: d}
	for _, p := range geometry.SeeableCells(c) {
		pc := &b.cells[idx(p)]
		if pc.Kind == KindUnsolved {
			pc.Candidates = pc.Candidates.Without(d)
			pc.Eliminated = pc.Eliminated.With(d)
		}
	}
	b.alsValid = false
	return nil
}

// Eliminate removes every digit in m from c's candidates.
func (b *Board) Eliminate(c geometry.Coord, m mask.Mask) error {
	cell := &b.cells[idx(c)]
	if cell.Kind != KindUnsolved {
		return fmt.Errorf("board: cell %v is not unsolved, cannot eliminate: %w", c, ErrCellNotUnsolved)
	}
	cell.Candidates = cell.Candidates.Subtract(m)
	cell.Eliminated = cell.Eliminated.Union(m)
	b.alsValid = false
	return nil
}

// Validate checks that no house contains a repeated given/solved
// digit.
func (b *Board) Validate() error {
	for _, h := range geometry.AllHouses() {
		seen := mask.Empty
		for _, c := range geometry.Cells(h) {
			cell := b.cells[idx(c)]
			if cell.Kind == KindUnsolved {
				continue
			}
			if seen.Has(cell.Digit) {
				return fmt.Errorf("board: duplicate digit %d in %v: %w", cell.Digit, h, ErrBoardCollision)
			}
			seen = seen.With(cell.Digit)
		}
	}
	return nil
}

// CellsWithCandidate returns the cells of house h that still allow
// digit d.
func (b *Board) CellsWithCandidate(h geometry.House, d int) []geometry.Coord {
	var out []geometry.Coord
	for _, c := range geometry.Cells(h) {
		if b.Candidates(c).Has(d) {
			out = append(out, c)
		}
	}
	return out
}

// CellsWithNCandidates returns the unsolved cells of house h that have
// exactly n candidates.
func (b *Board) CellsWithNCandidates(h geometry.House, n int) []geometry.Coord {
	var out []geometry.Coord
	for _, c := range geometry.Cells(h) {
		cell := b.Cell(c)
		if cell.Kind == KindUnsolved && cell.Candidates.Count() == n {
			out = append(out, c)
		}
	}
	return out
}

// UnsolvedCells returns every unsolved cell in house h.
func (b *Board) UnsolvedCells(h geometry.House) []geometry.Coord {
	var out []geometry.Coord
	for _, c := range geometry.Cells(h) {
		if b.Cell(c).Kind == KindUnsolved {
			out = append(out, c)
		}
	}
	return out
}

// HardLinkInHouseType reports whether digit d has exactly two
// candidate positions in c's row, column, or box (chosen by ht),
// returning the other position.
func (b *Board) HardLinkInHouseType(c geometry.Coord, d int, ht geometry.HouseType) (geometry.Coord, bool) {
	var h geometry.House
	switch ht {
	case geometry.TypeRow:
		h = geometry.Row(c.Row)
	case geometry.TypeCol:
		h = geometry.Col(c.Col)
	default:
		h = geometry.Box(geometry.BoxOf(c.Row, c.Col))
	}
	positions := b.CellsWithCandidate(h, d)
	if len(positions) != 2 {
		return geometry.Coord{}, false
	}
	if positions[0] == c {
		return positions[1], true
	}
	if positions[1] == c {
		return positions[0], true
	}
	return geometry.Coord{}, false
}

// HardLink reports whether digit d has exactly two candidate
// positions in the line house of dimension dim through c, returning
// the other position.
func (b *Board) HardLink(c geometry.Coord, d int, dim geometry.Dimension) (geometry.Coord, bool) {
	return b.HardLinkInHouseType(c, d, dim.HouseType())
}

// HardLinked reports whether c has a hard link on digit d in any of
// its three houses (row, col, or box).
func (b *Board) HardLinked(c geometry.Coord, d int) bool {
	if !b.Candidates(c).Has(d) {
		return false
	}
	if len(b.CellsWithCandidate(geometry.Row(c.Row), d)) == 2 {
		return true
	}
	if len(b.CellsWithCandidate(geometry.Col(c.Col), d)) == 2 {
		return true
	}
	if len(b.CellsWithCandidate(geometry.Box(geometry.BoxOf(c.Row, c.Col)), d)) == 2 {
		return true
	}
	return false
}
