package board

import (
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
)

// TryNewALS builds an ALS from cells within house h, validating the
// defining invariant: the union of the cells' candidates has exactly
// one more digit than there are cells.
func TryNewALS(b *Board, cells []geometry.Coord, h geometry.House) (ALS, bool) {
	var indices, cand mask.Mask
	for _, c := range cells {
		cell := b.Cell(c)
		if cell.Kind != KindUnsolved {
			return ALS{}, false
		}
		i, ok := geometry.IndexInHouse(c, h)
		if !ok {
			return ALS{}, false
		}
		indices = indices.With(i + 1) // house-relative positions stored 1..9 to reuse Mask
		cand = cand.Union(cell.Candidates)
	}
	if cand.Count() != len(cells)+1 {
		return ALS{}, false
	}
	return ALS{House: h, Cells: append([]geometry.Coord(nil), cells...), Indices: indices, Candidates: cand}, true
}

// ALSByHouse returns every ALS of size 1..8 found among the unsolved
// cells of house h, computed lazily and cached until the next board
// mutation.
func (b *Board) ALSByHouse(h geometry.House) []ALS {
	if b.alsValid {
		if cached, ok := b.alsCache[h]; ok {
			return cached
		}
	} else {
		b.alsCache = nil
	}
	unsolved := b.UnsolvedCells(h)
	var out []ALS
	for n := 1; n < len(unsolved); n++ {
		for _, combo := range mask.CombinationsOf(unsolved, n) {
			if als, ok := TryNewALS(b, combo, h); ok {
				out = append(out, als)
			}
		}
	}
	if b.alsCache == nil {
		b.alsCache = make(map[geometry.House][]ALS)
	}
	b.alsCache[h] = out
	b.alsValid = true
	return out
}
