// Package engine orchestrates the technique engine: it holds the
// ordered registry of techniques, finds the next applicable move
// against a board, and drives a full human-style solve.
package engine

import (
	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/solution"
	"github.com/sudoku-engine/hlsolve/internal/techniques"
)

// Tier is a technique's difficulty grading.
type Tier string

const (
	TierSimple  Tier = "simple"
	TierMedium  Tier = "medium"
	TierHard    Tier = "hard"
	TierExtreme Tier = "extreme"
)

// Descriptor holds metadata about one registered technique, in the
// pedagogical order a student would learn them: singles, then
// subsets, then intersections, then pattern-recognition techniques,
// then chains and ALS-based techniques last.
type Descriptor struct {
	Name     string
	Slug     string
	Tier     Tier
	Detector techniques.Func
	Enabled  bool
}

// Registry holds every technique the engine can apply, in detection
// order, and lets the caller enable/disable individual techniques.
type Registry struct {
	techniques []*Descriptor
	bySlug     map[string]*Descriptor
}

// NewRegistry builds a registry with every technique enabled.
func NewRegistry() *Registry {
	r := &Registry{bySlug: make(map[string]*Descriptor)}
	r.register(Descriptor{Name: "Naked Single", Slug: "naked-single", Tier: TierSimple, Detector: techniques.NakedSingle, Enabled: true})
	r.register(Descriptor{Name: "Hidden Single", Slug: "hidden-single", Tier: TierSimple, Detector: techniques.HiddenSingle, Enabled: true})
	r.register(Descriptor{Name: "Naked Pair", Slug: "naked-pair", Tier: TierSimple, Detector: techniques.NakedPair, Enabled: true})
	r.register(Descriptor{Name: "Hidden Pair", Slug: "hidden-pair", Tier: TierSimple, Detector: techniques.HiddenPair, Enabled: true})
	r.register(Descriptor{Name: "Pointing", Slug: "pointing", Tier: TierSimple, Detector: techniques.Pointing, Enabled: true})
	r.register(Descriptor{Name: "Claiming", Slug: "claiming", Tier: TierSimple, Detector: techniques.Claiming, Enabled: true})
	r.register(Descriptor{Name: "Naked Triple", Slug: "naked-triple", Tier: TierSimple, Detector: techniques.NakedTriple, Enabled: true})
	r.register(Descriptor{Name: "Hidden Triple", Slug: "hidden-triple", Tier: TierSimple, Detector: techniques.HiddenTriple, Enabled: true})

	r.register(Descriptor{Name: "Naked Quadruple", Slug: "naked-quadruple", Tier: TierMedium, Detector: techniques.NakedQuadruple, Enabled: true})
	r.register(Descriptor{Name: "Hidden Quadruple", Slug: "hidden-quadruple", Tier: TierMedium, Detector: techniques.HiddenQuadruple, Enabled: true})
	r.register(Descriptor{Name: "X-Wing", Slug: "x-wing", Tier: TierMedium, Detector: techniques.XWing, Enabled: true})
	r.register(Descriptor{Name: "XY-Wing", Slug: "xy-wing", Tier: TierMedium, Detector: techniques.XYWing, Enabled: true})
	r.register(Descriptor{Name: "XYZ-Wing", Slug: "xyz-wing", Tier: TierMedium, Detector: techniques.XYZWing, Enabled: true})
	r.register(Descriptor{Name: "Unique Rectangle Type 1", Slug: "unique-rectangle-1", Tier: TierMedium, Detector: techniques.UniqueRectangleType1, Enabled: true})
	r.register(Descriptor{Name: "Unique Rectangle Type 2", Slug: "unique-rectangle-2", Tier: TierMedium, Detector: techniques.UniqueRectangleType2, Enabled: true})
	r.register(Descriptor{Name: "Unique Rectangle Type 3", Slug: "unique-rectangle-3", Tier: TierMedium, Detector: techniques.UniqueRectangleType3, Enabled: true})
	r.register(Descriptor{Name: "Unique Rectangle Type 4", Slug: "unique-rectangle-4", Tier: TierMedium, Detector: techniques.UniqueRectangleType4, Enabled: true})
	r.register(Descriptor{Name: "BUG+1", Slug: "bug-plus-one", Tier: TierMedium, Detector: techniques.BUGPlusOne, Enabled: true})
	r.register(Descriptor{Name: "Coloring", Slug: "coloring", Tier: TierMedium, Detector: techniques.Coloring, Enabled: true})

	r.register(Descriptor{Name: "Swordfish", Slug: "swordfish", Tier: TierHard, Detector: techniques.Swordfish, Enabled: true})
	r.register(Descriptor{Name: "Finned X-Wing", Slug: "finned-x-wing", Tier: TierHard, Detector: techniques.FinnedXWing, Enabled: true})
	r.register(Descriptor{Name: "Finned Swordfish", Slug: "finned-swordfish", Tier: TierHard, Detector: techniques.FinnedSwordfish, Enabled: true})
	r.register(Descriptor{Name: "Skyscraper", Slug: "skyscraper", Tier: TierHard, Detector: techniques.Skyscraper, Enabled: true})
	r.register(Descriptor{Name: "Two-String Kite", Slug: "two-string-kite", Tier: TierHard, Detector: techniques.TwoStringKite, Enabled: true})
	r.register(Descriptor{Name: "Turbot Fish", Slug: "turbot-fish", Tier: TierHard, Detector: techniques.TurbotFish, Enabled: true})
	r.register(Descriptor{Name: "Empty Rectangle", Slug: "empty-rectangle", Tier: TierHard, Detector: techniques.EmptyRectangle, Enabled: true})
	r.register(Descriptor{Name: "W-Wing", Slug: "w-wing", Tier: TierHard, Detector: techniques.WWing, Enabled: true})
	r.register(Descriptor{Name: "Unique Rectangle Type 5", Slug: "unique-rectangle-5", Tier: TierHard, Detector: techniques.UniqueRectangleType5, Enabled: true})
	r.register(Descriptor{Name: "Unique Rectangle Type 6", Slug: "unique-rectangle-6", Tier: TierHard, Detector: techniques.UniqueRectangleType6, Enabled: true})
	r.register(Descriptor{Name: "Hidden Rectangle", Slug: "hidden-rectangle", Tier: TierHard, Detector: techniques.HiddenRectangle, Enabled: true})
	r.register(Descriptor{Name: "Avoidable Rectangle 1", Slug: "avoidable-rectangle-1", Tier: TierHard, Detector: techniques.AvoidableRectangle1, Enabled: true})
	r.register(Descriptor{Name: "Avoidable Rectangle 2", Slug: "avoidable-rectangle-2", Tier: TierHard, Detector: techniques.AvoidableRectangle2, Enabled: true})

	r.register(Descriptor{Name: "Jellyfish", Slug: "jellyfish", Tier: TierExtreme, Detector: techniques.Jellyfish, Enabled: true})
	r.register(Descriptor{Name: "Finned Jellyfish", Slug: "finned-jellyfish", Tier: TierExtreme, Detector: techniques.FinnedJellyfish, Enabled: true})
	r.register(Descriptor{Name: "Sue de Coq", Slug: "sue-de-coq", Tier: TierExtreme, Detector: techniques.SueDeCoq, Enabled: true})
	return r
}

func (r *Registry) register(d Descriptor) {
	desc := d
	r.techniques = append(r.techniques, &desc)
	r.bySlug[d.Slug] = &desc
}

// SetEnabled turns a technique on or off by slug, reporting whether
// the slug was known.
func (r *Registry) SetEnabled(slug string, enabled bool) bool {
	d, ok := r.bySlug[slug]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// Enabled returns every enabled descriptor, in detection order.
func (r *Registry) Enabled() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.techniques))
	for _, d := range r.techniques {
		if d.Enabled {
			out = append(out, d)
		}
	}
	return out
}

// FindNextMove runs every enabled technique in order against b and
// returns the first solution found, tagged with which descriptor
// produced it.
func FindNextMove(r *Registry, b *board.Board) (*solution.Solution, *Descriptor) {
	for _, d := range r.Enabled() {
		if sol, ok := d.Detector(b); ok {
			return sol, d
		}
	}
	return nil, nil
}
