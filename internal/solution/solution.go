// Package solution defines the common result shape every technique
// in internal/techniques returns: a list of actions (confirmations or
// eliminations) plus the house and candidate clues that explain why
// those actions are valid.
package solution

import (
	"github.com/sudoku-engine/hlsolve/internal/geometry"
	"github.com/sudoku-engine/hlsolve/internal/mask"
)

// SolverID names the technique that produced a Solution.
type SolverID string

const (
	NakedSingle  SolverID = "naked-single"
	HiddenSingle SolverID = "hidden-single"
	Pointing     SolverID = "pointing"
	Claiming     SolverID = "claiming"

	NakedPair        SolverID = "naked-pair"
	NakedTriple      SolverID = "naked-triple"
	NakedQuadruple   SolverID = "naked-quadruple"
	HiddenPair       SolverID = "hidden-pair"
	HiddenTriple     SolverID = "hidden-triple"
	HiddenQuadruple  SolverID = "hidden-quadruple"

	XWing           SolverID = "x-wing"
	Swordfish       SolverID = "swordfish"
	Jellyfish       SolverID = "jellyfish"
	FinnedXWing     SolverID = "finned-x-wing"
	FinnedSwordfish SolverID = "finned-swordfish"
	FinnedJellyfish SolverID = "finned-jellyfish"

	Skyscraper     SolverID = "skyscraper"
	TwoStringKite  SolverID = "two-string-kite"
	TurbotFish     SolverID = "turbot-fish"
	EmptyRectangle SolverID = "empty-rectangle"

	UniqueRectangleType1 SolverID = "unique-rectangle-type-1"
	UniqueRectangleType2 SolverID = "unique-rectangle-type-2"
	UniqueRectangleType3 SolverID = "unique-rectangle-type-3"
	UniqueRectangleType4 SolverID = "unique-rectangle-type-4"
	UniqueRectangleType5 SolverID = "unique-rectangle-type-5"
	UniqueRectangleType6 SolverID = "unique-rectangle-type-6"
	HiddenRectangle      SolverID = "hidden-rectangle"
	AvoidableRectangle1  SolverID = "avoidable-rectangle-1"
	AvoidableRectangle2  SolverID = "avoidable-rectangle-2"
	BUGPlusOne           SolverID = "bug-plus-one"

	XYWing  SolverID = "xy-wing"
	XYZWing SolverID = "xyz-wing"
	WWing   SolverID = "w-wing"

	Coloring SolverID = "coloring"
	SueDeCoq SolverID = "sue-de-coq"

	// Identifiers for techniques outside the required set. No detector
	// in internal/techniques produces them and none is registered in
	// internal/engine (see SPEC_FULL.md 5.5.10).
	RemotePair   SolverID = "remote-pair"
	DigitForcing SolverID = "digit-forcing-chain"
	ALSXZ        SolverID = "als-xz"
	ALSXYChain   SolverID = "als-xy-chain"
	XCycle       SolverID = "x-cycle"
	Medusa3D     SolverID = "3d-medusa"
)

// Confirmation places a single digit.
type Confirmation struct {
	Cell  geometry.Coord
	Digit int
}

// Elimination removes one or more candidates from a cell.
type Elimination struct {
	Cell   geometry.Coord
	Target mask.Mask
}

// Action is a single confirmation or elimination. Exactly one of
// Confirm, Eliminate is non-nil.
type Action struct {
	Confirm  *Confirmation
	Eliminate *Elimination
}

// Confirm builds a confirmation action.
func Confirm(c geometry.Coord, d int) Action {
	return Action{Confirm: &Confirmation{Cell: c, Digit: d}}
}

// Eliminate builds an elimination action.
func Eliminate(c geometry.Coord, target mask.Mask) Action {
	return Action{Eliminate: &Elimination{Cell: c, Target: target}}
}

// Candidate is a (cell, digit-set) clue used to explain a technique's
// reasoning to a renderer.
type Candidate struct {
	Cell      geometry.Coord
	Mask      mask.Mask
	Separator bool
}

// Sep marks a boundary between clue groups within CandidateClues,
// used by Sue de Coq to split yoke, orion and scorpius clues.
var Sep = Candidate{Separator: true}

// Solution is the uniform result every technique produces.
type Solution struct {
	Actions        []Action
	HouseClues     []geometry.House
	CandidateClues []Candidate
	SolverID       SolverID
}
