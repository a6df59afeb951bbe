// Package core holds the wire-format DTOs the HTTP transport encodes
// as JSON, kept independent of the internal board/solution/geometry
// representations so the API shape can stay stable across internal
// refactors.
package core

// Difficulty grades how advanced a technique a puzzle requires to
// fully solve with human-style reasoning.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyExtreme    Difficulty = "extreme"
	DifficultyImpossible Difficulty = "impossible"
)

// Move is one applied solving step, in the shape the API returns it.
type Move struct {
	StepIndex    int          `json:"step_index"`
	Technique    string       `json:"technique"`
	Action       string       `json:"action"` // "assign" or "eliminate"
	Digit        int          `json:"digit,omitempty"`
	Targets      []CellRef    `json:"targets,omitempty"`
	Eliminations []Candidate  `json:"eliminations,omitempty"`
	Refs         TechniqueRef `json:"refs"`
	Highlights   Highlights   `json:"highlights"`
}

// CellRef addresses a single grid cell.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Candidate is one eliminated (cell, digit) pair.
type Candidate struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// TechniqueRef identifies the technique that produced a Move.
type TechniqueRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Tier  string `json:"tier"`
}

// Highlights groups the cells a client should draw attention to when
// rendering a Move: the technique's defining pattern, then any
// secondary clue cells (ALS members, chain endpoints).
type Highlights struct {
	Primary   []CellRef `json:"primary"`
	Secondary []CellRef `json:"secondary,omitempty"`
}
