package engine

import "errors"

// Sentinel errors returned by the engine package and the HTTP
// transport that wraps it. Puzzle-parsing errors (invalid string,
// given/given collision) are board's own sentinels in
// internal/board/errors.go; these cover full-grid solving outcomes.
var (
	ErrNoSolution        = errors.New("engine: puzzle has no solution")
	ErrMultipleSolutions = errors.New("engine: puzzle has multiple solutions")
	ErrMaxStepsReached   = errors.New("engine: max solver steps reached before completion")
)
