// Package http wires the technique engine and DLX exact-cover solver
// behind a small gin API: hand a puzzle string in, get back either
// one human-style move, a full worked solution, or a raw exact-cover
// answer.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/core"
	"github.com/sudoku-engine/hlsolve/internal/dlx"
	"github.com/sudoku-engine/hlsolve/internal/engine"
	"github.com/sudoku-engine/hlsolve/pkg/config"
	"github.com/sudoku-engine/hlsolve/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes attaches the solver API to r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve/next", solveNextHandler)
		api.POST("/solve/all", solveAllHandler)
		api.POST("/solve/full", solveFullHandler)
		api.POST("/validate", validateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

type puzzleRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

func parseRequestBoard(c *gin.Context) (*board.Board, bool) {
	var req puzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": board.ErrInvalidPuzzleString.Error()})
		return nil, false
	}
	b, err := board.ParsePuzzleString(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return b, true
}

// solveNextHandler finds and applies a single human-style move.
func solveNextHandler(c *gin.Context) {
	b, ok := parseRequestBoard(c)
	if !ok {
		return
	}
	if b.IsSolved() {
		c.JSON(http.StatusOK, gin.H{"solved": true, "board": core.BoardGrid(b)})
		return
	}

	solver := engine.NewSolver()
	sol, desc, err := solver.FindNextMove(b)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"solved": false, "stalled": true, "board": core.BoardGrid(b)})
		return
	}
	if err := engine.Apply(b, sol); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	step := engine.Step{Solution: sol, Technique: desc}
	c.JSON(http.StatusOK, gin.H{
		"solved": b.IsSolved(),
		"move":   core.FromStep(0, step),
		"board":  core.BoardGrid(b),
	})
}

// solveAllHandler repeatedly applies moves until the board is solved
// or no further technique applies.
func solveAllHandler(c *gin.Context) {
	b, ok := parseRequestBoard(c)
	if !ok {
		return
	}

	maxSteps := constants.MaxSolverSteps
	if cfg != nil && cfg.MaxSolverSteps > 0 {
		maxSteps = cfg.MaxSolverSteps
	}

	solver := engine.NewSolver()
	steps, outcome := solver.SolveSteps(b, maxSteps)

	moves := make([]core.Move, len(steps))
	for i, s := range steps {
		moves[i] = core.FromStep(i, s)
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome": string(outcome),
		"moves":   moves,
		"board":   core.BoardGrid(b),
	})
}

// solveFullHandler returns the unique exact-cover solution directly,
// bypassing the technique engine.
func solveFullHandler(c *gin.Context) {
	b, ok := parseRequestBoard(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), cfgTimeout())
	defer cancel()

	solution, outcome := engine.FullSolve(ctx, b)
	switch outcome {
	case engine.FullSolveUnique:
		c.JSON(http.StatusOK, gin.H{"solution": solution})
	case engine.FullSolveMultiple:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": engine.ErrMultipleSolutions.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": engine.ErrNoSolution.Error()})
	}
}

// validateHandler reports whether a puzzle has a valid, unique
// solution via exact-cover solution counting.
func validateHandler(c *gin.Context) {
	b, ok := parseRequestBoard(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), cfgTimeout())
	defer cancel()

	limit := constants.SolutionCountLimit
	if cfg != nil && cfg.SolutionCountLimit > 0 {
		limit = cfg.SolutionCountLimit
	}

	givens := core.BoardGrid(b)
	count := dlx.New(givens).CountSolutions(ctx, limit)
	c.JSON(http.StatusOK, gin.H{
		"valid":  count > 0,
		"unique": count == 1,
	})
}

const defaultRequestTimeout = 10 * time.Second

func cfgTimeout() time.Duration {
	if cfg != nil && cfg.RequestTimeout > 0 {
		return cfg.RequestTimeout
	}
	return defaultRequestTimeout
}
