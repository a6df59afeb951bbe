package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/sudoku-engine/hlsolve/internal/board"
	"github.com/sudoku-engine/hlsolve/internal/engine"
	"github.com/sudoku-engine/hlsolve/internal/geometry"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect <puzzle_string>")
		os.Exit(1)
	}

	puzzleStr := os.Args[1]
	if len(puzzleStr) != 81 {
		fmt.Printf("puzzle must be 81 characters, got %d\n", len(puzzleStr))
		os.Exit(1)
	}

	out := colorable.NewColorableStdout()
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	b, err := board.ParsePuzzleString(puzzleStr)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", color.RedString("parse error:"), err)
		os.Exit(1)
	}

	solver := engine.NewSolver()
	steps, outcome := solver.SolveSteps(b, 500)

	for i, step := range steps {
		label := color.CyanString("%2d. %s", i+1, step.Technique.Name)
		fmt.Fprintf(out, "%s\n", label)
		for _, a := range step.Solution.Actions {
			switch {
			case a.Confirm != nil:
				fmt.Fprintf(out, "    %s %v = %d\n", color.GreenString("place"), a.Confirm.Cell, a.Confirm.Digit)
			case a.Eliminate != nil:
				fmt.Fprintf(out, "    %s %v %v\n", color.YellowString("eliminate"), a.Eliminate.Target.Digits(), a.Eliminate.Cell)
			}
		}
	}

	printBoard(out, b)

	switch outcome {
	case engine.OutcomeCompleted:
		fmt.Fprintln(out, color.GreenString("solved in %d steps", len(steps)))
	case engine.OutcomeStalled:
		fmt.Fprintln(out, color.RedString("stalled after %d steps: no applicable technique", len(steps)))
	case engine.OutcomeMaxStepsReached:
		fmt.Fprintln(out, color.YellowString("max steps reached after %d steps", len(steps)))
	}
}

func printBoard(out io.Writer, b *board.Board) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := b.Cell(geometry.Coord{Row: r, Col: c})
			if cell.Kind == board.KindUnsolved {
				fmt.Fprint(out, color.HiBlackString("."))
			} else {
				fmt.Fprint(out, color.New(color.Bold).Sprintf("%d", cell.Digit))
			}
			fmt.Fprint(out, " ")
		}
		fmt.Fprintln(out)
	}
}
