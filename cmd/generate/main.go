package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sudoku-engine/hlsolve/internal/generator"
)

// compactPuzzle stores one generated puzzle in minimal form: the full
// solution plus, per difficulty, which cell indices stay given.
type compactPuzzle struct {
	Solution string           `json:"s"`
	Givens   map[string][]int `json:"g"`
}

type puzzleFile struct {
	Version int              `json:"version"`
	Count   int              `json:"count"`
	Puzzles []compactPuzzle `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 10000, "number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("w", 0, "worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	puzzles := make([]compactPuzzle, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				fmt.Printf("  progress: %d/%d (%.1f/sec)\n", g, *count, rate)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				puzzles[idx] = generatePuzzle(seed)
				atomic.AddInt64(&generated, 1)
			}
		}()
	}
	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("generated %d puzzles in %v (%.1f/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	file := puzzleFile{Version: 1, Count: *count, Puzzles: puzzles}
	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing file: %v\n", err)
		os.Exit(1)
	}
	info, _ := os.Stat(*output)
	fmt.Printf("done, file size: %.2f MB\n", float64(info.Size())/1024/1024)
}

func generatePuzzle(seed int64) compactPuzzle {
	fullGrid := generator.FullGrid(seed)
	solStr := make([]byte, 81)
	for i, v := range fullGrid {
		solStr[i] = byte('0' + v)
	}

	byDifficulty := generator.CarveWithSubset(fullGrid, seed)
	diffKeys := map[string]string{"easy": "e", "medium": "m", "hard": "h", "extreme": "x", "impossible": "i"}

	givens := make(map[string][]int)
	for diff, puzzle := range byDifficulty {
		var indices []int
		for i, v := range puzzle {
			if v != 0 {
				indices = append(indices, i)
			}
		}
		givens[diffKeys[diff]] = indices
	}

	return compactPuzzle{Solution: string(solStr), Givens: givens}
}
