// Package main generates routing problem corpora for benchmarks.
// Problems are deterministic for a given seed and parameter set.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/jumper-router/internal/gen"
)

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	cols := flag.Int("cols", 2, "Grid columns")
	rows := flag.Int("rows", 2, "Grid rows")
	crossings := flag.Int("crossings", 2, "Target crossing count")
	count := flag.Int("count", 1, "Number of problems (seed increments per problem)")
	outputDir := flag.String("output", "testdata", "Output directory")
	scalingMode := flag.Bool("scaling", false, "Generate a scaling suite (1x1 up to 6x6 grids)")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	type spec struct {
		cols, rows, crossings int
	}
	var specs []spec
	if *scalingMode {
		for _, n := range []int{1, 2, 3, 4, 6} {
			specs = append(specs, spec{cols: n, rows: n, crossings: n * n})
		}
	} else {
		for i := 0; i < *count; i++ {
			specs = append(specs, spec{cols: *cols, rows: *rows, crossings: *crossings})
		}
	}

	written := 0
	for i, s := range specs {
		problemSeed := *seed + int64(i)
		grid := gen.DefaultGridParams(s.cols, s.rows)
		g := gen.GenerateGrid(grid)

		p, err := gen.CreateProblem(g, s.crossings, problemSeed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %dx%d x%d (seed %d): %v\n",
				s.cols, s.rows, s.crossings, problemSeed, err)
			continue
		}

		name := fmt.Sprintf("jumper_%dx%d_x%d_%d", s.cols, s.rows, s.crossings, problemSeed)
		file := gen.NewProblemFile(name, problemSeed, grid, p)
		path := filepath.Join(*outputDir, name+".json")
		if err := file.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			continue
		}

		fmt.Printf("Generated: %s (%d connections, %d regions)\n",
			path, len(p.Connections), len(p.Graph.Regions))
		written++
	}

	if written == 0 {
		fmt.Fprintln(os.Stderr, "No problems generated")
		os.Exit(1)
	}
}
