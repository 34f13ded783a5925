// Package main benchmarks the routing engine across problem corpora and
// parameter sets, collecting per-run metrics into CSV.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/elektrokombinacija/jumper-router/internal/algo"
	"github.com/elektrokombinacija/jumper-router/internal/gen"
)

// ParameterSet names a parameter combination under test.
type ParameterSet struct {
	Name       string          `json:"name"`
	Parameters algo.Parameters `json:"parameters"`
	Fallback   bool            `json:"fallback"`
}

// RunResult stores the metrics of a single solve.
type RunResult struct {
	Problem     string  `json:"problem"`
	ParamSet    string  `json:"paramSet"`
	Connections int     `json:"connections"`
	Solved      bool    `json:"solved"`
	Error       string  `json:"error,omitempty"`
	Iterations  int     `json:"iterations"`
	Rips        int     `json:"rips"`
	Routes      int     `json:"routes"`
	RuntimeMs   float64 `json:"runtimeMs"`
}

// setMetrics aggregates results per parameter set.
type setMetrics struct {
	runs, solves, iterations, rips int
	runtimeMs                      float64
}

func loadParameterSets(path string) ([]ParameterSet, error) {
	if path == "" {
		return []ParameterSet{{Name: "default", Parameters: algo.DefaultParameters()}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sets []ParameterSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sets, nil
}

func runOne(file *gen.ProblemFile, set ParameterSet) *RunResult {
	result := &RunResult{
		Problem:  file.Name,
		ParamSet: set.Name,
	}

	problem, err := file.Problem()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Connections = len(problem.Connections)

	start := time.Now()
	var engine *algo.Engine
	if set.Fallback {
		engine = algo.SolveWithFallback(problem, set.Parameters, algo.FallbackVariants(set.Parameters))
	} else {
		engine = algo.NewFromProblem(problem, set.Parameters)
		engine.Solve()
	}
	result.RuntimeMs = float64(time.Since(start).Microseconds()) / 1000.0

	result.Solved = engine.Solved
	result.Iterations = engine.Iterations
	result.Rips = engine.Rips
	result.Routes = len(engine.SolvedRoutes)
	if engine.Err != nil {
		result.Error = engine.Err.Error()
	}
	return result
}

func writeCSV(results []*RunResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"problem", "param_set", "connections", "solved", "error",
		"iterations", "rips", "routes", "runtime_ms",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Problem, r.ParamSet, fmt.Sprintf("%d", r.Connections),
			fmt.Sprintf("%t", r.Solved), r.Error,
			fmt.Sprintf("%d", r.Iterations), fmt.Sprintf("%d", r.Rips),
			fmt.Sprintf("%d", r.Routes), fmt.Sprintf("%.3f", r.RuntimeMs),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []*RunResult) {
	metrics := make(map[string]*setMetrics)
	for _, r := range results {
		m, ok := metrics[r.ParamSet]
		if !ok {
			m = &setMetrics{}
			metrics[r.ParamSet] = m
		}
		m.runs++
		if r.Solved {
			m.solves++
			m.iterations += r.Iterations
			m.rips += r.Rips
			m.runtimeMs += r.RuntimeMs
		}
	}

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-20s %6s %7s %10s %8s %12s\n",
		"ParamSet", "Runs", "Solved", "AvgIters", "AvgRips", "AvgTime(ms)")
	fmt.Println(strings.Repeat("-", 68))

	var names []string
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := metrics[name]
		avgIters, avgRips, avgTime := 0.0, 0.0, 0.0
		if m.solves > 0 {
			avgIters = float64(m.iterations) / float64(m.solves)
			avgRips = float64(m.rips) / float64(m.solves)
			avgTime = m.runtimeMs / float64(m.solves)
		}
		fmt.Printf("%-20s %6d %7d %10.1f %8.2f %12.2f\n",
			name, m.runs, m.solves, avgIters, avgRips, avgTime)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing problem JSON files")
	paramsFile := flag.String("params", "", "JSON file with parameter sets (default: built-in defaults)")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "Output CSV file")
	verbose := flag.Bool("verbose", false, "Per-run output")

	flag.Parse()

	sets, err := loadParameterSets(*paramsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading parameter sets: %v\n", err)
		os.Exit(1)
	}

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No problem files in %s\n", *inputDir)
		fmt.Fprintln(os.Stderr, "Run gen_problems first: go run ./tools/gen_problems -scaling")
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	totalRuns := len(files) * len(sets)
	fmt.Printf("Running benchmarks: %d problems x %d parameter sets = %d runs\n",
		len(files), len(sets), totalRuns)

	var results []*RunResult
	currentRun := 0
	for _, path := range files {
		file, err := gen.LoadProblemFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
			continue
		}
		for _, set := range sets {
			currentRun++
			if *verbose {
				fmt.Printf("[%d/%d] %s / %s ... ", currentRun, totalRuns, file.Name, set.Name)
			} else {
				fmt.Printf("\r[%d/%d] Running...", currentRun, totalRuns)
			}

			result := runOne(file, set)
			results = append(results, result)

			if *verbose {
				if result.Solved {
					fmt.Printf("OK (%.2fms, %d iters, %d rips)\n",
						result.RuntimeMs, result.Iterations, result.Rips)
				} else {
					fmt.Printf("FAILED (%s)\n", result.Error)
				}
			}
		}
	}
	fmt.Println()

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s\n", *outputFile)

	printSummary(results)
}
