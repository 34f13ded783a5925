// Command jumperroute routes a generated or loaded jumper-array problem
// and prints solve metrics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/elektrokombinacija/jumper-router/internal/algo"
	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/gen"
)

func main() {
	cols := flag.Int("cols", 2, "Grid columns")
	rows := flag.Int("rows", 2, "Grid rows")
	crossings := flag.Int("crossings", 2, "Target crossing count")
	seed := flag.Int64("seed", 42, "Problem generator seed")
	input := flag.String("input", "", "Load a problem JSON instead of generating")

	greedy := flag.Float64("greedy", 0, "Override greedy multiplier (0 = default)")
	ripCost := flag.Float64("ripcost", -1, "Override rip cost (negative = default)")
	order := flag.String("order", "input", "Connection order: input, nearFirst, farFirst")
	noRip := flag.Bool("norip", false, "Disable rip-up and reroute")
	fallback := flag.Bool("fallback", false, "Retry with perturbed parameters on failure")

	flag.Parse()

	problem, err := loadOrGenerate(*input, *cols, *rows, *crossings, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	params := algo.DefaultParameters()
	if *greedy > 0 {
		params.GreedyMultiplier = *greedy
	}
	if *ripCost >= 0 {
		params.RipCost = *ripCost
	}
	params.RippingEnabled = !*noRip
	switch *order {
	case "input":
		params.ConnectionOrder = algo.OrderInput
	case "nearFirst":
		params.ConnectionOrder = algo.OrderNearFirst
	case "farFirst":
		params.ConnectionOrder = algo.OrderFarFirst
	default:
		fmt.Fprintf(os.Stderr, "Unknown connection order %q\n", *order)
		os.Exit(1)
	}

	fmt.Printf("Problem: %d regions, %d ports, %d connections, target crossings %d\n",
		len(problem.Graph.Regions), len(problem.Graph.Ports),
		len(problem.Connections), problem.TargetCrossings)

	start := time.Now()
	var engine *algo.Engine
	if *fallback {
		engine = algo.SolveWithFallback(problem, params, algo.FallbackVariants(params))
	} else {
		engine = algo.NewFromProblem(problem, params)
		engine.Solve()
	}
	elapsed := time.Since(start)

	if engine.Failed {
		fmt.Printf("FAILED after %d iterations (%v): %v\n", engine.Iterations, elapsed, engine.Err)
		fmt.Printf("Partial routes: %d\n", len(engine.SolvedRoutes))
		os.Exit(1)
	}

	fmt.Printf("Solved=%v Iterations=%d Rips=%d Time=%v\n",
		engine.Solved, engine.Iterations, engine.Rips, elapsed)
	for _, rt := range engine.SolvedRoutes {
		fmt.Printf("  connection %d: %d ports, requiredRip=%v\n",
			rt.Connection.ID, len(rt.Steps), rt.RequiredRip)
	}
}

func loadOrGenerate(input string, cols, rows, crossings int, seed int64) (*core.Problem, error) {
	if input != "" {
		f, err := gen.LoadProblemFile(input)
		if err != nil {
			return nil, err
		}
		return f.Problem()
	}
	g := gen.GenerateGrid(gen.DefaultGridParams(cols, rows))
	return gen.CreateProblem(g, crossings, seed)
}
