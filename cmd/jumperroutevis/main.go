// Command jumperroutevis provides a GUI viewer for routing solves.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/jumper-router/internal/algo"
	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/gen"
	"github.com/elektrokombinacija/jumper-router/internal/vis"
)

func main() {
	cols := flag.Int("cols", 2, "Grid columns")
	rows := flag.Int("rows", 2, "Grid rows")
	crossings := flag.Int("crossings", 2, "Target crossing count")
	seed := flag.Int64("seed", 42, "Problem generator seed")
	input := flag.String("input", "", "Load a problem JSON instead of generating")
	flag.Parse()

	var problem *core.Problem
	var err error
	if *input != "" {
		var f *gen.ProblemFile
		if f, err = gen.LoadProblemFile(*input); err == nil {
			problem, err = f.Problem()
		}
	} else {
		g := gen.GenerateGrid(gen.DefaultGridParams(*cols, *rows))
		problem, err = gen.CreateProblem(g, *crossings, *seed)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Jumper Router"),
			app.Size(unit.Dp(1200), unit.Dp(800)),
		)

		application := vis.NewApp(problem, algo.DefaultParameters())
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
