package vis

import (
	"fmt"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/jumper-router/internal/algo"
	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// App steps an engine interactively and renders the footprint, the
// installed routes and the current search frontier.
//
// Keys: space = one step, S = run to terminal state, R = restart.
type App struct {
	problem *core.Problem
	params  algo.Parameters
	engine  *algo.Engine
	theme   *material.Theme
	view    geom.Transform
}

// NewApp creates a viewer for the problem.
func NewApp(p *core.Problem, params algo.Parameters) *App {
	a := &App{
		problem: p,
		params:  params,
		theme:   material.NewTheme(),
	}
	a.restart()
	return a
}

// restart rebuilds the engine on a fresh clone of the problem graph.
func (a *App) restart() {
	clone := a.problem.Graph.Clone()
	a.engine = algo.NewWithPolicy(clone, a.problem.Connections, a.params,
		algo.NewJumperPolicy(clone, a.params), a.problem.TargetCrossings)
}

// Run starts the window event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKey(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKey(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.engine.Step()
	case "S":
		a.engine.Solve()
	case "R":
		a.restart()
	}
}

func (a *App) layout(gtx layout.Context) {
	paint.Fill(gtx.Ops, color.NRGBA{R: 24, G: 24, B: 28, A: 255})
	a.fitView(gtx)

	g := a.engine.Graph()
	for _, r := range g.Regions {
		drawRegion(gtx, a.view, r.Bounds, regionColor(r.Kind))
	}
	for i, rt := range a.engine.SolvedRoutes {
		col := routePalette[i%len(routePalette)]
		for _, step := range rt.Steps {
			if step.LastPort == core.NoPort {
				continue
			}
			drawSegment(gtx, a.view,
				g.Port(step.LastPort).Pos, g.Port(step.Port).Pos, col, 3)
		}
	}
	for _, p := range g.Ports {
		col := colorPort
		if p.RipCount > 0 {
			col = colorPortRipped
		}
		drawPort(gtx, a.view, p.Pos, col, 3)
	}
	for _, c := range a.engine.PeekCandidates(8) {
		drawPort(gtx, a.view, g.Port(c.Port).Pos, colorFrontier, 5)
	}

	a.drawStatus(gtx)
}

// fitView scales the footprint into the window with a margin.
func (a *App) fitView(gtx layout.Context) {
	g := a.engine.Graph()
	bounds := g.Regions[0].Bounds
	for _, r := range g.Regions[1:] {
		bounds = geom.Union(bounds, r.Bounds)
	}

	const margin = 40.0
	w := float64(gtx.Constraints.Max.X) - 2*margin
	h := float64(gtx.Constraints.Max.Y) - 2*margin - 30 // Status line
	s := w / geom.Width(bounds)
	if hs := h / geom.Height(bounds); hs < s {
		s = hs
	}
	a.view = geom.Translate(margin-bounds.Min.X*s, margin-bounds.Min.Y*s).
		Mul(geom.Scale(s, s))
}

func (a *App) drawStatus(gtx layout.Context) {
	e := a.engine
	state := "searching"
	switch {
	case e.Solved:
		state = "solved"
	case e.Failed:
		state = fmt.Sprintf("failed: %v", e.Err)
	}
	text := fmt.Sprintf("%s | iterations %d | routes %d | rips %d | pending %d",
		state, e.Iterations, len(e.SolvedRoutes), e.Rips, e.Pending())

	lbl := material.Label(a.theme, unit.Sp(14), text)
	lbl.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	layout.S.Layout(gtx, lbl.Layout)
}
