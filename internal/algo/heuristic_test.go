package algo

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// buildChain creates n regions in a row, joined by one port each.
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddRegion(&core.Region{
			ID:     core.RegionID(i),
			Bounds: geom.Box(float64(i), 0, float64(i+1), 1),
		})
	}
	for i := 0; i < n-1; i++ {
		g.AddPort(&core.Port{
			ID:      core.PortID(i),
			Region1: core.RegionID(i),
			Region2: core.RegionID(i + 1),
			Pos:     r2.Vec{X: float64(i + 1), Y: 0.5},
		})
	}
	return g
}

func TestComputeHopTablesChain(t *testing.T) {
	g := buildChain(5)
	ComputeHopTables(g, []core.RegionID{4})

	// Port i straddles regions i and i+1; its distance to region 4 is the
	// nearer side.
	wants := []int{3, 2, 1, 0}
	for i, want := range wants {
		got, ok := g.Port(core.PortID(i)).HopDist[4]
		if !ok || got != want {
			t.Errorf("port %d hop dist = %d (ok=%v), want %d", i, got, ok, want)
		}
	}
}

func TestComputeHopTablesMultipleDestinations(t *testing.T) {
	g := buildChain(4)
	ComputeHopTables(g, []core.RegionID{0, 3, 3}) // Duplicate dest collapses

	p := g.Port(1) // Straddles regions 1 and 2
	if d := p.HopDist[0]; d != 1 {
		t.Errorf("hop to 0 = %d, want 1", d)
	}
	if d := p.HopDist[3]; d != 1 {
		t.Errorf("hop to 3 = %d, want 1", d)
	}
}

func TestComputeHopTablesUnreachable(t *testing.T) {
	g := buildChain(3)
	// An island region with no ports.
	g.AddRegion(&core.Region{ID: 99, Bounds: geom.Box(50, 50, 51, 51)})
	ComputeHopTables(g, []core.RegionID{99})

	for _, p := range g.Ports {
		if _, ok := p.HopDist[99]; ok {
			t.Errorf("port %d should have no entry for unreachable region", p.ID)
		}
	}
}

func TestJumperPolicyHeuristicUnits(t *testing.T) {
	g := buildChain(4)
	ComputeHopTables(g, []core.RegionID{3})

	params := DefaultParameters()
	hops := NewJumperPolicy(g, params)
	if h := hops.EstimateCostToEnd(g.Port(0), 3); h != 2 {
		t.Errorf("hop heuristic = %v, want 2", h)
	}

	params.UnitOfCost = UnitDistance
	dist := NewJumperPolicy(g, params)
	want := geom.Dist(g.Port(0).Pos, g.Region(3).Center())
	if h := dist.EstimateCostToEnd(g.Port(0), 3); h != want {
		t.Errorf("distance heuristic = %v, want %v", h, want)
	}
}
