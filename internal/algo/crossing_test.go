package algo

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// buildPlus creates a central under-jumper region surrounded by four
// frame regions. Frame regions connect only inward, so every route
// between frame regions traverses the center.
//
//	      T
//	   t1   t2
//	L l1  U  r1 R
//	   b1   b2
//	      B
func buildPlus() *core.Graph {
	g := core.NewGraph()
	g.AddRegion(&core.Region{ID: 0, Bounds: geom.Box(0, 0, 10, 10), Kind: core.KindUnderJumper})
	g.AddRegion(&core.Region{ID: 1, Bounds: geom.Box(0, -2, 10, 0), Kind: core.KindFrame})  // T
	g.AddRegion(&core.Region{ID: 2, Bounds: geom.Box(0, 10, 10, 12), Kind: core.KindFrame}) // B
	g.AddRegion(&core.Region{ID: 3, Bounds: geom.Box(-2, 0, 0, 10), Kind: core.KindFrame})  // L
	g.AddRegion(&core.Region{ID: 4, Bounds: geom.Box(10, 0, 12, 10), Kind: core.KindFrame}) // R

	g.AddPort(&core.Port{ID: 0, Region1: 1, Region2: 0, Pos: r2.Vec{X: 3, Y: 0}})   // t1
	g.AddPort(&core.Port{ID: 1, Region1: 1, Region2: 0, Pos: r2.Vec{X: 7, Y: 0}})   // t2
	g.AddPort(&core.Port{ID: 2, Region1: 0, Region2: 2, Pos: r2.Vec{X: 3, Y: 10}})  // b1
	g.AddPort(&core.Port{ID: 3, Region1: 0, Region2: 2, Pos: r2.Vec{X: 7, Y: 10}})  // b2
	g.AddPort(&core.Port{ID: 4, Region1: 3, Region2: 0, Pos: r2.Vec{X: 0, Y: 5}})   // l1
	g.AddPort(&core.Port{ID: 5, Region1: 0, Region2: 4, Pos: r2.Vec{X: 10, Y: 5}})  // r1
	return g
}

// installChord appends an assignment for the chord (p1, p2) through the
// region, owned by a throwaway route on the given net.
func installChord(g *core.Graph, region core.RegionID, p1, p2 core.PortID, net core.NetID) *core.Assignment {
	conn := &core.Connection{ID: core.ConnectionID(100 + int(net)), Net: net}
	route := &core.Route{Connection: conn}
	asg := &core.Assignment{Region: region, Port1: p1, Port2: p2, Connection: conn, Route: route}
	r := g.Region(region)
	r.Assignments = append(r.Assignments, asg)
	g.Port(p1).Assignment = asg
	g.Port(p2).Assignment = asg
	return asg
}

func TestRegionCrossingsInterleaved(t *testing.T) {
	g := buildPlus()
	asg := installChord(g, 0, 4, 5, 1) // l1-r1

	// A top-to-bottom chord always interleaves a left-to-right chord.
	count, offending := RegionCrossings(g, g.Region(0), 0, 2, 2)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if len(offending) != 1 || offending[0] != asg {
		t.Errorf("offending = %v, want the installed assignment", offending)
	}
}

func TestRegionCrossingsSameNetExcluded(t *testing.T) {
	g := buildPlus()
	installChord(g, 0, 4, 5, 1)

	count, offending := RegionCrossings(g, g.Region(0), 0, 2, 1)
	if count != 0 || offending != nil {
		t.Errorf("same-net chord must not count: count=%d offending=%v", count, offending)
	}
}

func TestRegionCrossingsNested(t *testing.T) {
	g := buildPlus()
	installChord(g, 0, 0, 2, 1) // t1-b1

	// t2-b2 runs parallel: nested on the perimeter circle, no crossing.
	count, _ := RegionCrossings(g, g.Region(0), 1, 3, 2)
	if count != 0 {
		t.Errorf("parallel chords must not cross, count = %d", count)
	}
}

func TestRegionCrossingsMultiple(t *testing.T) {
	g := buildPlus()
	installChord(g, 0, 0, 2, 1) // t1-b1
	installChord(g, 0, 1, 3, 2) // t2-b2

	// l1-r1 interleaves both verticals.
	count, offending := RegionCrossings(g, g.Region(0), 4, 5, 3)
	if count != 2 || len(offending) != 2 {
		t.Errorf("count = %d, offending = %d, want 2/2", count, len(offending))
	}
}

func TestRegionCrossingsTopologicalFallback(t *testing.T) {
	// A region with degenerate bounds falls back to cyclic port order.
	g := core.NewGraph()
	g.AddRegion(&core.Region{ID: 0})
	for i := 1; i <= 4; i++ {
		g.AddRegion(&core.Region{ID: core.RegionID(i)})
	}
	g.AddPort(&core.Port{ID: 0, Region1: 0, Region2: 1})
	g.AddPort(&core.Port{ID: 1, Region1: 0, Region2: 2})
	g.AddPort(&core.Port{ID: 2, Region1: 0, Region2: 3})
	g.AddPort(&core.Port{ID: 3, Region1: 0, Region2: 4})

	installChord(g, 0, 0, 2, 1) // Chord across the cycle

	if count, _ := RegionCrossings(g, g.Region(0), 1, 3, 2); count != 1 {
		t.Errorf("interleaved cyclic chord: count = %d, want 1", count)
	}
	if count, _ := RegionCrossings(g, g.Region(0), 1, 2, 2); count != 0 {
		t.Errorf("shared-endpoint cyclic chord: count = %d, want 0", count)
	}
}
