package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

func TestGenerateGridSingleCell(t *testing.T) {
	g := GenerateGrid(DefaultGridParams(1, 1))
	require.NoError(t, g.Validate())

	// One under-jumper cell plus four frame segments, no channels.
	require.Len(t, g.Regions, 5)
	kinds := map[core.RegionKind]int{}
	for _, r := range g.Regions {
		kinds[r.Kind]++
	}
	require.Equal(t, 1, kinds[core.KindUnderJumper])
	require.Equal(t, 4, kinds[core.KindFrame])
	require.Equal(t, 0, kinds[core.KindChannel])

	// Two ports per frame boundary, all landing on the cell.
	require.Len(t, g.Ports, 8)
	cell := g.Regions[0]
	require.Len(t, cell.Ports, 8)
	for _, fr := range g.Regions[1:] {
		require.Len(t, fr.Ports, 2, "frame region %d", fr.ID)
	}
}

func TestGenerateGridFrameIsNotARing(t *testing.T) {
	g := GenerateGrid(DefaultGridParams(1, 1))

	// Frame segments never share a port: every frame-to-frame route must
	// traverse the interior.
	for _, p := range g.Ports {
		r1, r2 := g.Region(p.Region1), g.Region(p.Region2)
		if r1.Kind == core.KindFrame && r2.Kind == core.KindFrame {
			t.Fatalf("port %d connects two frame regions", p.ID)
		}
	}
}

func TestGenerateGridTwoByTwo(t *testing.T) {
	g := GenerateGrid(DefaultGridParams(2, 2))
	require.NoError(t, g.Validate())

	kinds := map[core.RegionKind]int{}
	for _, r := range g.Regions {
		kinds[r.Kind]++
	}
	require.Equal(t, 4, kinds[core.KindUnderJumper])
	require.Equal(t, 4, kinds[core.KindChannel]) // 2 column + 2 row channels
	require.Equal(t, 8, kinds[core.KindFrame])   // 2 per side

	// Channel chains have ports on both boundaries; frames two each.
	// 2 channels * 2 boundaries * 2 ports, twice, plus 8 frames * 2 ports.
	require.Len(t, g.Ports, 8+8+16)
}

func TestGenerateGridRegionsBetweenPads(t *testing.T) {
	p := DefaultGridParams(2, 1)
	p.RegionsBetweenPads = 3
	g := GenerateGrid(p)
	require.NoError(t, g.Validate())

	channels := 0
	for _, r := range g.Regions {
		if r.Kind == core.KindChannel {
			channels++
		}
	}
	require.Equal(t, 3, channels, "one column channel split into three regions")

	// The chain is in series: each interior channel region touches only
	// its two neighbors.
	for _, r := range g.Regions {
		if r.Kind == core.KindChannel {
			require.Len(t, g.AdjacentRegions(r), 2)
		}
	}
}

func TestGenerateGridDeterministic(t *testing.T) {
	a := GenerateGrid(DefaultGridParams(3, 2))
	b := GenerateGrid(DefaultGridParams(3, 2))
	require.Equal(t, a.ToSerialized(), b.ToSerialized())
}

func TestGenerateGridHorizontalOrientation(t *testing.T) {
	p := DefaultGridParams(2, 1)
	p.Orientation = Horizontal
	g := GenerateGrid(p)
	require.NoError(t, g.Validate())

	// The transposed footprint is taller than wide.
	v := GenerateGrid(DefaultGridParams(2, 1))
	hb := footprintBounds(g, geom.Identity())
	vb := footprintBounds(v, geom.Identity())
	require.Equal(t, geom.Width(vb), geom.Height(hb))
	require.Equal(t, geom.Height(vb), geom.Width(hb))
}

func TestGenerateGridBoundsPlacement(t *testing.T) {
	target := geom.Box(100, 200, 150, 240)
	p := DefaultGridParams(2, 2)
	p.Bounds = &target
	g := GenerateGrid(p)

	got := footprintBounds(g, geom.Identity())
	require.InDelta(t, target.Min.X, got.Min.X, 1e-9)
	require.InDelta(t, target.Min.Y, got.Min.Y, 1e-9)
	require.InDelta(t, target.Max.X, got.Max.X, 1e-9)
	require.InDelta(t, target.Max.Y, got.Max.Y, 1e-9)
}

func TestGenerateGridCenterPlacement(t *testing.T) {
	c := r2.Vec{X: 50, Y: -20}
	p := DefaultGridParams(1, 1)
	p.Center = &c
	g := GenerateGrid(p)

	got := geom.Center(footprintBounds(g, geom.Identity()))
	require.InDelta(t, c.X, got.X, 1e-9)
	require.InDelta(t, c.Y, got.Y, 1e-9)
}
