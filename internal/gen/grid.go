// Package gen generates jumper-array footprint graphs and routing
// problems over them.
package gen

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// Orientation selects the jumper body direction.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	return [...]string{"vertical", "horizontal"}[o]
}

// Cell edge length in footprint units. Channel and frame extents come
// from the margins and paddings in GridParams.
const cellSize = 10.0

// GridParams configures a jumper-X4 grid footprint.
type GridParams struct {
	Cols, Rows int

	// MarginX and MarginY are the channel widths between adjacent cells.
	MarginX, MarginY float64

	// OuterPaddingX and OuterPaddingY are the frame thicknesses.
	OuterPaddingX, OuterPaddingY float64

	// Ports per boundary inside column (vertical) and row (horizontal)
	// channels.
	InnerColChannelPointCount int
	InnerRowChannelPointCount int

	// Ports per boundary between a frame segment and its cell. Zero
	// values default to 2.
	OuterChannelXPointCount int
	OuterChannelYPointCount int

	// RegionsBetweenPads is the number of channel regions chained in
	// series between adjacent cells. Zero defaults to 1.
	RegionsBetweenPads int

	Orientation Orientation

	// Optional placement: when Bounds is non-nil the footprint is scaled
	// and translated into it; otherwise when Center is non-nil the
	// footprint is translated so its center lands there.
	Center *r2.Vec
	Bounds *r2.Box
}

// DefaultGridParams returns a footprint configuration with two-port
// channels and a single channel region between pads.
func DefaultGridParams(cols, rows int) GridParams {
	return GridParams{
		Cols:                      cols,
		Rows:                      rows,
		MarginX:                   4,
		MarginY:                   4,
		OuterPaddingX:             6,
		OuterPaddingY:             6,
		InnerColChannelPointCount: 2,
		InnerRowChannelPointCount: 2,
		OuterChannelXPointCount:   2,
		OuterChannelYPointCount:   2,
		RegionsBetweenPads:        1,
		Orientation:               Vertical,
	}
}

// gridBuilder tracks id allocation while the footprint is assembled.
type gridBuilder struct {
	g          *core.Graph
	nextRegion core.RegionID
	nextPort   core.PortID
}

func (b *gridBuilder) region(bounds r2.Box, kind core.RegionKind) *core.Region {
	r := &core.Region{ID: b.nextRegion, Bounds: bounds, Kind: kind}
	b.nextRegion++
	b.g.AddRegion(r)
	return r
}

// verticalPorts adds n ports along the vertical boundary x between two
// regions, evenly spaced over [y0, y1].
func (b *gridBuilder) verticalPorts(r1, r2v core.RegionID, x, y0, y1 float64, n int) {
	for k := 0; k < n; k++ {
		y := y0 + float64(k+1)*(y1-y0)/float64(n+1)
		b.g.AddPort(&core.Port{ID: b.nextPort, Region1: r1, Region2: r2v, Pos: r2.Vec{X: x, Y: y}})
		b.nextPort++
	}
}

// horizontalPorts adds n ports along the horizontal boundary y between
// two regions, evenly spaced over [x0, x1].
func (b *gridBuilder) horizontalPorts(r1, r2v core.RegionID, y, x0, x1 float64, n int) {
	for k := 0; k < n; k++ {
		x := x0 + float64(k+1)*(x1-x0)/float64(n+1)
		b.g.AddPort(&core.Port{ID: b.nextPort, Region1: r1, Region2: r2v, Pos: r2.Vec{X: x, Y: y}})
		b.nextPort++
	}
}

// GenerateGrid builds the deterministic region decomposition of a
// cols x rows jumper-X4 footprint: one under-jumper region per cell,
// chains of channel regions between adjacent cells, and an outer frame
// of per-side, per-cell segments. Frame segments connect only inward, so
// every frame-to-frame route traverses the interior.
func GenerateGrid(p GridParams) *core.Graph {
	if p.Cols < 1 {
		p.Cols = 1
	}
	if p.Rows < 1 {
		p.Rows = 1
	}
	if p.RegionsBetweenPads < 1 {
		p.RegionsBetweenPads = 1
	}
	if p.OuterChannelXPointCount < 1 {
		p.OuterChannelXPointCount = 2
	}
	if p.OuterChannelYPointCount < 1 {
		p.OuterChannelYPointCount = 2
	}
	if p.InnerColChannelPointCount < 1 {
		p.InnerColChannelPointCount = 1
	}
	if p.InnerRowChannelPointCount < 1 {
		p.InnerRowChannelPointCount = 1
	}

	b := &gridBuilder{g: core.NewGraph()}

	cellX := func(i int) float64 { return float64(i) * (cellSize + p.MarginX) }
	cellY := func(j int) float64 { return float64(j) * (cellSize + p.MarginY) }

	// Under-jumper cells, row-major.
	cells := make([][]*core.Region, p.Rows)
	for j := 0; j < p.Rows; j++ {
		cells[j] = make([]*core.Region, p.Cols)
		for i := 0; i < p.Cols; i++ {
			x0, y0 := cellX(i), cellY(j)
			cells[j][i] = b.region(geom.Box(x0, y0, x0+cellSize, y0+cellSize), core.KindUnderJumper)
		}
	}

	m := p.RegionsBetweenPads

	// Column channels between horizontally adjacent cells.
	for j := 0; j < p.Rows; j++ {
		for i := 0; i < p.Cols-1; i++ {
			xR := cellX(i) + cellSize
			y0, y1 := cellY(j), cellY(j)+cellSize
			chain := make([]*core.Region, m)
			for k := 0; k < m; k++ {
				sx0 := xR + float64(k)*p.MarginX/float64(m)
				sx1 := xR + float64(k+1)*p.MarginX/float64(m)
				chain[k] = b.region(geom.Box(sx0, y0, sx1, y1), core.KindChannel)
			}
			prev := cells[j][i]
			for k := 0; k < m; k++ {
				x := xR + float64(k)*p.MarginX/float64(m)
				b.verticalPorts(prev.ID, chain[k].ID, x, y0, y1, p.InnerColChannelPointCount)
				prev = chain[k]
			}
			b.verticalPorts(prev.ID, cells[j][i+1].ID, xR+p.MarginX, y0, y1, p.InnerColChannelPointCount)
		}
	}

	// Row channels between vertically adjacent cells.
	for j := 0; j < p.Rows-1; j++ {
		for i := 0; i < p.Cols; i++ {
			yB := cellY(j) + cellSize
			x0, x1 := cellX(i), cellX(i)+cellSize
			chain := make([]*core.Region, m)
			for k := 0; k < m; k++ {
				sy0 := yB + float64(k)*p.MarginY/float64(m)
				sy1 := yB + float64(k+1)*p.MarginY/float64(m)
				chain[k] = b.region(geom.Box(x0, sy0, x1, sy1), core.KindChannel)
			}
			prev := cells[j][i]
			for k := 0; k < m; k++ {
				y := yB + float64(k)*p.MarginY/float64(m)
				b.horizontalPorts(prev.ID, chain[k].ID, y, x0, x1, p.InnerRowChannelPointCount)
				prev = chain[k]
			}
			b.horizontalPorts(prev.ID, cells[j+1][i].ID, yB+p.MarginY, x0, x1, p.InnerRowChannelPointCount)
		}
	}

	// Frame segments: top and bottom per column, left and right per row.
	totalW := cellX(p.Cols-1) + cellSize
	totalH := cellY(p.Rows-1) + cellSize
	for i := 0; i < p.Cols; i++ {
		x0, x1 := cellX(i), cellX(i)+cellSize
		top := b.region(geom.Box(x0, -p.OuterPaddingY, x1, 0), core.KindFrame)
		b.horizontalPorts(top.ID, cells[0][i].ID, 0, x0, x1, p.OuterChannelXPointCount)
	}
	for i := 0; i < p.Cols; i++ {
		x0, x1 := cellX(i), cellX(i)+cellSize
		bottom := b.region(geom.Box(x0, totalH, x1, totalH+p.OuterPaddingY), core.KindFrame)
		b.horizontalPorts(cells[p.Rows-1][i].ID, bottom.ID, totalH, x0, x1, p.OuterChannelXPointCount)
	}
	for j := 0; j < p.Rows; j++ {
		y0, y1 := cellY(j), cellY(j)+cellSize
		left := b.region(geom.Box(-p.OuterPaddingX, y0, 0, y1), core.KindFrame)
		b.verticalPorts(left.ID, cells[j][0].ID, 0, y0, y1, p.OuterChannelYPointCount)
	}
	for j := 0; j < p.Rows; j++ {
		y0, y1 := cellY(j), cellY(j)+cellSize
		right := b.region(geom.Box(totalW, y0, totalW+p.OuterPaddingX, y1), core.KindFrame)
		b.verticalPorts(cells[j][p.Cols-1].ID, right.ID, totalW, y0, y1, p.OuterChannelYPointCount)
	}

	applyPlacement(b.g, p)
	return b.g
}

// applyPlacement maps the footprint through the orientation and optional
// center/bounds transforms.
func applyPlacement(g *core.Graph, p GridParams) {
	tr := geom.Identity()
	transformed := false

	if p.Orientation == Horizontal {
		// Transpose the footprint for horizontal jumper bodies.
		tr = geom.Transform{XY: 1, YX: 1}
		transformed = true
	}

	if p.Bounds != nil || p.Center != nil {
		cur := footprintBounds(g, tr)
		switch {
		case p.Bounds != nil:
			// Solve the placement from the corner correspondences. A
			// generated footprint has positive extent, so the system is
			// never degenerate.
			src := [3]r2.Vec{
				cur.Min,
				{X: cur.Max.X, Y: cur.Min.Y},
				{X: cur.Min.X, Y: cur.Max.Y},
			}
			dst := [3]r2.Vec{
				p.Bounds.Min,
				{X: p.Bounds.Max.X, Y: p.Bounds.Min.Y},
				{X: p.Bounds.Min.X, Y: p.Bounds.Max.Y},
			}
			if place, err := geom.FromPoints(src, dst); err == nil {
				tr = place.Mul(tr)
			}
		case p.Center != nil:
			c := geom.Center(cur)
			tr = geom.Translate(p.Center.X-c.X, p.Center.Y-c.Y).Mul(tr)
		}
		transformed = true
	}

	if !transformed {
		return
	}
	for _, r := range g.Regions {
		r.Bounds = tr.ApplyBox(r.Bounds)
	}
	for _, pt := range g.Ports {
		pt.Pos = tr.Apply(pt.Pos)
	}
}

// footprintBounds unions all region bounds after a pre-transform.
func footprintBounds(g *core.Graph, tr geom.Transform) r2.Box {
	out := tr.ApplyBox(g.Regions[0].Bounds)
	for _, r := range g.Regions[1:] {
		out = geom.Union(out, tr.ApplyBox(r.Bounds))
	}
	return out
}
