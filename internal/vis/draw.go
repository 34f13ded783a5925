// Package vis implements a Gio-based viewer for routing solves.
package vis

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// Colors per region kind plus route and port accents.
var (
	colorUnderJumper = color.NRGBA{R: 46, G: 54, B: 66, A: 255}
	colorChannel     = color.NRGBA{R: 38, G: 62, B: 52, A: 255}
	colorFrame       = color.NRGBA{R: 60, G: 48, B: 42, A: 255}
	colorPlain       = color.NRGBA{R: 44, G: 44, B: 48, A: 255}
	colorPort        = color.NRGBA{R: 150, G: 170, B: 190, A: 255}
	colorPortRipped  = color.NRGBA{R: 220, G: 120, B: 80, A: 255}
	colorFrontier    = color.NRGBA{R: 255, G: 200, B: 80, A: 255}

	routePalette = []color.NRGBA{
		{R: 102, G: 194, B: 165, A: 255},
		{R: 252, G: 141, B: 98, A: 255},
		{R: 141, G: 160, B: 203, A: 255},
		{R: 231, G: 138, B: 195, A: 255},
		{R: 166, G: 216, B: 84, A: 255},
		{R: 255, G: 217, B: 47, A: 255},
	}
)

func regionColor(kind core.RegionKind) color.NRGBA {
	switch kind {
	case core.KindUnderJumper:
		return colorUnderJumper
	case core.KindChannel:
		return colorChannel
	case core.KindFrame:
		return colorFrame
	default:
		return colorPlain
	}
}

// drawRegion fills a region's bounds after the view transform.
func drawRegion(gtx layout.Context, view geom.Transform, b r2.Box, col color.NRGBA) {
	sb := view.ApplyBox(b)
	rect := image.Rect(int(sb.Min.X), int(sb.Min.Y), int(sb.Max.X), int(sb.Max.Y))
	paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
}

// drawPort draws a port as a filled circle.
func drawPort(gtx layout.Context, view geom.Transform, pos r2.Vec, col color.NRGBA, radius float32) {
	p := view.Apply(pos)
	center := f32.Pt(float32(p.X), float32(p.Y))

	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(center.X+radius, center.Y))
	const segments = 12
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		x := center.X + radius*float32(math.Cos(angle))
		y := center.Y + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// drawSegment draws a route segment between two ports.
func drawSegment(gtx layout.Context, view geom.Transform, a, b r2.Vec, col color.NRGBA, width float32) {
	pa, pb := view.Apply(a), view.Apply(b)
	dx := float32(pb.X - pa.X)
	dy := float32(pb.Y - pa.Y)
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(pa.X)+nx, float32(pa.Y)+ny))
	path.LineTo(f32.Pt(float32(pb.X)+nx, float32(pb.Y)+ny))
	path.LineTo(f32.Pt(float32(pb.X)-nx, float32(pb.Y)-ny))
	path.LineTo(f32.Pt(float32(pa.X)-nx, float32(pa.Y)-ny))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
