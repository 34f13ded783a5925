package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Perimeter returns the total perimeter length of a box.
func Perimeter(b r2.Box) float64 {
	return 2 * (Width(b) + Height(b))
}

// PerimeterPos maps a point to its parameter t in [0, P) along the box
// perimeter, tracing top, right, bottom, left. Points off the perimeter
// are projected onto the nearest perimeter point first.
func PerimeterPos(b r2.Box, p r2.Vec) float64 {
	w, h := Width(b), Height(b)

	x := clamp(p.X, b.Min.X, b.Max.X)
	y := clamp(p.Y, b.Min.Y, b.Max.Y)

	// Distances to the four edges of the box.
	dTop := math.Abs(p.Y - b.Min.Y)
	dRight := math.Abs(p.X - b.Max.X)
	dBottom := math.Abs(p.Y - b.Max.Y)
	dLeft := math.Abs(p.X - b.Min.X)

	best := dTop
	t := x - b.Min.X // top: left to right
	if dRight < best {
		best = dRight
		t = w + (y - b.Min.Y) // right: top to bottom
	}
	if dBottom < best {
		best = dBottom
		t = w + h + (b.Max.X - x) // bottom: right to left
	}
	if dLeft < best {
		t = w + h + w + (b.Max.Y - y) // left: bottom to top
	}

	if per := Perimeter(b); t >= per {
		t -= per
	}
	return t
}

// InOpenArc reports whether x lies strictly inside the open circular arc
// from a to b (walking forward from a), on a circle of the given period.
func InOpenArc(a, b, x, period float64) bool {
	span := mod(b-a, period)
	off := mod(x-a, period)
	return off > 0 && off < span
}

// ChordsCross reports whether the chords (a,b) and (c,d), given as
// perimeter parameters on a circle of the given period, interleave:
// exactly one of c, d lies strictly between a and b.
func ChordsCross(a, b, c, d, period float64) bool {
	return InOpenArc(a, b, c, period) != InOpenArc(a, b, d, period)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mod(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}
