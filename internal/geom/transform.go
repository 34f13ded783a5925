package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Transform is a 2D affine transform:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Transform struct {
	XX, XY, X0 float64
	YX, YY, Y0 float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{XX: 1, YY: 1}
}

// Translate returns a pure translation.
func Translate(dx, dy float64) Transform {
	return Transform{XX: 1, YY: 1, X0: dx, Y0: dy}
}

// Scale returns a pure scale about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{XX: sx, YY: sy}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.XX*p.X + t.XY*p.Y + t.X0,
		Y: t.YX*p.X + t.YY*p.Y + t.Y0,
	}
}

// ApplyBox maps a box through the transform and returns the axis-aligned
// bounds of the result.
func (t Transform) ApplyBox(b r2.Box) r2.Box {
	corners := [4]r2.Vec{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
	out := r2.Box{Min: t.Apply(corners[0]), Max: t.Apply(corners[0])}
	for _, c := range corners[1:] {
		p := t.Apply(c)
		out = Union(out, r2.Box{Min: p, Max: p})
	}
	return out
}

// Mul composes two transforms; applying the result is equivalent to
// applying u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		XX: t.XX*u.XX + t.XY*u.YX,
		XY: t.XX*u.XY + t.XY*u.YY,
		X0: t.XX*u.X0 + t.XY*u.Y0 + t.X0,
		YX: t.YX*u.XX + t.YY*u.YX,
		YY: t.YX*u.XY + t.YY*u.YY,
		Y0: t.YX*u.X0 + t.YY*u.Y0 + t.Y0,
	}
}

// FromPoints computes the affine transform mapping the three src points
// onto the three dst points by solving the two 3x3 linear systems.
func FromPoints(src, dst [3]r2.Vec) (Transform, error) {
	a := mat.NewDense(3, 3, []float64{
		src[0].X, src[0].Y, 1,
		src[1].X, src[1].Y, 1,
		src[2].X, src[2].Y, 1,
	})
	bx := mat.NewVecDense(3, []float64{dst[0].X, dst[1].X, dst[2].X})
	by := mat.NewVecDense(3, []float64{dst[0].Y, dst[1].Y, dst[2].Y})

	var rx, ry mat.VecDense
	if err := rx.SolveVec(a, bx); err != nil {
		return Transform{}, fmt.Errorf("geom: degenerate point set: %w", err)
	}
	if err := ry.SolveVec(a, by); err != nil {
		return Transform{}, fmt.Errorf("geom: degenerate point set: %w", err)
	}

	return Transform{
		XX: rx.AtVec(0), XY: rx.AtVec(1), X0: rx.AtVec(2),
		YX: ry.AtVec(0), YY: ry.AtVec(1), Y0: ry.AtVec(2),
	}, nil
}
