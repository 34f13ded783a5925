// Package geom provides the planar primitives used by the footprint
// generator and the region crossing predicate.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Dist returns the Euclidean distance between two points.
func Dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Center returns the midpoint of a box.
func Center(b r2.Box) r2.Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

// Union returns the smallest box containing both a and b.
func Union(a, b r2.Box) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y)},
		Max: r2.Vec{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y)},
	}
}

// Box builds a box from corner coordinates.
func Box(minX, minY, maxX, maxY float64) r2.Box {
	return r2.Box{Min: r2.Vec{X: minX, Y: minY}, Max: r2.Vec{X: maxX, Y: maxY}}
}

// Width returns the horizontal extent of a box.
func Width(b r2.Box) float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of a box.
func Height(b r2.Box) float64 { return b.Max.Y - b.Min.Y }
