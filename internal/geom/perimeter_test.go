package geom

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPerimeterPos(t *testing.T) {
	b := Box(0, 0, 10, 4) // perimeter 28

	tests := []struct {
		name string
		p    r2.Vec
		want float64
	}{
		{"top-left corner", r2.Vec{X: 0, Y: 0}, 0},
		{"top edge", r2.Vec{X: 3, Y: 0}, 3},
		{"top-right corner", r2.Vec{X: 10, Y: 0}, 10},
		{"right edge", r2.Vec{X: 10, Y: 2}, 12},
		{"bottom-right corner", r2.Vec{X: 10, Y: 4}, 14},
		{"bottom edge", r2.Vec{X: 6, Y: 4}, 18},
		{"bottom-left corner", r2.Vec{X: 0, Y: 4}, 24},
		{"left edge", r2.Vec{X: 0, Y: 3}, 25},
	}

	for _, tt := range tests {
		if got := PerimeterPos(b, tt.p); got != tt.want {
			t.Errorf("%s: PerimeterPos = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPerimeterPosProjectsInteriorPoints(t *testing.T) {
	b := Box(0, 0, 10, 4)

	// A point just inside the top edge lands on the top edge.
	if got := PerimeterPos(b, r2.Vec{X: 5, Y: 0.1}); got != 5 {
		t.Errorf("interior point near top: got %v, want 5", got)
	}
	// A point just inside the left edge lands on the left edge.
	if got := PerimeterPos(b, r2.Vec{X: 0.1, Y: 2}); got != 26 {
		t.Errorf("interior point near left: got %v, want 26", got)
	}
}

func TestChordsCross(t *testing.T) {
	const period = 28.0

	tests := []struct {
		name       string
		a, b, c, d float64
		want       bool
	}{
		{"interleaved", 0, 10, 5, 15, true},
		{"nested", 0, 10, 2, 8, false},
		{"disjoint", 0, 10, 12, 20, false},
		{"interleaved reversed", 5, 15, 0, 10, true},
		{"wraps around origin", 24, 4, 2, 10, true},
		{"shared endpoint", 0, 10, 10, 20, false},
		{"both wrap", 26, 6, 27, 5, false},
	}

	for _, tt := range tests {
		if got := ChordsCross(tt.a, tt.b, tt.c, tt.d, period); got != tt.want {
			t.Errorf("%s: ChordsCross(%v,%v,%v,%v) = %v, want %v",
				tt.name, tt.a, tt.b, tt.c, tt.d, got, tt.want)
		}
	}
}

func TestChordsCrossSymmetry(t *testing.T) {
	const period = 28.0
	// The predicate is symmetric in the two chords.
	cases := [][4]float64{{0, 10, 5, 15}, {0, 10, 2, 8}, {24, 4, 2, 10}}
	for _, c := range cases {
		ab := ChordsCross(c[0], c[1], c[2], c[3], period)
		cd := ChordsCross(c[2], c[3], c[0], c[1], period)
		if ab != cd {
			t.Errorf("asymmetric result for %v: %v vs %v", c, ab, cd)
		}
	}
}
