package geom

import (
	"math"
	"testing"
)

func TestPointValueSemantics(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(3, 4)
	if p != q {
		t.Errorf("points with equal coordinates must compare equal: %v vs %v", p, q)
	}

	moved := p.Add(Pt(1, 1))
	if p != Pt(3, 4) {
		t.Errorf("Add must not mutate the receiver: %v", p)
	}
	if moved != Pt(4, 5) {
		t.Errorf("Add = %v, want (4,5)", moved)
	}
	if moved.Sub(Pt(1, 1)) != p {
		t.Errorf("Sub should invert Add")
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Pt(5, 5), Pt(5, 5), 0},
		{"horizontal", Pt(0, 0), Pt(10, 0), 10},
		{"vertical", Pt(0, 0), Pt(0, -7), 7},
		{"pythagorean", Pt(0, 0), Pt(3, 4), 5},
		{"negative quadrant", Pt(-3, -4), Pt(0, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Dist(tt.q); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Dist(%v, %v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestChebyshevDist(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want int
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"diagonal neighbour", Pt(0, 0), Pt(1, 1), 1},
		{"x dominant", Pt(0, 0), Pt(5, 2), 5},
		{"y dominant", Pt(0, 0), Pt(2, -9), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.ChebyshevDist(tt.q); got != tt.want {
				t.Errorf("ChebyshevDist(%v, %v) = %d, want %d", tt.p, tt.q, got, tt.want)
			}
		})
	}
}
