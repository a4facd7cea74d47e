package raster

import (
	"math"
	"testing"

	"github.com/josefdc/pixel-alchemy-studio/internal/geom"
)

// pixelSet collapses a pixel sequence into a set, ignoring order and
// duplicates.
func pixelSet(pts []geom.Point) map[geom.Point]bool {
	set := make(map[geom.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

// assertConnected fails unless consecutive pixels are 8-connected.
func assertConnected(t *testing.T, pts []geom.Point) {
	t.Helper()
	for i := 1; i < len(pts); i++ {
		if pts[i-1].ChebyshevDist(pts[i]) > 1 {
			t.Fatalf("gap between consecutive pixels %v and %v (index %d)", pts[i-1], pts[i], i)
		}
	}
}

func TestBresenhamLineShallowTrace(t *testing.T) {
	got := BresenhamLine(geom.Pt(0, 0), geom.Pt(3, 1))
	want := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %v, want %v (full trace %v)", i, got[i], want[i], got)
		}
	}
}

func TestBresenhamLineDegenerate(t *testing.T) {
	p := geom.Pt(7, -2)
	got := BresenhamLine(p, p)
	if len(got) != 1 || got[0] != p {
		t.Errorf("BresenhamLine(p, p) = %v, want [%v]", got, p)
	}
}

func TestBresenhamLineOctants(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 geom.Point
	}{
		{"horizontal right", geom.Pt(0, 0), geom.Pt(9, 0)},
		{"horizontal left", geom.Pt(0, 0), geom.Pt(-9, 0)},
		{"vertical down", geom.Pt(0, 0), geom.Pt(0, 9)},
		{"vertical up", geom.Pt(0, 0), geom.Pt(0, -9)},
		{"shallow +x+y", geom.Pt(0, 0), geom.Pt(8, 3)},
		{"shallow -x+y", geom.Pt(0, 0), geom.Pt(-8, 3)},
		{"shallow +x-y", geom.Pt(0, 0), geom.Pt(8, -3)},
		{"shallow -x-y", geom.Pt(0, 0), geom.Pt(-8, -3)},
		{"steep +x+y", geom.Pt(0, 0), geom.Pt(3, 8)},
		{"steep -x+y", geom.Pt(0, 0), geom.Pt(-3, 8)},
		{"steep +x-y", geom.Pt(0, 0), geom.Pt(3, -8)},
		{"steep -x-y", geom.Pt(0, 0), geom.Pt(-3, -8)},
		{"perfect diagonal", geom.Pt(2, 2), geom.Pt(-5, -5)},
		{"offset origin", geom.Pt(17, -4), geom.Pt(3, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BresenhamLine(tt.p0, tt.p1)

			if got[0] != tt.p0 || got[len(got)-1] != tt.p1 {
				t.Errorf("trace must run p0..p1, got %v..%v", got[0], got[len(got)-1])
			}
			assertConnected(t, got)

			// Direction symmetry: same pixel set either way.
			reverse := BresenhamLine(tt.p1, tt.p0)
			fwd, rev := pixelSet(got), pixelSet(reverse)
			if len(fwd) != len(rev) {
				t.Fatalf("pixel set size differs under endpoint swap: %d vs %d", len(fwd), len(rev))
			}
			for p := range fwd {
				if !rev[p] {
					t.Errorf("pixel %v missing from reversed trace", p)
				}
			}
		})
	}
}

func TestBresenhamCircleRadiusProperty(t *testing.T) {
	center := geom.Pt(100, 100)
	for _, r := range []int{1, 2, 5, 17, 40} {
		edge := geom.Pt(center.X+r, center.Y)
		for _, p := range BresenhamCircle(center, edge) {
			if d := math.Round(center.Dist(p)); math.Abs(d-float64(r)) > 1 {
				t.Errorf("r=%d: pixel %v at rounded distance %v", r, p, d)
			}
		}
	}
}

func TestBresenhamCircleEightWaySymmetry(t *testing.T) {
	c := geom.Pt(0, 0)
	set := pixelSet(BresenhamCircle(c, geom.Pt(11, 0)))
	for p := range set {
		mirrors := []geom.Point{
			{X: -p.X, Y: p.Y},
			{X: p.X, Y: -p.Y},
			{X: -p.X, Y: -p.Y},
			{X: p.Y, Y: p.X},
		}
		for _, m := range mirrors {
			if !set[m] {
				t.Errorf("mirror %v of %v missing from circle", m, p)
			}
		}
	}
}

func TestBresenhamCircleRadiusFromDistance(t *testing.T) {
	// Radius comes from the rounded center-edge distance, not from either
	// coordinate delta alone.
	center := geom.Pt(0, 0)
	pts := BresenhamCircle(center, geom.Pt(3, 4))
	if !pixelSet(pts)[geom.Pt(5, 0)] {
		t.Errorf("edge point (3,4) should give radius 5; (5,0) not on circle")
	}
}

func TestBresenhamCircleDegenerate(t *testing.T) {
	c := geom.Pt(4, 4)
	got := BresenhamCircle(c, c)
	if len(got) != 1 || got[0] != c {
		t.Errorf("zero radius circle = %v, want [%v]", got, c)
	}
}
