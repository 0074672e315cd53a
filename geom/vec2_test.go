package geom

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		name string
		in   Vec2
		w, h float64
		want Vec2
	}{
		{"negative x", Vec2{-1, 11}, 10, 10, Vec2{9, 1}},
		{"already in range", Vec2{5, 5}, 10, 10, Vec2{5, 5}},
		{"exactly at span", Vec2{10, 10}, 10, 10, Vec2{0, 0}},
		{"wrap across loot scenario", Vec2{998, 0}, 1000, 1000, Vec2{998, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Wrap(c.w, c.h)
			if got != c.want {
				t.Errorf("Wrap(%v, %v, %v) = %v, want %v", c.in, c.w, c.h, got, c.want)
			}
		})
	}
}

func TestWrapIdempotent(t *testing.T) {
	p := Vec2{-123.5, 987.25}
	w, h := 200.0, 150.0
	once := p.Wrap(w, h)
	twice := once.Wrap(w, h)
	if once != twice {
		t.Errorf("wrap(wrap(p)) = %v, want %v", twice, once)
	}
	if once.X < 0 || once.X >= w || once.Y < 0 || once.Y >= h {
		t.Errorf("wrapped point %v out of bounds [0,%v)x[0,%v)", once, w, h)
	}
}

func TestTorusDeltaAntisymmetric(t *testing.T) {
	a := Vec2{5, 5}
	b := Vec2{95, 95}
	w, h := 100.0, 100.0

	ab := TorusDelta(a, b, w, h)
	ba := TorusDelta(b, a, w, h)

	if math.Abs(ab.X+ba.X) > 1e-9 || math.Abs(ab.Y+ba.Y) > 1e-9 {
		t.Errorf("TorusDelta(a,b)=%v should be -TorusDelta(b,a)=%v", ab, ba.Scale(-1))
	}
}

func TestTorusDeltaShortestPath(t *testing.T) {
	a := Vec2{5, 0}
	b := Vec2{95, 0}
	got := TorusDelta(a, b, 100, 100)
	// going backward (-10) is shorter than forward (+90)
	if got.X != -10 {
		t.Errorf("expected shortest wrap delta -10, got %v", got.X)
	}
}

func TestNormalizeZero(t *testing.T) {
	z := Vec2{}.Normalize()
	if z != (Vec2{}) {
		t.Errorf("Normalize of zero vector should be zero, got %v", z)
	}
}

func TestDistanceModeEuclideanNoWrap(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{90, 0}
	d2 := DistSq(Euclidean, a, b, 100, 100)
	if d2 != 8100 {
		t.Errorf("euclidean distSq should ignore wrap, got %v want 8100", d2)
	}
}
