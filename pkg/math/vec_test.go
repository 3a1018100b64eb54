package math

import (
	"math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestPlanarDistanceIgnoresHeight(t *testing.T) {
	a := Vec3{5, 0.1, 1}
	b := Vec3{5, 40, 1}
	if d := a.PlanarDistance(b); d != 0 {
		t.Errorf("PlanarDistance = %v, want 0", d)
	}

	c := Vec3{2, -7, 5}
	if d := (Vec3{-1, 3, 1}).PlanarDistance(c); abs(d-5) > 1e-5 {
		t.Errorf("PlanarDistance = %v, want 5", d)
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		heading float32
		want    Vec3
	}{
		{0, Vec3{0, 0, 1}},
		{float32(math.Pi / 2), Vec3{1, 0, 0}},
		{float32(math.Pi), Vec3{0, 0, -1}},
		{float32(-math.Pi / 2), Vec3{-1, 0, 0}},
		{float32(5 * math.Pi / 2), Vec3{1, 0, 0}}, // unbounded headings wrap naturally
	}

	for _, tt := range tests {
		got := Forward(tt.heading)
		if got.Distance(tt.want) > 1e-5 {
			t.Errorf("Forward(%v) = %v, want %v", tt.heading, got, tt.want)
		}
	}
}

func TestHeadingToInvertsForward(t *testing.T) {
	from := Vec3{5, 0.1, 1}
	for _, to := range []Vec3{{0, 0, 0}, {10, 3, 1}, {5, 0, -4}, {-2, 0, 8}} {
		h := HeadingTo(from, to)
		dir := to.Sub(from)
		dir.Y = 0
		want := dir.Normalize()
		if got := Forward(h); got.Distance(want) > 1e-5 {
			t.Errorf("Forward(HeadingTo(%v, %v)) = %v, want %v", from, to, got, want)
		}
	}
}
