package overlay

import (
	"testing"

	"github.com/Faultbox/drivetown/pkg/math"
)

func TestOrthoCorners(t *testing.T) {
	proj := ortho(800, 600)

	tests := []struct {
		pixel math.Vec3
		clip  math.Vec3
	}{
		{math.Vec3{X: 0, Y: 0}, math.Vec3{X: -1, Y: 1}},
		{math.Vec3{X: 800, Y: 600}, math.Vec3{X: 1, Y: -1}},
		{math.Vec3{X: 400, Y: 300}, math.Vec3{}},
	}
	for _, tt := range tests {
		got := proj.TransformVec3(tt.pixel)
		if got.Distance(tt.clip) > 1e-5 {
			t.Errorf("ortho(%v) = %v, want %v", tt.pixel, got, tt.clip)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(255, 0, 51, 255)
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 1 {
		t.Errorf("RGBA = %+v", c)
	}
}
