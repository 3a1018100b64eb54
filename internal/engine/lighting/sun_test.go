package lighting

import (
	"testing"

	"github.com/Faultbox/drivetown/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want math.Vec3
	}{
		{"zenith", Sun{Elevation: 90}, math.Vec3{Y: 1}},
		{"horizon north", Sun{Azimuth: 0}, math.Vec3{Z: 1}},
		{"horizon east", Sun{Azimuth: 90}, math.Vec3{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sun.Direction()
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultSunIsUnitAndAbove(t *testing.T) {
	d := DefaultSun.Direction()
	if l := d.Length(); l < 0.9999 || l > 1.0001 {
		t.Errorf("length = %v, want 1", l)
	}
	if d.Y <= 0 {
		t.Error("default sun should be above the horizon")
	}
}

func TestIntensity(t *testing.T) {
	sun := Sun{Elevation: 90, Ambient: 0.3}

	if got := sun.Intensity(math.Vec3{Y: 1}); got < 0.9999 {
		t.Errorf("facing the sun = %v, want 1", got)
	}
	if got := sun.Intensity(math.Vec3{Y: -1}); got != 0.3 {
		t.Errorf("facing away = %v, want ambient 0.3", got)
	}
}
