// Package lighting describes the scene's single directional light.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/drivetown/pkg/math"
)

// Sun is a directional light given by compass angles in degrees.
type Sun struct {
	Azimuth   float32 // about +Y, 0 points the light at +Z
	Elevation float32 // above the horizon, 0..90
	Ambient   float32 // light level of surfaces facing away
}

// DefaultSun is a mid-afternoon sun behind the default camera's left.
var DefaultSun = Sun{Azimuth: -55, Elevation: 60, Ambient: 0.35}

// Direction returns the unit vector pointing from the ground towards the sun.
func (s Sun) Direction() math.Vec3 {
	az := float64(s.Azimuth) * gomath.Pi / 180
	el := float64(s.Elevation) * gomath.Pi / 180
	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Intensity returns the light level of a surface with the given unit normal.
func (s Sun) Intensity(normal math.Vec3) float32 {
	diffuse := normal.Dot(s.Direction())
	if diffuse < 0 {
		diffuse = 0
	}
	return s.Ambient + (1-s.Ambient)*diffuse
}
