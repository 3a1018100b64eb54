package math

import "math"

// Forward returns the unit ground-plane direction for a heading.
// Heading 0 faces +Z and positive headings turn towards +X.
func Forward(heading float32) Vec3 {
	s, c := math.Sincos(float64(heading))
	return Vec3{X: float32(s), Z: float32(c)}
}

// HeadingTo returns the heading that faces from one point towards another
// on the ground plane. It is the inverse of Forward.
func HeadingTo(from, to Vec3) float32 {
	return float32(math.Atan2(float64(to.X-from.X), float64(to.Z-from.Z)))
}
