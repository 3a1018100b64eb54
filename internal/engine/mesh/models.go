package mesh

import "github.com/Faultbox/drivetown/pkg/math"

// Scene palette.
var (
	Grass    = Color{0.30, 0.55, 0.25}
	Asphalt  = Color{0.25, 0.25, 0.27}
	Wall     = Color{0.85, 0.78, 0.62}
	Roof     = Color{0.55, 0.18, 0.14}
	Door     = Color{0.35, 0.22, 0.12}
	CarBody  = Color{0.80, 0.08, 0.08}
	CarCabin = Color{0.15, 0.18, 0.22}
	Tire     = Color{0.05, 0.05, 0.05}
	Skin     = Color{0.90, 0.72, 0.58}
	Shirt    = Color{0.20, 0.35, 0.70}
	Trousers = Color{0.20, 0.20, 0.25}
	ClearSky = Color{0.55, 0.75, 0.95}
)

// Ground returns a square field of the given half extent with a road along Z.
func Ground(half float32) *Mesh {
	var b Builder
	b.Plane(math.Vec2{X: -half, Y: -half}, math.Vec2{X: half, Y: half}, 0, Grass)
	b.Plane(math.Vec2{X: -3, Y: -half}, math.Vec2{X: 3, Y: half}, 0.01, Asphalt)
	return b.Build()
}

// House returns a small house standing on the origin with its door on +Z.
func House() *Mesh {
	var b Builder
	b.Box(v(-3, 0, -3), v(3, 3, 3), Wall)
	b.GableRoof(v(-3.4, 3, -3.4), v(3.4, 5, 3.4), Roof)
	b.Box(v(-0.5, 0, 3), v(0.5, 2, 3.05), Door)
	return b.Build()
}

// Car returns the car standing on the origin with its nose on +Z.
func Car() *Mesh {
	var b Builder
	b.Box(v(-0.9, 0.3, -2), v(0.9, 0.9, 2), CarBody)
	b.Box(v(-0.8, 0.9, -1.1), v(0.8, 1.6, 0.7), CarCabin)
	for _, x := range [...]float32{-1, 0.75} {
		for _, z := range [...]float32{-1.6, 1.1} {
			b.Box(v(x, 0, z), v(x+0.25, 0.6, z+0.5), Tire)
		}
	}
	return b.Build()
}

// Human returns a blocky figure standing on the origin facing +Z.
func Human() *Mesh {
	var b Builder
	b.Box(v(-0.2, 0, -0.1), v(-0.02, 0.8, 0.1), Trousers)
	b.Box(v(0.02, 0, -0.1), v(0.2, 0.8, 0.1), Trousers)
	b.Box(v(-0.25, 0.8, -0.12), v(0.25, 1.4, 0.12), Shirt)
	b.Box(v(-0.12, 1.42, -0.12), v(0.12, 1.7, 0.12), Skin)
	return b.Build()
}
