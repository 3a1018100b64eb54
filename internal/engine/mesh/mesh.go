// Package mesh builds the flat-shaded primitive geometry the scene is made
// of. It has no GL dependency; the renderer uploads the result.
package mesh

import (
	"github.com/Faultbox/drivetown/pkg/math"
)

// Color is linear RGB.
type Color [3]float32

// Vertex is one interleaved vertex: position, normal, color.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    Color
}

// Stride is the number of floats per interleaved vertex.
const Stride = 9

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Interleaved returns the vertex data laid out for a single VBO.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*Stride)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Color[0], v.Color[1], v.Color[2],
		)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		p := v.Position
		min = math.Vec3{X: min32(min.X, p.X), Y: min32(min.Y, p.Y), Z: min32(min.Z, p.Z)}
		max = math.Vec3{X: max32(max.X, p.X), Y: max32(max.Y, p.Y), Z: max32(max.Z, p.Z)}
	}
	return min, max
}

// Builder accumulates primitives into one mesh.
type Builder struct {
	mesh Mesh
}

// Build returns the accumulated mesh.
func (b *Builder) Build() *Mesh {
	m := b.mesh
	return &m
}

// Triangle adds a triangle. Vertices are counter-clockwise when seen from
// the front.
func (b *Builder) Triangle(p0, p1, p2 math.Vec3, c Color) {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	base := uint32(len(b.mesh.Vertices))
	for _, p := range [...]math.Vec3{p0, p1, p2} {
		b.mesh.Vertices = append(b.mesh.Vertices, Vertex{Position: p, Normal: n, Color: c})
	}
	b.mesh.Indices = append(b.mesh.Indices, base, base+1, base+2)
}

// Quad adds a planar quad. Vertices are counter-clockwise when seen from
// the front.
func (b *Builder) Quad(p0, p1, p2, p3 math.Vec3, c Color) {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	base := uint32(len(b.mesh.Vertices))
	for _, p := range [...]math.Vec3{p0, p1, p2, p3} {
		b.mesh.Vertices = append(b.mesh.Vertices, Vertex{Position: p, Normal: n, Color: c})
	}
	b.mesh.Indices = append(b.mesh.Indices, base, base+1, base+2, base, base+2, base+3)
}

// Box adds an axis-aligned box spanning lo to hi.
func (b *Builder) Box(lo, hi math.Vec3, c Color) {
	x0, y0, z0 := lo.X, lo.Y, lo.Z
	x1, y1, z1 := hi.X, hi.Y, hi.Z

	b.Quad(v(x1, y0, z1), v(x1, y0, z0), v(x1, y1, z0), v(x1, y1, z1), c) // +X
	b.Quad(v(x0, y0, z0), v(x0, y0, z1), v(x0, y1, z1), v(x0, y1, z0), c) // -X
	b.Quad(v(x0, y1, z1), v(x1, y1, z1), v(x1, y1, z0), v(x0, y1, z0), c) // +Y
	b.Quad(v(x0, y0, z0), v(x1, y0, z0), v(x1, y0, z1), v(x0, y0, z1), c) // -Y
	b.Quad(v(x0, y0, z1), v(x1, y0, z1), v(x1, y1, z1), v(x0, y1, z1), c) // +Z
	b.Quad(v(x1, y0, z0), v(x0, y0, z0), v(x0, y1, z0), v(x1, y1, z0), c) // -Z
}

// GableRoof adds a triangular prism spanning lo to hi with its ridge along
// X at the top, centered in Z.
func (b *Builder) GableRoof(lo, hi math.Vec3, c Color) {
	x0, y0, z0 := lo.X, lo.Y, lo.Z
	x1, y1, z1 := hi.X, hi.Y, hi.Z
	zm := (z0 + z1) / 2

	b.Quad(v(x0, y0, z1), v(x1, y0, z1), v(x1, y1, zm), v(x0, y1, zm), c) // +Z slope
	b.Quad(v(x1, y0, z0), v(x0, y0, z0), v(x0, y1, zm), v(x1, y1, zm), c) // -Z slope
	b.Triangle(v(x1, y0, z1), v(x1, y0, z0), v(x1, y1, zm), c)            // +X gable
	b.Triangle(v(x0, y0, z0), v(x0, y0, z1), v(x0, y1, zm), c)            // -X gable
	b.Quad(v(x0, y0, z0), v(x1, y0, z0), v(x1, y0, z1), v(x0, y0, z1), c) // underside
}

// Plane adds an upward-facing rectangle at height y.
func (b *Builder) Plane(lo, hi math.Vec2, y float32, c Color) {
	b.Quad(v(lo.X, y, hi.Y), v(hi.X, y, hi.Y), v(hi.X, y, lo.Y), v(lo.X, y, lo.Y), c)
}

func v(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
