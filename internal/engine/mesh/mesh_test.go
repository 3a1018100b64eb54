package mesh

import (
	"testing"

	"github.com/Faultbox/drivetown/pkg/math"
)

// outward checks that every triangle faces away from center.
func outward(t *testing.T, m *Mesh, center math.Vec3) {
	t.Helper()
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		centroid := a.Position.Add(b.Position).Add(c.Position).Scale(1.0 / 3)
		if a.Normal.Dot(centroid.Sub(center)) <= 0 {
			t.Errorf("triangle %d at %v faces inward (normal %v)", i/3, centroid, a.Normal)
		}
	}
}

func TestBox(t *testing.T) {
	var b Builder
	b.Box(v(-1, 0, -2), v(1, 1, 2), CarBody)
	m := b.Build()

	if len(m.Vertices) != 24 {
		t.Errorf("vertices = %d, want 24", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("indices = %d, want 36", len(m.Indices))
	}
	outward(t, m, v(0, 0.5, 0))

	lo, hi := m.Bounds()
	if lo != v(-1, 0, -2) || hi != v(1, 1, 2) {
		t.Errorf("bounds = %v %v", lo, hi)
	}
}

func TestGableRoof(t *testing.T) {
	var b Builder
	b.GableRoof(v(-2, 3, -2), v(2, 5, 2), Roof)
	m := b.Build()

	if len(m.Indices) != 3*(2*2+2+2) {
		t.Errorf("indices = %d, want 24", len(m.Indices))
	}
	outward(t, m, v(0, 3.5, 0))

	_, hi := m.Bounds()
	if hi.Y != 5 {
		t.Errorf("ridge height = %v, want 5", hi.Y)
	}
}

func TestPlaneFacesUp(t *testing.T) {
	var b Builder
	b.Plane(math.Vec2{X: -1, Y: -1}, math.Vec2{X: 1, Y: 1}, 0, Grass)
	m := b.Build()

	for _, vert := range m.Vertices {
		if vert.Normal != v(0, 1, 0) {
			t.Errorf("normal = %v, want +Y", vert.Normal)
		}
	}
}

func TestInterleaved(t *testing.T) {
	var b Builder
	b.Triangle(v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), Color{1, 0.5, 0})
	m := b.Build()

	data := m.Interleaved()
	if len(data) != 3*Stride {
		t.Fatalf("len = %d, want %d", len(data), 3*Stride)
	}
	// Second vertex: position, +Z normal, color.
	want := []float32{1, 0, 0, 0, 0, 1, 1, 0.5, 0}
	for i, w := range want {
		if data[Stride+i] != w {
			t.Errorf("data[%d] = %v, want %v", Stride+i, data[Stride+i], w)
		}
	}
}

func TestModelsFaceAndStand(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
	}{
		{"house", House()},
		{"car", Car()},
		{"human", Human()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.mesh.Bounds()
			if lo.Y != 0 {
				t.Errorf("model should stand on y=0, lowest point %v", lo.Y)
			}
			if hi.Y <= 0 {
				t.Errorf("model has no height")
			}
			if len(tt.mesh.Indices)%3 != 0 {
				t.Errorf("index count %d is not a triangle list", len(tt.mesh.Indices))
			}
		})
	}
}

func TestCarIsLongerThanWide(t *testing.T) {
	lo, hi := Car().Bounds()
	if hi.Z-lo.Z <= hi.X-lo.X {
		t.Errorf("car should be longest along +Z, bounds %v %v", lo, hi)
	}
}

func TestEmptyBounds(t *testing.T) {
	var m Mesh
	lo, hi := m.Bounds()
	if lo != (math.Vec3{}) || hi != (math.Vec3{}) {
		t.Errorf("empty bounds = %v %v", lo, hi)
	}
}
