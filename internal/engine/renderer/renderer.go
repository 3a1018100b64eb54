// Package renderer draws the scene snapshot with OpenGL.
package renderer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/drivetown/internal/engine/lighting"
	"github.com/Faultbox/drivetown/internal/engine/mesh"
	"github.com/Faultbox/drivetown/internal/engine/shader"
	"github.com/Faultbox/drivetown/internal/logger"
	"github.com/Faultbox/drivetown/pkg/math"
)

// Projection.
const (
	FieldOfView = 60 * gomath.Pi / 180
	NearPlane   = 0.1
	FarPlane    = 500
)

// GroundHalfExtent is half the side of the ground square.
const GroundHalfExtent = 150

// Placement is where a model stands and which way it faces.
type Placement struct {
	Position math.Vec3
	Heading  float32
}

// Scene is what DrawScene draws for one frame.
type Scene struct {
	House        Placement
	Vehicle      Placement
	Human        Placement
	HumanVisible bool
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws the scene.
type Renderer struct {
	config Config
	proj   math.Mat4
	sun    lighting.Sun

	program *shader.Program

	ground *gpuMesh
	house  *gpuMesh
	car    *gpuMesh
	human  *gpuMesh
}

// gpuMesh is a mesh uploaded to the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// New creates a renderer. Must be called after the GL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg, sun: lighting.DefaultSun}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.MULTISAMPLE)
	sky := mesh.ClearSky
	gl.ClearColor(sky[0], sky[1], sky[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	r.ground = upload(mesh.Ground(GroundHalfExtent))
	r.house = upload(mesh.House())
	r.car = upload(mesh.Car())
	r.human = upload(mesh.Human())

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range []*gpuMesh{r.ground, r.house, r.car, r.human} {
		if m != nil {
			m.delete()
		}
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport and projection for a new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.proj = math.Perspective(FieldOfView, float32(width)/float32(height), NearPlane, FarPlane)
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws the world as seen from view.
func (r *Renderer) DrawScene(scene Scene, view math.Mat4) {
	r.program.Use()
	r.program.SetMat4("uViewProj", r.proj.Mul(view))
	r.program.SetVec3("uLightDir", r.sun.Direction())
	r.program.SetFloat("uAmbient", r.sun.Ambient)

	r.draw(r.ground, math.Identity())
	r.drawAt(r.house, scene.House)
	r.drawAt(r.car, scene.Vehicle)
	if scene.HumanVisible {
		r.drawAt(r.human, scene.Human)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawAt(m *gpuMesh, p Placement) {
	r.draw(m, math.Model(p.Position, p.Heading, math.Vec3{X: 1, Y: 1, Z: 1}))
}

func (r *Renderer) draw(m *gpuMesh, model math.Mat4) {
	r.program.SetMat4("uModel", model)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

func upload(m *mesh.Mesh) *gpuMesh {
	data := m.Interleaved()
	g := &gpuMesh{count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", g.vao),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", g.count),
	)
	return g
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}

const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vColor;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vColor = aColor;
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const sceneFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vColor;

uniform vec3 uLightDir;
uniform float uAmbient;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), uLightDir), 0.0);
	FragColor = vec4(vColor * (uAmbient + (1.0 - uAmbient) * diffuse), 1.0);
}
`
