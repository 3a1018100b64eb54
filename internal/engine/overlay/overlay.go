// Package overlay draws screen-space text and panels over the 3D scene.
package overlay

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/drivetown/internal/engine/shader"
	"github.com/Faultbox/drivetown/pkg/math"
)

const (
	solidStride = 6 // x, y, r, g, b, a
	textStride  = 8 // x, y, u, v, r, g, b, a
)

// Renderer batches quads for one frame and draws them in End.
type Renderer struct {
	width, height int

	solid *shader.Program
	text  *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32

	solidVertices []float32
	textVertices  []float32

	atlas    *Atlas
	atlasTex uint32
}

// New creates an overlay renderer. Must be called after the GL context is
// created.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:         width,
		height:        height,
		solidVertices: make([]float32, 0, 1024),
		textVertices:  make([]float32, 0, 4096),
		atlas:         NewAtlas(),
	}

	var err error
	r.solid, err = shader.NewProgram(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay solid shader: %w", err)
	}
	r.text, err = shader.NewProgram(textVertexShader, textFragmentShader)
	if err != nil {
		r.solid.Delete()
		return nil, fmt.Errorf("overlay text shader: %w", err)
	}

	r.solidVAO, r.solidVBO = newStreamBuffers([]int32{2, 4})
	r.textVAO, r.textVBO = newStreamBuffers([]int32{2, 2, 4})
	r.atlasTex = uploadAtlas(r.atlas)

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Atlas returns the font atlas, for measuring text.
func (r *Renderer) Atlas() *Atlas {
	return r.atlas
}

// Begin starts a new overlay frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// DrawRect queues a filled rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c Color) {
	r.solidVertices = append(r.solidVertices,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// DrawPanel queues a filled rectangle with a one pixel border.
func (r *Renderer) DrawPanel(x, y, w, h float32, bg, border Color) {
	r.DrawRect(x, y, w, h, bg)
	r.DrawRect(x, y, w, 1, border)
	r.DrawRect(x, y+h-1, w, 1, border)
	r.DrawRect(x, y+1, 1, h-2, border)
	r.DrawRect(x+w-1, y+1, 1, h-2, border)
}

// DrawText queues text with its top-left corner at x, y.
func (r *Renderer) DrawText(x, y float32, text string, scale float32, c Color) {
	gw, gh := r.atlas.GlyphSize()
	cw, ch := float32(gw)*scale, float32(gh)*scale

	curX := x
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += ch
			continue
		}
		u0, v0, u1, v1 := r.atlas.GlyphUV(char)
		r.textVertices = append(r.textVertices,
			curX, y, u0, v0, c.R, c.G, c.B, c.A,
			curX+cw, y, u1, v0, c.R, c.G, c.B, c.A,
			curX+cw, y+ch, u1, v1, c.R, c.G, c.B, c.A,
			curX, y, u0, v0, c.R, c.G, c.B, c.A,
			curX+cw, y+ch, u1, v1, c.R, c.G, c.B, c.A,
			curX, y+ch, u0, v1, c.R, c.G, c.B, c.A,
		)
		curX += cw
	}
}

// End draws everything queued since Begin.
func (r *Renderer) End() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := ortho(float32(r.width), float32(r.height))

	if len(r.solidVertices) > 0 {
		r.solid.Use()
		r.solid.SetMat4("uProjection", proj)
		stream(r.solidVAO, r.solidVBO, r.solidVertices)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	if len(r.textVertices) > 0 {
		r.text.Use()
		r.text.SetMat4("uProjection", proj)
		r.text.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
		stream(r.textVAO, r.textVBO, r.textVertices)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	gl.DeleteTextures(1, &r.atlasTex)
	gl.DeleteVertexArrays(1, &r.solidVAO)
	gl.DeleteBuffers(1, &r.solidVBO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.textVBO)
	r.solid.Delete()
	r.text.Delete()
}

// ortho maps pixel coordinates with the origin at the top left to clip space.
func ortho(w, h float32) math.Mat4 {
	return math.Mat4{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// newStreamBuffers creates a VAO/VBO pair with tightly packed float
// attributes of the given sizes.
func newStreamBuffers(sizes []int32) (vao, vbo uint32) {
	var stride int32
	for _, s := range sizes {
		stride += s
	}

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var offset int32
	for i, s := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), s, gl.FLOAT, false, stride*4, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += s
	}

	gl.BindVertexArray(0)
	return vao, vbo
}

func stream(vao, vbo uint32, data []float32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STREAM_DRAW)
}

func uploadAtlas(a *Atlas) uint32 {
	var tex uint32
	b := a.Image.Bounds()

	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&a.Image.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vUV;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vUV = aUV;
	vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

in vec2 vUV;
in vec4 vColor;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	FragColor = vec4(vColor.rgb, vColor.a * texture(uTexture, vUV).r);
}
`
