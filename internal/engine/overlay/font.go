package overlay

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is baked into the atlas; anything else draws as '?'.
const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Atlas is a fixed-width bitmap font rasterized into a single alpha image.
type Atlas struct {
	Image       *image.Alpha
	glyphWidth  int
	glyphHeight int
}

// NewAtlas rasterizes the basicfont 7x13 face.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	gw := face.Advance
	gh := face.Height

	count := int(lastGlyph - firstGlyph + 1)
	rows := (count + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*gw, rows*gh))

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		x := (i % atlasColumns) * gw
		y := (i / atlasColumns) * gh
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(r))
	}

	return &Atlas{Image: img, glyphWidth: gw, glyphHeight: gh}
}

// GlyphSize returns the cell size in pixels.
func (a *Atlas) GlyphSize() (int, int) {
	return a.glyphWidth, a.glyphHeight
}

// GlyphUV returns the texture coordinates of a glyph cell.
func (a *Atlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	b := a.Image.Bounds()
	x := (i % atlasColumns) * a.glyphWidth
	y := (i / atlasColumns) * a.glyphHeight
	w, h := float32(b.Dx()), float32(b.Dy())
	return float32(x) / w, float32(y) / h,
		float32(x+a.glyphWidth) / w, float32(y+a.glyphHeight) / h
}

// Measure returns the pixel size of text at the given scale. Newlines
// start a new line.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, cols, widest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		widest = max(widest, cols)
	}
	return float32(widest*a.glyphWidth) * scale, float32(lines*a.glyphHeight) * scale
}
