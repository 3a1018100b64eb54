package overlay

// Color is RGBA with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// Overlay palette.
var (
	ColorText    = Color{0.95, 0.95, 0.95, 1}
	ColorTextDim = Color{0.7, 0.7, 0.75, 1}
	ColorPanelBg = Color{0.05, 0.05, 0.08, 0.6}
	ColorBorder  = Color{0.3, 0.3, 0.4, 0.9}
)

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}
