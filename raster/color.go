package raster

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// ColorFromFloat converts normalized [0,1] channels to 8-bit channels.
func ColorFromFloat(r, g, b, a float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: unitToByte(a)}
}

func unitToByte(v float32) uint8 {
	return uint8(clampF32(v, 0, 1)*255 + 0.5)
}
