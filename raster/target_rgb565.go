package raster

// RGB565Target renders into a little-endian RGB565 pixel buffer.
//
// Callers provide the backing buffer and row stride; the target never allocates.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c Color) {
	if !t.ok() {
		return
	}
	p := PackRGB565(c)
	lo, hi := byte(p), byte(p>>8)
	row := t.Buf[:min(t.W*2, len(t.Buf))]
	for i := 0; i+1 < len(row); i += 2 {
		row[i] = lo
		row[i+1] = hi
	}
	for y := 1; y < t.H; y++ {
		off := y * t.Stride
		if off+len(row) > len(t.Buf) {
			return
		}
		copy(t.Buf[off:off+len(row)], row)
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	off, ok := t.offset(x, y)
	if !ok {
		return
	}
	p := PackRGB565(c)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At reads back a pixel, expanded to 8-bit channels.
func (t *RGB565Target) At(x, y int) Color {
	off, ok := t.offset(x, y)
	if !ok {
		return Color{}
	}
	return UnpackRGB565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}

func (t *RGB565Target) offset(x, y int) (int, bool) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return 0, false
	}
	return off, true
}

// PackRGB565 packs a color as rrrrrggggggbbbbb.
func PackRGB565(c Color) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// UnpackRGB565 expands a packed pixel to 8-bit channels with opaque alpha.
func UnpackRGB565(p uint16) Color {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return Color{
		R: uint8((rr * 255) / 31),
		G: uint8((gg * 255) / 63),
		B: uint8((bb * 255) / 31),
		A: 0xFF,
	}
}
