package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"shuriken/anim"
	"shuriken/hal"
)

var hudFont tinyfont.Fonter = &tinyfont.TomThumb

var (
	hudFG      = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudDim     = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
	hudAlert   = color.RGBA{R: 0xFF, G: 0xC0, B: 0x40, A: 0xFF}
	hudLineGap = int16(8)
)

func (a *App) drawHUD() {
	d := &fbDisplayer{fb: a.fb}
	s := a.state

	y := int16(2)
	a.drawText(d, 3, y, fmt.Sprintf("%s  frame %d", s.Mode, s.Frame), hudFG)
	y += hudLineGap
	if s.Mode == anim.ModeStar {
		c := hudDim
		if s.Bouncer.Collided {
			c = hudAlert
		}
		a.drawText(d, 3, y, fmt.Sprintf("hits %d  collided %t", a.hits, s.Bouncer.Collided), c)
	} else {
		a.drawText(d, 3, y, fmt.Sprintf("angle %.1f  scale %.3f", s.Transform.Angle, s.Transform.Scale), hudDim)
	}
	y += hudLineGap
	if a.paused {
		a.drawText(d, 3, y, "paused  space resume", hudAlert)
	} else {
		a.drawText(d, 3, y, "space pause  q/esc quit", hudDim)
	}
}

// drawText writes one line with its top edge at y.
func (a *App) drawText(d drivers.Displayer, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, hudFont, x, y+int16(hudFont.GetYAdvance())-1, s, c)
}

// fbDisplayer lets tinyfont draw straight into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
