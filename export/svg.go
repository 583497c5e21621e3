// Package export writes a drawn frame as an SVG document.
package export

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"shuriken/raster"
)

// Frame is everything needed to reproduce one drawn frame.
type Frame struct {
	Width, Height int
	Background    raster.Color
	Batch         *raster.Batch
	Title         string
}

// WriteSVG emits one polygon per triangle, transformed by the batch's model-view
// matrix and filled with the average of its vertex colors.
func WriteSVG(w io.Writer, f Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", raster.ErrViewport, f.Width, f.Height)
	}
	if err := f.Batch.Validate(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(f.Width, f.Height)
	if f.Title != "" {
		canvas.Title(f.Title)
	}
	bg := f.Background
	canvas.Rect(0, 0, f.Width, f.Height, canvas.RGB(int(bg.R), int(bg.G), int(bg.B)))

	b := f.Batch
	mv := b.ModelView
	if mv == (raster.Mat4{}) {
		mv = raster.Mat4Identity()
	}
	xs, ys := make([]int, 3), make([]int, 3)
	for i := 0; i+2 < b.Count(); i += 3 {
		var r, g, bl float32
		for k := 0; k < 3; k++ {
			p := b.Positions[(i+k)*raster.PositionSize:]
			c := b.Colors[(i+k)*raster.ColorSize:]
			xs[k], ys[k] = raster.NDCToScreen(mv.Apply(raster.V3(p[0], p[1], p[2])), f.Width, f.Height)
			r += c[0]
			g += c[1]
			bl += c[2]
		}
		fill := raster.ColorFromFloat(r/3, g/3, bl/3, 1)
		canvas.Polygon(xs, ys, canvas.RGB(int(fill.R), int(fill.G), int(fill.B)))
	}
	canvas.End()
	return ew.err
}

// WriteFile writes the SVG to path, replacing any existing file.
func WriteFile(path string, f Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if err := WriteSVG(out, f); err != nil {
		_ = out.Close()
		return fmt.Errorf("svg %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("svg %s: %w", path, err)
	}
	return nil
}

// errWriter keeps the first write error; svgo itself drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
