package raster

import (
	"errors"
	"fmt"
)

var (
	ErrViewport     = errors.New("raster: empty viewport")
	ErrBufferLayout = errors.New("raster: buffer layout mismatch")
)

const (
	// PositionSize is the number of floats per vertex in Batch.Positions.
	PositionSize = 3
	// ColorSize is the number of floats per vertex in Batch.Colors.
	ColorSize = 4
)

// Batch is one triangle-list draw call: parallel position and color buffers plus the
// per-object model-view matrix.
type Batch struct {
	Positions []float32
	Colors    []float32
	ModelView Mat4
}

// Count returns the number of vertices in the batch.
func (b *Batch) Count() int {
	if b == nil {
		return 0
	}
	return len(b.Positions) / PositionSize
}

// Validate checks that the buffers describe whole triangles with one color per vertex.
func (b *Batch) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil batch", ErrBufferLayout)
	}
	if len(b.Positions)%PositionSize != 0 {
		return fmt.Errorf("%w: %d position floats is not a multiple of %d", ErrBufferLayout, len(b.Positions), PositionSize)
	}
	n := len(b.Positions) / PositionSize
	if n%3 != 0 {
		return fmt.Errorf("%w: %d vertices do not form whole triangles", ErrBufferLayout, n)
	}
	if len(b.Colors) != n*ColorSize {
		return fmt.Errorf("%w: %d color floats for %d vertices", ErrBufferLayout, len(b.Colors), n)
	}
	return nil
}

// Renderer draws batches into a fixed-size viewport.
//
// Create it once and reuse it; Draw does not allocate.
type Renderer struct {
	ClearColor Color

	w int
	h int
}

// NewRenderer creates a renderer for a w×h viewport.
func NewRenderer(w, h int) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrViewport, w, h)
	}
	return &Renderer{ClearColor: RGB(0, 0, 0), w: w, h: h}, nil
}

// Viewport returns the viewport size in pixels.
func (r *Renderer) Viewport() (w, h int) { return r.w, r.h }

// Draw clears the target and rasterizes every triangle of the batch.
//
// Malformed batches are skipped; call Batch.Validate once when the buffers are built.
func (r *Renderer) Draw(t Target, b *Batch) {
	if r == nil || t == nil {
		return
	}
	t.Clear(r.ClearColor)
	if b.Validate() != nil {
		return
	}

	tw, th := t.Size()
	w, h := min(r.w, tw), min(r.h, th)
	if w <= 0 || h <= 0 {
		return
	}

	mv := b.ModelView
	if mv == (Mat4{}) {
		mv = Mat4Identity()
	}

	n := b.Count()
	for i := 0; i+2 < n; i += 3 {
		v0 := r.project(mv, b, i)
		v1 := r.project(mv, b, i+1)
		v2 := r.project(mv, b, i+2)
		fillTriangle(t, w, h, v0, v1, v2)
	}
}

type screenVertex struct {
	x, y    int
	r, g, b float32
}

func (r *Renderer) project(mv Mat4, b *Batch, i int) screenVertex {
	p := b.Positions[i*PositionSize : i*PositionSize+PositionSize]
	c := b.Colors[i*ColorSize : i*ColorSize+ColorSize]

	ndc := mv.Apply(V3(p[0], p[1], p[2]))
	x, y := NDCToScreen(ndc, r.w, r.h)
	return screenVertex{x: x, y: y, r: c[0], g: c[1], b: c[2]}
}

// NDCToScreen maps normalized device coordinates to pixel coordinates of a w×h
// viewport, y pointing down.
func NDCToScreen(p Vec3, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return roundF32(sx), roundF32(sy)
}

func roundF32(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func fillTriangle(t Target, w, h int, v0, v1, v2 screenVertex) {
	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// No culling: normalize winding so inside weights are non-negative.
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX, maxX := max(min(v0.x, v1.x, v2.x), 0), min(max(v0.x, v1.x, v2.x), w-1)
	minY, maxY := max(min(v0.y, v1.y, v2.y), 0), min(max(v0.y, v1.y, v2.y), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, x, y)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, x, y)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			t.SetPixel(x, y, ColorFromFloat(
				a0*v0.r+a1*v1.r+a2*v2.r,
				a0*v0.g+a1*v1.g+a2*v2.g,
				a0*v0.b+a1*v1.b+a2*v2.b,
				1,
			))
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
