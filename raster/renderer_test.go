package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func solidColors(n int, r, g, b float32) []float32 {
	out := make([]float32, 0, n*ColorSize)
	for i := 0; i < n; i++ {
		out = append(out, r, g, b, 1)
	}
	return out
}

func TestNewRendererRejectsEmptyViewport(t *testing.T) {
	_, err := NewRenderer(0, 10)
	require.ErrorIs(t, err, ErrViewport)

	r, err := NewRenderer(4, 3)
	require.NoError(t, err)
	w, h := r.Viewport()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
}

func TestBatchValidate(t *testing.T) {
	tri := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}

	ok := &Batch{Positions: tri, Colors: solidColors(3, 1, 1, 1)}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, 3, ok.Count())

	ragged := &Batch{Positions: tri[:8], Colors: solidColors(3, 1, 1, 1)}
	assert.ErrorIs(t, ragged.Validate(), ErrBufferLayout)

	partial := &Batch{Positions: tri[:6], Colors: solidColors(2, 1, 1, 1)}
	assert.ErrorIs(t, partial.Validate(), ErrBufferLayout)

	short := &Batch{Positions: tri, Colors: solidColors(2, 1, 1, 1)}
	assert.ErrorIs(t, short.Validate(), ErrBufferLayout)
}

func TestDrawFillsBothWindings(t *testing.T) {
	const w, h = 32, 32
	r, err := NewRenderer(w, h)
	require.NoError(t, err)
	r.ClearColor = RGB(0, 0, 0xFF)

	// Two triangles covering the left half, opposite windings.
	b := &Batch{
		Positions: []float32{
			-1, -1, 0, 0, -1, 0, -1, 1, 0,
			0, -1, 0, -1, 1, 0, 0, 1, 0,
		},
		Colors: solidColors(6, 1, 0, 0),
	}
	target := newTarget(w, h)
	r.Draw(target, b)

	assert.Equal(t, RGB(0xFF, 0, 0), target.At(4, 4))
	assert.Equal(t, RGB(0xFF, 0, 0), target.At(10, 28))
	assert.Equal(t, RGB(0, 0, 0xFF), target.At(28, 16), "right half keeps the clear color")
}

func TestDrawAppliesModelView(t *testing.T) {
	const w, h = 32, 32
	r, err := NewRenderer(w, h)
	require.NoError(t, err)

	b := &Batch{
		Positions: []float32{-1, -1, 0, 0, -1, 0, -1, 1, 0},
		Colors:    solidColors(3, 0, 1, 0),
		ModelView: Mat4Translate(V3(1, 0, 0)),
	}
	target := newTarget(w, h)
	r.Draw(target, b)

	assert.Equal(t, RGB(0, 0, 0), target.At(2, 28), "moved out of the left half")
	assert.Equal(t, RGB(0, 0xFF, 0), target.At(18, 28))
}

func TestDrawSkipsMalformedBatch(t *testing.T) {
	r, err := NewRenderer(8, 8)
	require.NoError(t, err)
	r.ClearColor = RGB(0xFF, 0xFF, 0xFF)

	target := newTarget(8, 8)
	r.Draw(target, &Batch{Positions: []float32{0, 0, 0}, Colors: nil})
	assert.Equal(t, RGB(0xFF, 0xFF, 0xFF), target.At(3, 3))
}

func TestRGB565RoundTrip(t *testing.T) {
	assert.Equal(t, RGB(0xFF, 0xFF, 0xFF), UnpackRGB565(PackRGB565(RGB(0xFF, 0xFF, 0xFF))))
	assert.Equal(t, RGB(0, 0, 0), UnpackRGB565(PackRGB565(RGB(0, 0, 0))))
	assert.Equal(t, uint16(0xF800), PackRGB565(RGB(0xFF, 0, 0)))
}
