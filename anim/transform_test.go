package anim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuriken/raster"
)

func TestScaleStaysInRange(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	tr := NewTransform()
	for i := 0; i < 10000; i++ {
		dt := rnd.Float64() * 3
		if i%97 == 0 {
			dt = 40
		}
		tr = tr.Advance(dt)
		require.GreaterOrEqual(t, tr.Scale, ScaleMin, "frame %d", i)
		require.LessOrEqual(t, tr.Scale, ScaleMax, "frame %d", i)
	}
}

func TestScaleReversesAtBounds(t *testing.T) {
	tr := Transform{Scale: 0.59, ScaleDir: 1}
	tr = tr.Advance(1) // +0.05
	assert.Equal(t, ScaleMax, tr.Scale)
	assert.Equal(t, -1.0, tr.ScaleDir)

	tr = Transform{Scale: 0.31, ScaleDir: -1}
	tr = tr.Advance(1)
	assert.Equal(t, ScaleMin, tr.Scale)
	assert.Equal(t, 1.0, tr.ScaleDir)
}

func TestAngleWrapsToZero(t *testing.T) {
	tr := Transform{Angle: 359, Scale: 0.5, ScaleDir: 1}
	tr = tr.Advance(0.4) // +1.0
	assert.Equal(t, 360.0, tr.Angle, "360 itself does not wrap")

	tr = tr.Advance(0.4)
	assert.Equal(t, 0.0, tr.Angle, "reset, not carried over")
}

func TestAdvanceIgnoresNegativeDelta(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, tr, tr.Advance(-5))
}

func TestTransformMatrixOrder(t *testing.T) {
	tr := Transform{Angle: 900, Scale: 0.5} // 90 degrees after the /10
	p := tr.Matrix().Apply(raster.V3(1, 0, 0))

	// translate (-1,0,0) -> (0,0,0), scale -> (0,0,0), rotate -> (0,0,0)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)

	p = tr.Matrix().Apply(raster.V3(3, 0, 0))
	// (2,0) -> (1,0) -> (0,1)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)
}

func TestStarMatrixHalvesDomain(t *testing.T) {
	p := StarMatrix().Apply(raster.V3(2, -2, 0))
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, -1, p.Y, 1e-6)
	assert.Equal(t, float32(0), p.Z)
}
