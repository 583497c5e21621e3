package anim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarColorsAtRest(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	got := StarColors(nil, 18, false, rnd)
	require.Len(t, got, 18*4)

	want := []float32{float32(184.0 / 255), float32(146.0 / 255), float32(106.0 / 255), 1}
	for i := 0; i < 18; i++ {
		assert.Equal(t, want, got[i*4:i*4+4], "vertex %d", i)
	}
}

func TestStarColorsCollided(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	first := append([]float32(nil), StarColors(nil, 18, true, rnd)...)
	second := StarColors(nil, 18, true, rnd)

	center := []float32{float32(45.0 / 255), float32(45.0 / 255), float32(43.0 / 255), 1}
	for i := 0; i < 18; i++ {
		c := second[i*4 : i*4+4]
		assert.Equal(t, float32(1), c[3], "alpha of vertex %d", i)
		for _, ch := range c[:3] {
			assert.GreaterOrEqual(t, ch, float32(0))
			assert.LessOrEqual(t, ch, float32(1))
		}
		if i >= StarOuterVertices {
			assert.Equal(t, center, c, "center vertex %d", i)
		}
	}
	assert.NotEqual(t, first[:StarOuterVertices*4], second[:StarOuterVertices*4], "outer colors re-roll every frame")
	assert.NotEqual(t, center, second[:4])
}

func TestStarColorsReusesBuffer(t *testing.T) {
	buf := make([]float32, 0, 18*4)
	out := StarColors(buf, 18, false, nil)
	assert.Equal(t, &buf[:1][0], &out[0])
}

func TestLogoColors(t *testing.T) {
	got := LogoColors(nil, 42)
	require.Len(t, got, 42*4)
	for i := 0; i < 42; i++ {
		assert.Equal(t, LogoColor[:], got[i*4:i*4+4])
	}
}
