package anim

import "math/rand/v2"

// RGB255 is a color with channels on the 0-255 scale.
type RGB255 struct {
	R, G, B float64
}

// Star palette.
var (
	StarRest   = RGB255{R: 184, G: 146, B: 106}
	StarCenter = RGB255{R: 45, G: 45, B: 43}
)

// LogoColor is the normalized RGBA of every logo vertex.
var LogoColor = [4]float32{0.91, 0.29, 0.15, 1.0}

// StarColors writes one normalized RGBA per vertex into dst and returns it, growing
// dst when it is too short.
//
// With the collision flag clear every vertex gets StarRest. With the flag set the
// outer vertices get a fresh random color on every call and the center keeps
// StarCenter.
func StarColors(dst []float32, vertices int, collided bool, rnd *rand.Rand) []float32 {
	dst = sized(dst, vertices*4)
	for i := 0; i < vertices; i++ {
		c := StarRest
		if collided {
			if i < StarOuterVertices {
				c = RGB255{R: rnd.Float64() * 255, G: rnd.Float64() * 255, B: rnd.Float64() * 255}
			} else {
				c = StarCenter
			}
		}
		c.put(dst[i*4:])
	}
	return dst
}

// LogoColors writes LogoColor for every vertex into dst and returns it.
func LogoColors(dst []float32, vertices int) []float32 {
	dst = sized(dst, vertices*4)
	for i := 0; i < vertices; i++ {
		copy(dst[i*4:], LogoColor[:])
	}
	return dst
}

func (c RGB255) put(dst []float32) {
	dst[0] = float32(c.R / 255)
	dst[1] = float32(c.G / 255)
	dst[2] = float32(c.B / 255)
	dst[3] = 1.0
}

func sized(dst []float32, n int) []float32 {
	if cap(dst) < n {
		return make([]float32, n)
	}
	return dst[:n]
}
