package anim

import (
	"math"

	"shuriken/raster"
)

// Logo transform constants.
const (
	RotationSpeed = 5.0 // degrees per second, halved on integration
	ScaleSpeed    = 5.0
	ScaleMin      = 0.3
	ScaleMax      = 0.6

	// StarScale is the fixed uniform scale of the star.
	StarScale = 0.5
)

// Transform is the logo's rotation and breathing scale.
type Transform struct {
	Angle    float64 // degrees, wraps to 0 past 360
	Scale    float64
	ScaleDir float64
}

// NewTransform returns the logo transform at rest.
func NewTransform() Transform {
	return Transform{Scale: 0.5, ScaleDir: 1}
}

// Advance integrates dt seconds of rotation and scaling.
func (t Transform) Advance(dt float64) Transform {
	if dt < 0 {
		dt = 0
	}

	t.Angle += RotationSpeed * dt / 2
	if t.Angle > 360.0 {
		t.Angle = 0
	}

	t.Scale += t.ScaleDir * ScaleSpeed * dt / 100
	if t.Scale >= ScaleMax {
		t.Scale = ScaleMax
		t.ScaleDir = -1
	} else if t.Scale <= ScaleMin {
		t.Scale = ScaleMin
		t.ScaleDir = 1
	}
	return t
}

// Matrix composes identity, Z rotation, uniform scale and a fixed translation, in
// that order.
func (t Transform) Matrix() raster.Mat4 {
	rad := raster.Scalar(t.Angle / 10 * math.Pi / 180)
	s := raster.Scalar(t.Scale)

	m := raster.Mat4Identity()
	m = raster.Mat4Mul(m, raster.Mat4RotateZ(rad))
	m = raster.Mat4Mul(m, raster.Mat4Scale(raster.V3(s, s, s)))
	m = raster.Mat4Mul(m, raster.Mat4Translate(raster.V3(-1, 0, 0)))
	return m
}

// StarMatrix is the fixed model-view matrix of the star.
func StarMatrix() raster.Mat4 {
	return raster.Mat4Scale(raster.V3(StarScale, StarScale, StarScale))
}
