package anim

import "math"

// Wave drives the logo wobble: a phase that ping-pongs in [-1, 1] in steps of 1/100.
type Wave struct {
	Phase float64
	Dir   float64
}

// NewWave returns the wobble at its starting phase.
func NewWave() Wave { return Wave{Phase: 0.01, Dir: 1} }

// Step advances the phase and offsets every vertex by dir·sin(phase)/100 on X and
// dir·cos(phase)/150 on Y. The input shape is not modified.
func (w Wave) Step(shape Shape) (Shape, Wave) {
	w.Phase += w.Dir / 100
	if w.Phase >= 1 {
		w.Dir = -1
	} else if w.Phase <= -1 {
		w.Dir = 1
	}

	dx := w.Dir * math.Sin(w.Phase) / 100
	dy := w.Dir * math.Cos(w.Phase) / 150

	out := make(Shape, len(shape))
	for i, v := range shape {
		out[i] = Vertex{X: v.X + dx, Y: v.Y + dy, Z: v.Z}
	}
	return out, w
}
