package app

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"shuriken/anim"
)

const (
	chimeLength = 120 * time.Millisecond
	chimeDecay  = 30.0
)

// chimeFreq picks a pitch per wall: left/right, top/bottom, corner.
func chimeFreq(hit anim.Hit) float64 {
	switch {
	case hit.X != anim.SideNone && hit.Y != anim.SideNone:
		return 1046.5
	case hit.X != anim.SideNone:
		return 659.3
	default:
		return 880
	}
}

// newChime builds a short decaying sine blip for a boundary hit.
func newChime(sr beep.SampleRate, hit anim.Hit) beep.Streamer {
	tone, err := generators.SineTone(sr, chimeFreq(hit))
	if err != nil {
		return beep.Silence(0)
	}
	env := &decay{s: tone, sr: sr, rate: chimeDecay}
	return beep.Take(sr.N(chimeLength), &effects.Volume{
		Streamer: env,
		Base:     2,
		Volume:   -2,
	})
}

// decay applies an exponential envelope to its source.
type decay struct {
	s    beep.Streamer
	sr   beep.SampleRate
	rate float64
	pos  int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.sr)
		env := math.Exp(-t * d.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }
