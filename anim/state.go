package anim

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"shuriken/raster"
)

// Mode selects the shape and its animation.
type Mode uint8

const (
	ModeStar Mode = iota
	ModeLogo
)

func (m Mode) String() string {
	switch m {
	case ModeLogo:
		return "logo"
	default:
		return "star"
	}
}

// ParseMode accepts "star" or "logo" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "star", "shuriken":
		return ModeStar, nil
	case "logo", "i":
		return ModeLogo, nil
	default:
		return ModeStar, fmt.Errorf("unknown mode %q", s)
	}
}

// State is the whole animation: one value in, one value out per frame.
type State struct {
	Mode Mode

	Shape  Shape
	Colors []float32 // normalized RGBA, one per vertex

	Bouncer   Bouncer
	LastHit   Hit
	Wave      Wave
	Transform Transform

	Frame      uint64
	LastMillis float64
	started    bool
}

// NewState builds the initial state for a mode. Star travel signs are drawn from rnd.
func NewState(mode Mode, rnd *rand.Rand) State {
	s := State{
		Mode:      mode,
		Wave:      NewWave(),
		Transform: NewTransform(),
	}
	switch mode {
	case ModeLogo:
		s.Shape = LogoShape()
		s.Colors = LogoColors(nil, len(s.Shape))
	default:
		s.Shape = StarShape()
		s.Bouncer = Bouncer{SignX: randomSign(rnd), SignY: randomSign(rnd)}
		s.Colors = StarColors(nil, len(s.Shape), false, rnd)
	}
	return s
}

func randomSign(rnd *rand.Rand) float64 {
	if rnd.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Step advances one frame at timestamp nowMillis and returns the new state. The
// receiver's slices are left untouched.
func (s State) Step(nowMillis float64, rnd *rand.Rand) State {
	next := s
	next.Frame++
	next.LastMillis = nowMillis
	next.started = true

	var dt float64
	if s.started {
		dt = (nowMillis - s.LastMillis) / 1000
	}

	switch s.Mode {
	case ModeLogo:
		next.Transform = s.Transform.Advance(dt)
		next.Shape, next.Wave = s.Wave.Step(s.Shape)
		next.LastHit = Hit{}

	default:
		next.Shape, next.Bouncer, next.LastHit = s.Bouncer.Step(s.Shape)
		if next.Bouncer.Collided || next.Bouncer.Collided != s.Bouncer.Collided {
			next.Colors = StarColors(nil, len(next.Shape), next.Bouncer.Collided, rnd)
		}
	}
	return next
}

// ModelView returns the transform for the current frame.
func (s State) ModelView() raster.Mat4 {
	if s.Mode == ModeLogo {
		return s.Transform.Matrix()
	}
	return StarMatrix()
}

// ClearColor is the background for the mode.
func (s State) ClearColor() raster.Color {
	if s.Mode == ModeLogo {
		return raster.ColorFromFloat(0.074, 0.1607, 0.294, 1)
	}
	return raster.RGB(0, 0, 0)
}
