// Package app drives the animation: one step per surface refresh advances the
// simulation, uploads the vertex buffers, rasterizes and presents the frame.
package app

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"shuriken/anim"
	"shuriken/hal"
	"shuriken/raster"
)

// ErrQuit is returned from Step when the user asked to leave.
var ErrQuit = hal.ErrQuit

var errNoFramebuffer = errors.New("app: no RGB565 framebuffer")

type Config struct {
	Mode anim.Mode
	// Seed for the random source; 0 picks one.
	Seed  uint64
	HUD   bool
	Chime bool
}

// App owns the animation state and the persistent draw buffers.
type App struct {
	cfg Config

	fb    hal.Framebuffer
	kbd   hal.Keyboard
	clock hal.Clock
	aud   hal.Audio
	log   *zap.Logger

	rnd    *rand.Rand
	state  anim.State
	r      *raster.Renderer
	batch  raster.Batch
	target raster.RGB565Target

	paused bool
	hits   uint64
}

// New validates the surface and buffers and builds the initial state. Any error is
// fatal to startup.
func New(h hal.HAL, cfg Config) (*App, error) {
	a := &App{cfg: cfg, log: h.Logger()}
	if a.log == nil {
		a.log = zap.NewNop()
	}

	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if a.fb == nil || a.fb.Format() != hal.PixelFormatRGB565 {
		return nil, errNoFramebuffer
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	a.clock = h.Clock()
	if cfg.Chime {
		a.aud = h.Audio()
	}

	r, err := raster.NewRenderer(a.fb.Width(), a.fb.Height())
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	a.r = r

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	a.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	a.state = anim.NewState(cfg.Mode, a.rnd)
	a.r.ClearColor = a.state.ClearColor()

	n := len(a.state.Shape)
	a.batch = raster.Batch{
		Positions: make([]float32, n*raster.PositionSize),
		Colors:    make([]float32, n*raster.ColorSize),
	}
	a.upload()
	if err := a.batch.Validate(); err != nil {
		return nil, fmt.Errorf("vertex buffers: %w", err)
	}

	a.log.Info("animation ready",
		zap.Stringer("mode", cfg.Mode),
		zap.Uint64("seed", seed),
		zap.Int("vertices", n),
		zap.Bool("chime", a.aud != nil),
	)
	return a, nil
}

// Step runs one frame. It returns ErrQuit when the user quits.
func (a *App) Step() (err error) {
	defer a.recoverFrame(&err)

	if a.handleInput() {
		a.log.Info("quit", zap.Uint64("frame", a.state.Frame), zap.Uint64("hits", a.hits))
		return ErrQuit
	}

	var now float64
	if a.clock != nil {
		now = a.clock.NowMillis()
	}
	if a.paused {
		// Keep the timestamp current so resuming does not jump.
		a.state.LastMillis = now
	} else {
		a.advance(now)
	}

	a.render()
	return a.fb.Present()
}

func (a *App) advance(now float64) {
	prev := a.state
	a.state = a.state.Step(now, a.rnd)
	a.upload()

	hit := a.state.LastHit
	if !hit.Any() {
		return
	}
	a.hits++
	if a.aud != nil {
		a.aud.Play(newChime(a.aud.SampleRate(), hit))
	}
	if a.state.Bouncer.Collided != prev.Bouncer.Collided {
		a.log.Debug("collision flag toggled",
			zap.Uint64("frame", a.state.Frame),
			zap.Bool("collided", a.state.Bouncer.Collided),
			zap.Stringer("x", hit.X),
			zap.Stringer("y", hit.Y),
		)
	}
}

// upload overwrites the persistent buffers with the current state.
func (a *App) upload() {
	for i, v := range a.state.Shape {
		p := a.batch.Positions[i*raster.PositionSize:]
		p[0], p[1], p[2] = float32(v.X), float32(v.Y), float32(v.Z)
	}
	copy(a.batch.Colors, a.state.Colors)
	a.batch.ModelView = a.state.ModelView()
}

func (a *App) render() {
	a.target = raster.RGB565Target{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      a.fb.Width(),
		H:      a.fb.Height(),
	}
	a.r.Draw(&a.target, &a.batch)
	if a.cfg.HUD {
		a.drawHUD()
	}
}

// handleInput drains pending key events and reports whether to quit.
func (a *App) handleInput() bool {
	if a.kbd == nil {
		return false
	}
	for {
		select {
		case ev := <-a.kbd.Events():
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
				return true
			case ev.Code == hal.KeySpace:
				a.paused = !a.paused
				a.log.Info("pause toggled", zap.Bool("paused", a.paused))
			}
		default:
			return false
		}
	}
}

// State returns the current animation state.
func (a *App) State() anim.State { return a.state }

// Batch returns the buffers of the last drawn frame. The slices are reused on the
// next step.
func (a *App) Batch() *raster.Batch { return &a.batch }

// Paused reports whether the animation is frozen.
func (a *App) Paused() bool { return a.paused }

// Hits is the number of frames with at least one boundary hit.
func (a *App) Hits() uint64 { return a.hits }
