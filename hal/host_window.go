//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"shuriken/internal/buildinfo"
)

// WindowOptions configure the desktop window surface.
type WindowOptions struct {
	Options
	Scale int
	TPS   int
}

// RunWindow opens a desktop window that displays the framebuffer and forwards
// keyboard input. It blocks until the window closes or the step returns ErrQuit.
func RunWindow(opts WindowOptions, newApp NewAppFunc) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	h := newHost(opts.Options)
	defer h.close()
	if opts.Audio {
		aud, err := newEbitenAudio()
		if err != nil {
			// Non-fatal, the animation runs silent.
			h.log.Warn("audio unavailable", zap.Error(err))
		} else {
			h.aud = aud
		}
	}

	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Shuriken (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*opts.Scale, h.fb.height*opts.Scale)
	ebiten.SetTPS(opts.TPS)
	h.log.Info("window surface started",
		zap.Int("width", h.fb.width),
		zap.Int("height", h.fb.height),
		zap.Int("tps", opts.TPS),
	)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
