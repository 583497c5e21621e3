package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// TerminalOptions configure the terminal surface.
type TerminalOptions struct {
	Options
	TPS int
}

// RunTerminal draws the framebuffer into the terminal with half-block cells: each
// cell shows two vertically stacked pixels. Esc and Ctrl-C quit.
func RunTerminal(ctx context.Context, opts TerminalOptions, newApp NewAppFunc) error {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	h := newHost(opts.Options)
	defer h.close()
	if opts.Audio {
		aud, err := newSpeakerAudio()
		if err != nil {
			h.log.Warn("audio unavailable", zap.Error(err))
		} else {
			h.aud = aud
		}
	}

	step, err := newApp(h)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
	defer ticker.Stop()

	cols, rows := screen.Size()
	h.log.Info("terminal surface started", zap.Int("cols", cols), zap.Int("rows", rows))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if kev, ok := translateKey(ev); ok {
					h.kbd.push(kev)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			blitHalfBlocks(screen, h.fb)
			screen.Show()
		}
	}
}

func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return KeyEvent{Code: KeySpace, Press: true}, true
		}
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	}
	return KeyEvent{}, false
}

// cellSetter is the part of tcell.Screen the blitter needs.
type cellSetter interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// blitHalfBlocks scales the presented frame to the terminal with nearest sampling.
func blitHalfBlocks(s cellSetter, fb *hostFramebuffer) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	frame := fb.presented()
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * fb.height / (2 * rows)
		bottom := (2*cy + 1) * fb.height / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			x := cx * fb.width / cols
			tr, tg, tb := pixelAt(frame, fb.width, x, top)
			br, bg, bb := pixelAt(frame, fb.width, x, bottom)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			s.SetContent(cx, cy, '▀', nil, style)
		}
	}
}
