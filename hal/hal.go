// Package hal hosts the animation on a render surface: a desktop window, a
// terminal, or no display at all. The surface owns the frame schedule and calls the
// application's step function once per refresh.
package hal

import (
	"errors"

	"github.com/gopxl/beep"
	"go.uber.org/zap"
)

// ErrQuit is returned by a step function to end the run normally.
var ErrQuit = errors.New("quit requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeySpace
	KeyEnter
)

// KeyEvent is a keyboard event. Printable keys arrive with KeyUnknown and a Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each surface).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// Clock is the frame timestamp source, in milliseconds since the surface started.
// Successive readings never decrease.
type Clock interface {
	NowMillis() float64
}

// Audio plays short sounds mixed over each other.
type Audio interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Close() error
}

// HAL is the application's only contact point with the surface.
type HAL interface {
	Display() Display
	Input() Input
	Clock() Clock
	// Audio returns nil when sound is unavailable or disabled.
	Audio() Audio
	Logger() *zap.Logger
}

// NewAppFunc builds the application against a HAL and returns its per-frame step.
// An error here is fatal to startup.
type NewAppFunc func(HAL) (step func() error, err error)

// Options are shared by every surface.
type Options struct {
	Width  int
	Height int
	Audio  bool
	Log    *zap.Logger
}
