package hal

import (
	"time"

	"go.uber.org/zap"
)

type hostHAL struct {
	fb    *hostFramebuffer
	kbd   *hostKeyboard
	clock *hostClock
	aud   Audio
	log   *zap.Logger
}

func newHost(opts Options) *hostHAL {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &hostHAL{
		fb:    newHostFramebuffer(opts.Width, opts.Height),
		kbd:   newHostKeyboard(),
		clock: newHostClock(),
		log:   log,
	}
}

func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock        { return h.clock }
func (h *hostHAL) Audio() Audio        { return h.aud }
func (h *hostHAL) Logger() *zap.Logger { return h.log }

func (h *hostHAL) close() {
	if h.aud == nil {
		return
	}
	if err := h.aud.Close(); err != nil {
		h.log.Warn("close audio", zap.Error(err))
	}
	h.aud = nil
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock { return &hostClock{start: time.Now()} }

// NowMillis uses the monotonic clock reading carried by time.Now.
func (c *hostClock) NowMillis() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000
}
