package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// HeadlessOptions configure the no-window runner.
type HeadlessOptions struct {
	Options
	Hz     int
	Frames uint64 // 0 = run until ctx is done
	// DigestEvery logs a framebuffer digest every N frames (0 = only at exit).
	DigestEvery uint64
}

// HeadlessResult summarizes a headless run.
type HeadlessResult struct {
	Frames uint64
	Digest uint64 // xxhash of the last presented frame
}

// RunHeadless runs the animation without opening a window.
func RunHeadless(ctx context.Context, opts HeadlessOptions, newApp NewAppFunc) (HeadlessResult, error) {
	if opts.Hz <= 0 {
		opts.Hz = 60
	}
	d := time.Second / time.Duration(opts.Hz)
	if d <= 0 {
		return HeadlessResult{}, fmt.Errorf("invalid headless hz: %d", opts.Hz)
	}

	h := newHost(opts.Options)
	defer h.close()
	step, err := newApp(h)
	if err != nil {
		return HeadlessResult{}, err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var res HeadlessResult
	finish := func() HeadlessResult {
		res.Digest = FrameDigest(h.fb.presented())
		h.log.Info("headless run finished",
			zap.Uint64("frames", res.Frames),
			zap.String("digest", fmt.Sprintf("%016x", res.Digest)),
		)
		return res
	}

	for {
		select {
		case <-ctx.Done():
			return finish(), nil
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return finish(), nil
					}
					return res, err
				}
			}
			res.Frames++
			if opts.DigestEvery > 0 && res.Frames%opts.DigestEvery == 0 {
				h.log.Debug("frame digest",
					zap.Uint64("frame", res.Frames),
					zap.String("digest", fmt.Sprintf("%016x", FrameDigest(h.fb.presented()))),
				)
			}
			if opts.Frames > 0 && res.Frames >= opts.Frames {
				return finish(), nil
			}
		}
	}
}

// FrameDigest hashes raw framebuffer bytes, for comparing runs.
func FrameDigest(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}
