package hal

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB565RoundTrip(t *testing.T) {
	r, g, b := rgb888From565(rgb565(255, 255, 255))
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	r, g, b = rgb888From565(rgb565(0, 0, 0))
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	p := rgb565(0xF8, 0, 0)
	assert.Equal(t, uint16(0xF800), p)
}

func TestFramebufferPresentSnapshots(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	require.Equal(t, 8, fb.StrideBytes())
	require.Len(t, fb.Buffer(), 16)

	fb.ClearRGB(255, 0, 0)
	assert.Equal(t, make([]byte, 16), fb.presented(), "nothing presented yet")

	require.NoError(t, fb.Present())
	shown := fb.presented()
	r, g, b := pixelAt(shown, 4, 3, 1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	// Drawing after Present does not leak into the shown frame.
	fb.ClearRGB(0, 0, 255)
	r, _, _ = pixelAt(fb.presented(), 4, 0, 0)
	assert.Equal(t, uint8(255), r)

	rgba := make([]byte, 4*2*4)
	fb.snapshotRGBA(rgba)
	assert.Equal(t, []byte{255, 0, 0, 255}, rgba[:4])
}

func TestPixelAtOutOfRange(t *testing.T) {
	r, g, b := pixelAt(make([]byte, 8), 2, 5, 5)
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestKeyboardDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch)+10; i++ {
		k.push(KeyEvent{Code: KeySpace, Press: true})
	}
	assert.Len(t, k.ch, cap(k.ch))
}

func TestClockMonotonic(t *testing.T) {
	c := newHostClock()
	a := c.NowMillis()
	b := c.NowMillis()
	assert.GreaterOrEqual(t, b, a)
	assert.GreaterOrEqual(t, a, 0.0)
}

// paintApp fills the framebuffer with a different gray every frame.
func paintApp(frames *int, quitAt int, fail error) NewAppFunc {
	return func(h HAL) (func() error, error) {
		fb := h.Display().Framebuffer()
		return func() error {
			*frames++
			if quitAt > 0 && *frames == quitAt {
				return ErrQuit
			}
			if fail != nil {
				return fail
			}
			v := uint8(*frames * 10)
			fb.ClearRGB(v, v, v)
			return fb.Present()
		}, nil
	}
}

func TestRunHeadlessStopsAfterFrames(t *testing.T) {
	var calls int
	res, err := RunHeadless(context.Background(), HeadlessOptions{
		Options:     Options{Width: 8, Height: 8},
		Hz:          1000,
		Frames:      5,
		DigestEvery: 2,
	}, paintApp(&calls, 0, nil))
	require.NoError(t, err)
	assert.EqualValues(t, 5, res.Frames)
	assert.Equal(t, 5, calls)

	want := newHostFramebuffer(8, 8)
	want.ClearRGB(50, 50, 50)
	assert.Equal(t, FrameDigest(want.Buffer()), res.Digest)
}

func TestRunHeadlessQuitIsNormalExit(t *testing.T) {
	var calls int
	res, err := RunHeadless(context.Background(), HeadlessOptions{
		Options: Options{Width: 4, Height: 4},
		Hz:      1000,
	}, paintApp(&calls, 3, nil))
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Frames)
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	_, err := RunHeadless(context.Background(), HeadlessOptions{
		Options: Options{Width: 4, Height: 4},
		Hz:      1000,
	}, paintApp(&calls, 0, boom))
	assert.ErrorIs(t, err, boom)
}

func TestRunHeadlessStartupError(t *testing.T) {
	boom := errors.New("no renderer")
	_, err := RunHeadless(context.Background(), HeadlessOptions{Hz: 1000}, func(HAL) (func() error, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int
	_, err := RunHeadless(ctx, HeadlessOptions{
		Options: Options{Width: 4, Height: 4},
		Hz:      1,
	}, paintApp(&calls, 0, nil))
	assert.NoError(t, err)
	assert.Zero(t, calls)
}

func TestFrameDigestDiffers(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 5}
	assert.NotEqual(t, FrameDigest(a), FrameDigest(b))
	assert.Equal(t, FrameDigest(a), FrameDigest([]byte{1, 2, 3, 4}))
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEvent{Code: KeyEscape, Press: true}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyEvent{Code: KeyEscape, Press: true}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyEvent{Code: KeySpace, Press: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyEvent{Press: true, Rune: 'q'}},
	}
	for _, c := range cases {
		got, ok := translateKey(c.ev)
		require.True(t, ok)
		assert.Equal(t, c.want, got)
	}

	_, ok := translateKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestBlitHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(2, 1)

	// 2x2 frame: top row red, bottom row blue.
	fb := newHostFramebuffer(2, 2)
	buf := fb.Buffer()
	red, blue := rgb565(255, 0, 0), rgb565(0, 0, 255)
	for x := 0; x < 2; x++ {
		buf[x*2], buf[x*2+1] = byte(red), byte(red>>8)
		buf[4+x*2], buf[4+x*2+1] = byte(blue), byte(blue>>8)
	}
	require.NoError(t, fb.Present())

	blitHalfBlocks(s, fb)

	mainc, _, style, _ := s.GetContent(1, 0)
	assert.Equal(t, '▀', mainc)
	fg, bg, _ := style.Decompose()
	r, g, b := fg.RGB()
	assert.Equal(t, [3]int32{255, 0, 0}, [3]int32{r, g, b})
	r, g, b = bg.RGB()
	assert.Equal(t, [3]int32{0, 0, 255}, [3]int32{r, g, b})
}
