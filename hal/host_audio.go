//go:build cgo

package hal

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const hostSampleRate = beep.SampleRate(44100)

// ebitenAudio feeds a beep mixer into one long-running ebiten audio player.
type ebitenAudio struct {
	mu     sync.Mutex
	mix    beep.Mixer
	player *audio.Player
}

func newEbitenAudio() (*ebitenAudio, error) {
	a := &ebitenAudio{}
	ctx := audio.NewContext(int(hostSampleRate))
	p, err := ctx.NewPlayer(&mixerReader{a: a})
	if err != nil {
		return nil, err
	}
	p.SetBufferSize(100 * time.Millisecond)
	p.Play()
	a.player = p
	return a, nil
}

func (a *ebitenAudio) SampleRate() beep.SampleRate { return hostSampleRate }

func (a *ebitenAudio) Play(s beep.Streamer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mix.Add(s)
}

func (a *ebitenAudio) Close() error {
	a.mu.Lock()
	a.mix.Clear()
	p := a.player
	a.player = nil
	a.mu.Unlock()
	if p != nil {
		return p.Close()
	}
	return nil
}

// mixerReader renders the mixer as 16-bit little-endian stereo, the format ebiten
// players expect. An empty mixer streams silence.
type mixerReader struct {
	a   *ebitenAudio
	buf [][2]float64
}

func (r *mixerReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([][2]float64, n)
	}
	buf := r.buf[:n]

	r.a.mu.Lock()
	r.a.mix.Stream(buf)
	r.a.mu.Unlock()

	for i, s := range buf {
		l, rr := pcm16(s[0]), pcm16(s[1])
		p[i*4+0] = byte(l)
		p[i*4+1] = byte(l >> 8)
		p[i*4+2] = byte(rr)
		p[i*4+3] = byte(rr >> 8)
	}
	return n * 4, nil
}

func pcm16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}

// speakerAudio plays through beep's own speaker, used where no ebiten loop runs.
type speakerAudio struct{}

func newSpeakerAudio() (speakerAudio, error) {
	if err := speaker.Init(hostSampleRate, hostSampleRate.N(time.Second/10)); err != nil {
		return speakerAudio{}, err
	}
	return speakerAudio{}, nil
}

func (speakerAudio) SampleRate() beep.SampleRate { return hostSampleRate }
func (speakerAudio) Play(s beep.Streamer)        { speaker.Play(s) }

func (speakerAudio) Close() error {
	speaker.Close()
	return nil
}
