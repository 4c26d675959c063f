//go:build sound

package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

// otoPlayer mixes sounds through the system audio device.
type otoPlayer struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[string][]byte
}

// New opens the audio device. If that fails the error is logged and a
// silent player is returned.
func New(logger *log.Logger) Player {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Silent{}
	}
	return &otoPlayer{ctx: ctx, ready: ready, volume: 0.6, cache: make(map[string][]byte)}
}

// Play starts the sound on its own goroutine. Sounds requested before the
// device is ready are dropped.
func (p *otoPlayer) Play(id string) {
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.samples(id)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

func (p *otoPlayer) samples(id string) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.cache[id]; ok {
		return s
	}
	s := Synthesize(id)
	p.cache[id] = s
	return s
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
