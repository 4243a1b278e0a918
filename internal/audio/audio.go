// Package audio plays the procedural chime that accompanies a click burst.
package audio

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// maxVoices limits overlapping chimes so rapid clicking does not clip.
const maxVoices = 3

// System owns the oto context. A nil *System is valid and silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices atomic.Int32
	seq    atomic.Uint64
}

// Init opens the audio device.
func Init(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1)}, nil
}

// PlayBurst plays one chime. pan runs from -1 (left) to 1 (right).
func (s *System) PlayBurst(pan float64) {
	if s == nil || s.volume <= 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if s.voices.Add(1) > maxVoices {
		s.voices.Add(-1)
		return
	}
	samples := GenChime(s.seq.Add(1), pan)
	go func() {
		defer s.voices.Add(-1)
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
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
