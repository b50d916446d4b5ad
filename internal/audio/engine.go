package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ytget/cache-browser/internal/model"
	"github.com/ytget/cache-browser/internal/playback"
)

// OutputSampleRate is the speaker rate every stream is resampled to
const OutputSampleRate beep.SampleRate = 44100

const (
	outputBuffer    = 100 * time.Millisecond
	resampleQuality = 4
)

// Engine opens beep sessions on the shared speaker
type Engine struct {
	initOnce sync.Once
	initErr  error
}

// NewEngine creates an engine. The speaker is initialised on first Open.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) init() error {
	e.initOnce.Do(func() {
		if err := speaker.Init(OutputSampleRate, OutputSampleRate.N(outputBuffer)); err != nil {
			e.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	return e.initErr
}

// Open decodes path and prepares a paused session
func (e *Engine) Open(path string) (playback.Session, error) {
	if err := e.init(); err != nil {
		return nil, err
	}

	stream, format, err := Decode(path)
	if err != nil {
		return nil, err
	}

	var source beep.Streamer = stream
	if format.SampleRate != OutputSampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, OutputSampleRate, stream)
	}
	volume := &effects.Volume{Streamer: source, Base: 2}

	return &Session{
		stream: stream,
		volume: volume,
		ctrl:   &beep.Ctrl{Streamer: volume},
	}, nil
}

// Session is one decoded file routed to the speaker
type Session struct {
	stream beep.StreamSeekCloser
	volume *effects.Volume
	ctrl   *beep.Ctrl

	started   atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Play starts output; onDone runs on the speaker goroutine when the stream
// ends, unless the session was closed first
func (s *Session) Play(onDone func()) error {
	if s.closed.Load() {
		return fmt.Errorf("session closed")
	}
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("session already started")
	}

	speaker.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		if !s.closed.Load() && onDone != nil {
			onDone()
		}
	})))
	return nil
}

// SetVolume maps v in [0, 1] onto the base-2 gain of effects.Volume
func (s *Session) SetVolume(v float64) {
	v = model.ClampVolume(v)

	speaker.Lock()
	defer speaker.Unlock()
	if v == 0 {
		s.volume.Silent = true
		return
	}
	s.volume.Silent = false
	s.volume.Volume = math.Log2(v)
}

// Close detaches the stream from the speaker and closes the file
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)

		speaker.Lock()
		s.ctrl.Streamer = nil
		speaker.Unlock()

		s.closeErr = s.stream.Close()
	})
	return s.closeErr
}
