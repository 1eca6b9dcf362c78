package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Engine plays samples through the system speaker.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewEngine creates an engine. Call Init before playing.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the background track.
func (e *Engine) Init(music bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	e.music = &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sampleRate), 0.4), Paused: !music}
	e.mixer.Add(e.music)
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}

// Play starts a sample and returns its handle.
func (e *Engine) Play(s Sample, frequency, volume float64) Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return silentHandle{}
	}

	h := newHandle(Shape(s, frequency, volume))
	speaker.Lock()
	e.mixer.Add(h.ctrl)
	speaker.Unlock()
	return h
}

// ToggleMusic pauses or resumes the background track.
func (e *Engine) ToggleMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music == nil {
		return
	}
	speaker.Lock()
	e.music.Paused = !e.music.Paused
	speaker.Unlock()
}

// MusicPlaying reports whether the background track is audible.
func (e *Engine) MusicPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !e.music.Paused
}

// Shape builds the streamer for a sample played at the given pitch and gain.
func Shape(s Sample, frequency, volume float64) beep.Streamer {
	if frequency <= 0 {
		frequency = 1
	}
	var src beep.Streamer = Generate(s, sampleRate)
	if frequency != 1 {
		src = beep.ResampleRatio(4, frequency, src)
	}
	return newVolume(src, volume)
}

// handle tracks one sample inside the mixer. The done flag is set from
// the speaker goroutine when the sample runs out.
type handle struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

func newHandle(s beep.Streamer) *handle {
	h := &handle{}
	h.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(s, beep.Callback(func() { h.done.Store(true) })),
	}
	return h
}

func (h *handle) Playing() bool {
	if h.done.Load() {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !h.ctrl.Paused
}

func (h *handle) Paused() bool {
	if h.done.Load() {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return h.ctrl.Paused
}

func (h *handle) Pause() {
	speaker.Lock()
	h.ctrl.Paused = true
	speaker.Unlock()
}

func (h *handle) Resume() {
	speaker.Lock()
	h.ctrl.Paused = false
	speaker.Unlock()
}

// newVolume applies a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
