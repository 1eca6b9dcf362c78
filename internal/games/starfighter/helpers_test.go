package starfighter

import (
	"testing"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/audio"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/config"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

type play struct {
	sample    audio.Sample
	frequency float64
	volume    float64
}

type fakeHandle struct {
	playing bool
	paused  bool
}

func (h *fakeHandle) Playing() bool { return h.playing }
func (h *fakeHandle) Paused() bool  { return h.paused }
func (h *fakeHandle) Pause()        { h.playing, h.paused = false, true }
func (h *fakeHandle) Resume()       { h.playing, h.paused = true, false }

// recorder is an audio.Player that remembers every Play call. When sustain
// is set its handles keep playing until paused.
type recorder struct {
	plays   []play
	handles []*fakeHandle
	sustain bool
	music   bool
}

func (r *recorder) Play(s audio.Sample, frequency, volume float64) audio.Handle {
	r.plays = append(r.plays, play{s, frequency, volume})
	h := &fakeHandle{playing: r.sustain}
	r.handles = append(r.handles, h)
	return h
}

func (r *recorder) ToggleMusic()       { r.music = !r.music }
func (r *recorder) MusicPlaying() bool { return r.music }

func (r *recorder) count(s audio.Sample) int {
	n := 0
	for _, p := range r.plays {
		if p.sample == s {
			n++
		}
	}
	return n
}

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// newTestGame builds a game on the default config with star spawning off,
// so tests control every star.
func newTestGame(t *testing.T, m Mode) (*Game, *recorder) {
	t.Helper()
	g := NewMode(m)
	rec := &recorder{}
	g.SetAudio(rec)
	g.ResetWithConfig(testRuntime, config.DefaultStarfighterConfig())
	g.mode.Stars = false
	return g, rec
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func release(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Release(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func tick(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}
