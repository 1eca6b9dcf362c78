package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Generate returns a fresh streamer for a sample at the engine rate.
func Generate(s Sample, sr beep.SampleRate) beep.Streamer {
	switch s {
	case SampleFire:
		// Falling laser chirp
		return &sweep{sr: sr, from: 1800, to: 300, samples: sr.N(250 * time.Millisecond), amp: 0.3}
	case SampleExplosion:
		return &noiseBurst{sr: sr, samples: sr.N(900 * time.Millisecond), seed: 1, amp: 0.5}
	case SampleBeep:
		return &sweep{sr: sr, from: 1320, to: 1320, samples: sr.N(120 * time.Millisecond), amp: 0.25}
	default:
		return beep.Silence(0)
	}
}

// sweep is a sine tone gliding linearly from one frequency to another
// with a short attack and an exponential tail.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	amp      float64
	pos      int
	phase    float64
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		p := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*p

		env := math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)+1), 1) * math.Exp(-3*p)
		v := g.amp * env * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = v
		samples[i][1] = v
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// noiseBurst is decaying noise over a low rumble.
type noiseBurst struct {
	sr      beep.SampleRate
	samples int
	seed    int64
	amp     float64
	pos     int
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 5)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		v := g.amp * env * (0.6*noise + rumble)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error { return nil }

// MusicGenerator plays an endless minor arpeggio over a bass drone.
type MusicGenerator struct {
	sr    beep.SampleRate
	step  int
	pos   int
	notes []float64
}

// NewMusicGenerator creates the background track.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:    sr,
		step:  sr.N(200 * time.Millisecond),
		notes: []float64{220, 261.63, 329.63, 392, 329.63, 261.63, 196, 246.94},
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		note := g.notes[(g.pos/g.step)%len(g.notes)]
		inStep := float64(g.pos%g.step) / float64(g.step)

		lead := 0.12 * math.Exp(-4*inStep) * math.Sin(2*math.Pi*note*t)
		bass := 0.08 * math.Sin(2*math.Pi*55*t)

		samples[i][0] = lead + bass
		samples[i][1] = lead + bass
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }
