// Package audio synthesizes and plays Starfighter's sound effects and
// background music on top of gopxl/beep.
package audio

// Sample identifies a sound effect.
type Sample int

const (
	SampleFire Sample = iota
	SampleExplosion
	SampleBeep
)

func (s Sample) String() string {
	switch s {
	case SampleFire:
		return "fire"
	case SampleExplosion:
		return "explosion"
	case SampleBeep:
		return "beep"
	default:
		return "unknown"
	}
}

// Handle is a single playing instance of a sample.
type Handle interface {
	Playing() bool
	Paused() bool
	Pause()
	Resume()
}

// Player triggers samples. Frequency is a playback speed multiplier
// (1.0 plays the sample as recorded), volume a linear gain.
type Player interface {
	Play(s Sample, frequency, volume float64) Handle
}

// MusicPlayer is implemented by players that carry a background track.
type MusicPlayer interface {
	ToggleMusic()
	MusicPlaying() bool
}

// Silent is a Player that plays nothing. Its handles are never playing,
// so they are pruned on the next tick.
type Silent struct{}

func (Silent) Play(Sample, float64, float64) Handle { return silentHandle{} }
func (Silent) ToggleMusic()                         {}
func (Silent) MusicPlaying() bool                   { return false }

type silentHandle struct{}

func (silentHandle) Playing() bool { return false }
func (silentHandle) Paused() bool  { return false }
func (silentHandle) Pause()        {}
func (silentHandle) Resume()       {}
