package starfighter

import (
	"math/rand"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

// Star is a falling obstacle. Shooting or shielding it scores points,
// flying into it destroys the ship.
type Star struct {
	pos   core.Vec
	speed float64
	size  int
	color core.Color
	a     *Assets
	w     world
	done  bool
}

// NewStar spawns a star of random size and color at the top of the world.
func NewStar(rng *rand.Rand, a *Assets, w world, speed float64) *Star {
	tile := a.cfg.Stars.TileSize
	x := 0.0
	if span := int(a.bounds.X - tile); span > 0 {
		x = float64(rng.Intn(span))
	}
	size := rng.Intn(3) + 1
	return newStarAt(a, w, core.V(x, 0), size, speed, core.RandomColor(rng, a.cfg.Stars.BaseBrightness))
}

func newStarAt(a *Assets, w world, pos core.Vec, size int, speed float64, c core.Color) *Star {
	return &Star{
		pos:   pos,
		speed: speed,
		size:  size,
		color: c,
		a:     a,
		w:     w,
	}
}

func (s *Star) Pos() core.Vec { return s.pos }

// Radius scales with size.
func (s *Star) Radius() float64 {
	return s.a.cfg.Stars.RadiusFactor * float64(s.size)
}

// Size returns the size tier, 1 to 3.
func (s *Star) Size() int { return s.size }

// Points is the score for destroying the star: smaller stars are worth more.
func (s *Star) Points() int {
	return s.a.cfg.Stars.Points * 3 / s.size
}

// Update moves the star down. It expires silently once fully below the world.
func (s *Star) Update() {
	if s.done {
		return
	}
	s.pos.Y += s.speed
	if s.pos.Y-s.a.cfg.Stars.TileSize*float64(s.size) > s.a.bounds.Y {
		s.done = true
	}
}

// Destroy plays the hit cue, awards points and marks the star done.
// Destroying a star twice has no effect.
func (s *Star) Destroy() {
	if s.done {
		return
	}
	s.w.PlaySound(s.a.beep, s.a.cfg.Stars.SoundFrequency, 1/float64(s.size))
	s.w.AwardPoints(s.Points())
	s.done = true
}

func (s *Star) Done() bool { return s.done }

var starFrames = []rune{'✦', '✧', '✶', '✷', '✸', '✷', '✶', '✧'}

// Draw renders the star, animated by the clock.
func (s *Star) Draw(dst *core.Screen, v Viewport, ms int) {
	if s.done {
		return
	}
	frame := starFrames[(ms/100)%len(starFrames)]
	cx, cy := v.Cell(s.pos)
	rx, ry := v.Span(s.Radius())
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if !insideEllipse(dx, dy, rx, ry) {
				continue
			}
			r := '·'
			if dx == 0 && dy == 0 {
				r = frame
			}
			dst.Put(cx+dx, cy+dy, r, s.color, core.LayerStar)
		}
	}
}
