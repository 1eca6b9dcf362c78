package starfighter

import "github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"

var shieldColor = core.Hex(0x3366ff)

// Shield is the ship's protective ring. It follows the ship and blocks
// whatever it touches without being damaged.
type Shield struct {
	pos    core.Vec
	radius float64
}

// NewShield creates a shield at pos.
func NewShield(radius float64, pos core.Vec) *Shield {
	return &Shield{pos: pos, radius: radius}
}

// Update moves the shield onto the ship.
func (s *Shield) Update(shipPos core.Vec) {
	s.pos = shipPos
}

func (s *Shield) Pos() core.Vec   { return s.pos }
func (s *Shield) Radius() float64 { return s.radius }

// Collide reports whether target touches the shield.
func (s *Shield) Collide(target Body) bool {
	return Collide(s, target)
}

// Draw renders the ring, rotating with the clock.
func (s *Shield) Draw(dst *core.Screen, v Viewport, ms int) {
	angle := float64((ms / 15) % 360)
	drawRing(dst, v, s.pos, s.radius*0.75, angle, shieldColor, core.LayerShip)
}
