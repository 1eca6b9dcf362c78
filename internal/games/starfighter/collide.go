package starfighter

import "github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"

// Body is anything with a position and a circular hitbox.
type Body interface {
	Pos() core.Vec
	Radius() float64
}

// Collide reports whether two bodies' circles overlap.
func Collide(a, b Body) bool {
	return core.Circle{Center: a.Pos(), R: a.Radius()}.Overlaps(core.Circle{Center: b.Pos(), R: b.Radius()})
}

// edgeHit is the straight-shot hit test: either end of the shot's leading
// edge must lie strictly inside the target's circle.
func edgeHit(pos core.Vec, halfWidth float64, target Body) bool {
	r := target.Radius()
	c := target.Pos()
	return core.Distance(core.V(pos.X-halfWidth, pos.Y), c) < r ||
		core.Distance(core.V(pos.X+halfWidth, pos.Y), c) < r
}

// circle is a bare Body used for probes and tests.
type circle struct {
	at core.Vec
	r  float64
}

func (c circle) Pos() core.Vec   { return c.at }
func (c circle) Radius() float64 { return c.r }
