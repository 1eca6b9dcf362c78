package starfighter

import "github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"

// Shot is a projectile owned by the ship. Done reports that the shot has
// expired and may be dropped by its owner.
type Shot interface {
	Update()
	Draw(dst *core.Screen, v Viewport)
	Collide(target Body) bool
	Fire()
	Done() bool
}

// beam is the straight upward projectile shared by single and super shots.
type beam struct {
	pos   core.Vec
	style shotStyle
	a     *Assets
	w     world
	done  bool
}

func newBeam(a *Assets, w world, style shotStyle, pos core.Vec) beam {
	return beam{pos: pos, style: style, a: a, w: w}
}

func (b *beam) Pos() core.Vec { return b.pos }

func (b *beam) Update() {
	if b.done {
		return
	}
	b.pos.Y -= b.style.speed
	if b.a.outOfBounds(b.pos) {
		b.done = true
	}
}

func (b *beam) Collide(target Body) bool {
	if b.done {
		return false
	}
	return edgeHit(b.pos, b.style.halfWidth, target)
}

func (b *beam) Fire() {
	b.w.PlaySound(b.a.fire, b.style.freq, b.style.vol)
}

func (b *beam) Done() bool { return b.done }

func (b *beam) Draw(dst *core.Screen, v Viewport) {
	if b.done {
		return
	}
	drawBeam(dst, v, b.pos, b.style)
}

// SingleShot is destroyed by the first thing it hits.
type SingleShot struct {
	beam
}

// NewSingleShot creates a single shot at pos.
func NewSingleShot(a *Assets, w world, pos core.Vec) *SingleShot {
	return &SingleShot{beam: newBeam(a, w, a.single, pos)}
}

func newSingleShotStyled(a *Assets, w world, style shotStyle, pos core.Vec) *SingleShot {
	return &SingleShot{beam: newBeam(a, w, style, pos)}
}

// Collide tests the hit and removes the shot on success.
func (s *SingleShot) Collide(target Body) bool {
	if s.beam.Collide(target) {
		s.done = true
		return true
	}
	return false
}

// SuperShot is a wider, slower beam. It keeps flying after a hit and can
// take out several stars on its way up.
type SuperShot struct {
	beam
}

// NewSuperShot creates a super shot at pos.
func NewSuperShot(a *Assets, w world, pos core.Vec) *SuperShot {
	return &SuperShot{beam: newBeam(a, w, a.super, pos)}
}

// DoubleShot is a pair of single shots fired side by side. It is done
// once both children are gone.
type DoubleShot struct {
	shots [2]*SingleShot
	a     *Assets
	w     world
}

// NewDoubleShot creates the pair centred on pos.
func NewDoubleShot(a *Assets, w world, pos core.Vec) *DoubleShot {
	off := a.cfg.Shots.Double.Offset
	return &DoubleShot{
		shots: [2]*SingleShot{
			newSingleShotStyled(a, w, a.double, core.V(pos.X-off, pos.Y)),
			newSingleShotStyled(a, w, a.double, core.V(pos.X+off, pos.Y)),
		},
		a: a,
		w: w,
	}
}

func (d *DoubleShot) Update() {
	for _, s := range d.shots {
		s.Update()
	}
}

// Collide reports the first child that hits; the other is not tested.
func (d *DoubleShot) Collide(target Body) bool {
	for _, s := range d.shots {
		if s.Collide(target) {
			return true
		}
	}
	return false
}

func (d *DoubleShot) Fire() {
	d.w.PlaySound(d.a.fire, d.a.double.freq, d.a.double.vol)
}

func (d *DoubleShot) Done() bool {
	return d.shots[0].Done() && d.shots[1].Done()
}

func (d *DoubleShot) Draw(dst *core.Screen, v Viewport) {
	for _, s := range d.shots {
		s.Draw(dst, v)
	}
}

// Nuke is a stationary ring that grows and spins until it covers the
// whole world, destroying every star it touches.
type Nuke struct {
	pos   core.Vec
	size  float64
	angle float64
	a     *Assets
	w     world
	done  bool
}

// NewNuke creates a nuke at pos.
func NewNuke(a *Assets, w world, pos core.Vec) *Nuke {
	return &Nuke{
		pos:  pos,
		size: a.cfg.Shots.Nuke.InitialSize,
		a:    a,
		w:    w,
	}
}

func (n *Nuke) Pos() core.Vec { return n.pos }

// Radius grows with the nuke.
func (n *Nuke) Radius() float64 {
	return n.size * n.a.cfg.Shots.Nuke.RadiusFactor
}

func (n *Nuke) Update() {
	if n.done {
		return
	}
	cfg := n.a.cfg.Shots.Nuke
	n.angle += cfg.Spin
	n.size *= cfg.Growth
	if n.size*cfg.ExtentFactor > n.a.bounds.X {
		n.done = true
	}
}

func (n *Nuke) Collide(target Body) bool {
	if n.done {
		return false
	}
	return Collide(n, target)
}

func (n *Nuke) Fire() {
	n.w.PlaySound(n.a.fire, n.a.nuke.freq, n.a.nuke.vol)
}

func (n *Nuke) Done() bool { return n.done }

func (n *Nuke) Draw(dst *core.Screen, v Viewport) {
	if n.done {
		return
	}
	drawRing(dst, v, n.pos, n.Radius(), n.angle, n.a.nuke.color1, core.LayerShot)
}
