package starfighter

import (
	"slices"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

// Phase is the ship's life-cycle state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseSpawning
	PhaseExploding
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseSpawning:
		return "spawning"
	case PhaseExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// Ship is the player. It owns its shots and its shield.
type Ship struct {
	pos     core.Vec
	phase   Phase
	counter int // ticks left in the spawning or exploding phase

	energy      float64
	shieldUp    bool
	cheatEnergy bool
	rapidFire   bool

	shots  []Shot
	shield *Shield

	a *Assets
	w world
}

// NewShip creates an active ship at the start position.
func NewShip(a *Assets, w world) *Ship {
	s := &Ship{a: a, w: w}
	s.shield = NewShield(a.cfg.Shield.Radius, s.pos)
	s.Reset()
	return s
}

// Reset puts the ship back at the start position with the shield down
// and both toggles off. Phase and shots are left alone.
func (s *Ship) Reset() {
	s.resetEnergy()
	s.shieldUp = false
	s.cheatEnergy = false
	s.rapidFire = false
	s.pos = core.V(s.a.bounds.X/2, s.a.cfg.Ship.StartY)
	s.shield.Update(s.pos)
}

// resetEnergy drops the shield energy to its penalty floor unless the
// cheat pins it.
func (s *Ship) resetEnergy() {
	if !s.cheatEnergy {
		s.energy = s.a.cfg.Shield.ResetEnergy
	}
}

func (s *Ship) Pos() core.Vec { return s.pos }

// Radius is half the sprite width.
func (s *Ship) Radius() float64 { return s.a.cfg.Ship.Width / 2 }

func (s *Ship) Phase() Phase      { return s.phase }
func (s *Ship) Energy() float64   { return s.energy }
func (s *Ship) ShieldUp() bool    { return s.shieldUp }
func (s *Ship) RapidFire() bool   { return s.rapidFire }
func (s *Ship) CheatEnergy() bool { return s.cheatEnergy }
func (s *Ship) Shots() []Shot     { return s.shots }

// CanCollide reports whether the hull can be hit.
func (s *Ship) CanCollide() bool {
	return s.phase == PhaseActive
}

// CanShoot reports whether a new shot may be fired. A double shot takes a
// single slot.
func (s *Ship) CanShoot() bool {
	return (s.liveShots() == 0 || s.rapidFire) && !s.shieldUp && s.phase == PhaseActive
}

func (s *Ship) liveShots() int {
	n := 0
	for _, shot := range s.shots {
		if !shot.Done() {
			n++
		}
	}
	return n
}

// Update advances timers, energy, movement, the shield and every shot.
func (s *Ship) Update(in core.InputFrame) {
	s.updateExplosion()
	s.updateSpawning()
	s.updateShieldEnergy()
	s.move(in)
	s.shield.Update(s.pos)
	for _, shot := range s.shots {
		shot.Update()
	}
	s.compact()
}

func (s *Ship) updateExplosion() {
	if s.phase != PhaseExploding {
		return
	}
	s.counter--
	if s.counter <= 0 {
		s.w.newLife()
	}
}

func (s *Ship) updateSpawning() {
	if s.phase != PhaseSpawning {
		return
	}
	s.counter--
	if s.counter <= 0 {
		s.phase = PhaseActive
		s.counter = 0
	}
}

func (s *Ship) updateShieldEnergy() {
	cfg := s.a.cfg.Shield
	if !s.shieldUp && s.energy < cfg.MaxEnergy {
		s.energy = min(s.energy+cfg.Regen, cfg.MaxEnergy)
	}

	if s.shieldUp && !s.cheatEnergy {
		s.energy -= cfg.Drain
		if s.energy < 0 {
			s.shieldUp = false
			s.resetEnergy()
		}
	}
}

// move applies held direction keys. The ship is frozen while exploding.
func (s *Ship) move(in core.InputFrame) {
	if s.phase == PhaseExploding {
		return
	}
	down := func(a core.Action) bool { return in.IsHeld(a) || in.Has(a) }
	speed := s.a.cfg.Ship.Speed

	if down(core.ActionLeft) {
		s.pos.X -= speed
	}
	if down(core.ActionRight) {
		s.pos.X += speed
	}
	if down(core.ActionUp) {
		s.pos.Y -= speed
	}
	if down(core.ActionDown) {
		s.pos.Y += speed
	}

	hw, hh := s.a.cfg.Ship.Width/2, s.a.cfg.Ship.Height/2
	s.pos.X = core.ClampF(s.pos.X, hw, s.a.bounds.X-hw)
	s.pos.Y = core.ClampF(s.pos.Y, hh, s.a.bounds.Y-hh)
}

// ButtonDown handles a weapon or shield key press.
func (s *Ship) ButtonDown(a core.Action) {
	switch a {
	case core.ActionFire:
		s.fireShot(NewSingleShot(s.a, s.w, s.pos))
	case core.ActionDoubleFire:
		s.fireShot(NewDoubleShot(s.a, s.w, s.pos))
	case core.ActionSuperFire:
		s.fireShot(NewSuperShot(s.a, s.w, s.pos))
	case core.ActionNuke:
		s.FireNuke()
	case core.ActionShield:
		s.RaiseShield()
	}
}

// ButtonUp handles a key release.
func (s *Ship) ButtonUp(a core.Action) {
	if a == core.ActionShield {
		s.LowerShield()
	}
}

// fireShot adds the shot and plays its sound if the gate allows it.
func (s *Ship) fireShot(shot Shot) bool {
	if !s.CanShoot() {
		return false
	}
	s.shots = append(s.shots, shot)
	shot.Fire()
	return true
}

// FireNuke fires a nuke when the shield energy is full. The charge is
// spent only if the nuke actually launches.
func (s *Ship) FireNuke() bool {
	if s.energy < s.a.cfg.Shield.MaxEnergy {
		return false
	}
	if !s.fireShot(NewNuke(s.a, s.w, s.pos)) {
		return false
	}
	s.resetEnergy()
	logger.Debug("nuke fired", "x", s.pos.X, "y", s.pos.Y)
	return true
}

// RaiseShield raises the shield if there is energy and the ship is active.
func (s *Ship) RaiseShield() {
	if s.phase != PhaseActive {
		return
	}
	if s.energy > 0 {
		s.shieldUp = true
	}
}

// LowerShield drops the shield.
func (s *Ship) LowerShield() {
	s.shieldUp = false
}

// ToggleRapidFire lifts the one-shot-at-a-time limit.
func (s *Ship) ToggleRapidFire() {
	s.rapidFire = !s.rapidFire
}

// ToggleCheatEnergy pins the shield energy at its maximum.
func (s *Ship) ToggleCheatEnergy() {
	s.cheatEnergy = !s.cheatEnergy
	if s.cheatEnergy {
		s.energy = s.a.cfg.Shield.MaxEnergy
	}
}

// Destroy starts the explosion.
func (s *Ship) Destroy() {
	s.w.PlaySound(s.a.explosion, 1, 1)
	s.phase = PhaseExploding
	s.counter = s.a.cfg.Ship.ExplodeTicks
	logger.Debug("ship destroyed", "x", s.pos.X, "y", s.pos.Y)
}

// Spawn resets the ship and starts the invulnerable spawning phase.
func (s *Ship) Spawn() {
	s.phase = PhaseSpawning
	s.counter = s.a.cfg.Ship.SpawnTicks
	s.Reset()
}

// Restart returns the ship to a fresh active state with no shots.
func (s *Ship) Restart() {
	s.phase = PhaseActive
	s.counter = 0
	s.shots = nil
	s.cheatEnergy = false
	s.Reset()
}

// Collide tests target against the ship. With the shield up the shield
// blocks it; otherwise a collidable hull is destroyed by it. Shots are
// tested either way and the first hit counts.
func (s *Ship) Collide(target Body) bool {
	if s.shieldUp {
		if s.shield.Collide(target) {
			return true
		}
	} else if s.CanCollide() && Collide(s, target) {
		s.Destroy()
		return true
	}

	for _, shot := range s.shots {
		if !shot.Done() && shot.Collide(target) {
			return true
		}
	}
	return false
}

// compact drops expired shots.
func (s *Ship) compact() {
	s.shots = slices.DeleteFunc(s.shots, Shot.Done)
}
