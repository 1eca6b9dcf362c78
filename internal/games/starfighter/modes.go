package starfighter

import "github.com/masonhale/Starfighter-Gosu-Tutorial/internal/registry"

// FixedSpawn pins star spawning regardless of level.
type FixedSpawn struct {
	Speed    float64
	MaxStars int
	Chance   float64 // percent per tick
}

// Mode selects which parts of the game are active. The lessons build the
// full game up one feature at a time.
type Mode struct {
	ID    string
	Title string

	Weapons    bool // firing and shield
	Stars      bool // falling stars and collisions
	Lives      bool // score, levels, lives and game over
	HUD        bool // score/lives/energy overlay; lessons show an input readout instead
	FixedSpawn *FixedSpawn
}

var (
	ModeStarfighter = Mode{
		ID:      "starfighter",
		Title:   "Starfighter",
		Weapons: true,
		Stars:   true,
		Lives:   true,
		HUD:     true,
	}
	ModeControl = Mode{
		ID:    "starfighter_control",
		Title: "Starfighter: Basic Control",
	}
	ModeWeaponry = Mode{
		ID:      "starfighter_weaponry",
		Title:   "Starfighter: Sounds & Weaponry",
		Weapons: true,
	}
	ModeCollisions = Mode{
		ID:      "starfighter_collisions",
		Title:   "Starfighter: Collisions",
		Weapons: true,
		Stars:   true,
		FixedSpawn: &FixedSpawn{
			Speed:    1.0,
			MaxStars: 15,
			Chance:   2,
		},
	}
)

// Modes lists every registered mode.
func Modes() []Mode {
	return []Mode{ModeStarfighter, ModeControl, ModeWeaponry, ModeCollisions}
}

// Register all modes with the global registry on package load.
func init() {
	for _, m := range Modes() {
		registry.Register(m.ID, func() registry.Game {
			return NewMode(m)
		})
	}
}
