// Package config provides YAML/TOML-based game configuration loading and
// level-driven spawn scaling for Starfighter.
package config

// StarfighterConfig contains all tunables for the Starfighter game.
// Distances are in world units (the 640x480 playfield), times in ticks.
type StarfighterConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Shield     ShieldConfig     `yaml:"shield" toml:"shield"`
	Shots      ShotsConfig      `yaml:"shots" toml:"shots"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        float64 `yaml:"width" toml:"width"`   // sprite width; half of it is the hit radius
	Height       float64 `yaml:"height" toml:"height"` // sprite height
	Speed        float64 `yaml:"speed" toml:"speed"`
	StartY       float64 `yaml:"start_y" toml:"start_y"`
	ExplodeTicks int     `yaml:"explode_ticks" toml:"explode_ticks"`
	SpawnTicks   int     `yaml:"spawn_ticks" toml:"spawn_ticks"`
}

// ShieldConfig defines the shield and its energy economy.
type ShieldConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	MaxEnergy   float64 `yaml:"max_energy" toml:"max_energy"`
	ResetEnergy float64 `yaml:"reset_energy" toml:"reset_energy"`
	Regen       float64 `yaml:"regen" toml:"regen"`
	Drain       float64 `yaml:"drain" toml:"drain"`
}

// ShotConfig defines a straight-flying projectile.
type ShotConfig struct {
	HalfWidth      float64 `yaml:"half_width" toml:"half_width"`
	Height         float64 `yaml:"height" toml:"height"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	Color1         string  `yaml:"color1" toml:"color1"`
	Color2         string  `yaml:"color2" toml:"color2"`
	SoundFrequency float64 `yaml:"sound_frequency" toml:"sound_frequency"`
	SoundVolume    float64 `yaml:"sound_volume" toml:"sound_volume"`
}

// DoubleShotConfig defines the twin projectile.
type DoubleShotConfig struct {
	ShotConfig `yaml:",inline"`
	Offset     float64 `yaml:"offset" toml:"offset"` // horizontal distance of each child from the ship
}

// NukeConfig defines the expanding nuke.
type NukeConfig struct {
	InitialSize    float64 `yaml:"initial_size" toml:"initial_size"`
	Growth         float64 `yaml:"growth" toml:"growth"`
	Spin           float64 `yaml:"spin" toml:"spin"`                   // degrees per tick
	RadiusFactor   float64 `yaml:"radius_factor" toml:"radius_factor"` // collision radius = size * factor
	ExtentFactor   float64 `yaml:"extent_factor" toml:"extent_factor"` // expires once size * factor > world width
	Color          string  `yaml:"color" toml:"color"`
	SoundFrequency float64 `yaml:"sound_frequency" toml:"sound_frequency"`
	SoundVolume    float64 `yaml:"sound_volume" toml:"sound_volume"`
}

// ShotsConfig groups all weapon definitions.
type ShotsConfig struct {
	Single ShotConfig       `yaml:"single" toml:"single"`
	Super  ShotConfig       `yaml:"super" toml:"super"`
	Double DoubleShotConfig `yaml:"double" toml:"double"`
	Nuke   NukeConfig       `yaml:"nuke" toml:"nuke"`
}

// StarsConfig defines the falling stars.
type StarsConfig struct {
	TileSize       float64 `yaml:"tile_size" toml:"tile_size"`
	RadiusFactor   float64 `yaml:"radius_factor" toml:"radius_factor"` // radius = size * factor
	BaseBrightness int     `yaml:"base_brightness" toml:"base_brightness"`
	Points         int     `yaml:"points" toml:"points"` // a size-s star is worth points*3/s
	SoundFrequency float64 `yaml:"sound_frequency" toml:"sound_frequency"`
}

// SpawnConfig defines how star spawning scales with level.
type SpawnConfig struct {
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerLevel  float64 `yaml:"speed_per_level" toml:"speed_per_level"`
	MaxSpeed       float64 `yaml:"max_speed" toml:"max_speed"`
	BaseCap        int     `yaml:"base_cap" toml:"base_cap"`
	CapPerLevel    int     `yaml:"cap_per_level" toml:"cap_per_level"`
	BaseChance     float64 `yaml:"base_chance" toml:"base_chance"` // percent per tick
	ChancePerLevel float64 `yaml:"chance_per_level" toml:"chance_per_level"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives          int `yaml:"lives" toml:"lives"`
	PointsPerLevel int `yaml:"points_per_level" toml:"points_per_level"`
}

// DifficultyConfig adjusts spawn pressure on top of the level curve.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled" toml:"enabled"`           // false pins spawning at level 1
	ChanceBonus float64 `yaml:"chance_bonus" toml:"chance_bonus"` // added to spawn chance percent
	SpeedBonus  float64 `yaml:"speed_bonus" toml:"speed_bonus"`   // added to star fall speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *StarfighterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.ChanceBonus = -1
		cfg.Difficulty.SpeedBonus = 0
	case DifficultyNormal:
		cfg.Gameplay.Lives = 3
		cfg.Difficulty.ChanceBonus = 0
		cfg.Difficulty.SpeedBonus = 0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.ChanceBonus = 2
		cfg.Difficulty.SpeedBonus = 0.5
	}
}
