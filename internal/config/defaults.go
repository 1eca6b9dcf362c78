package config

import (
	_ "embed"
)

//go:embed defaults/starfighter.yaml
var defaultStarfighterYAML []byte

// DefaultStarfighterConfig returns the default Starfighter configuration.
func DefaultStarfighterConfig() StarfighterConfig {
	return StarfighterConfig{
		World: WorldConfig{
			Width:  640,
			Height: 480,
		},
		Ship: ShipConfig{
			Width:        50,
			Height:       50,
			Speed:        5,
			StartY:       400,
			ExplodeTicks: 200,
			SpawnTicks:   100,
		},
		Shield: ShieldConfig{
			Radius:      45,
			MaxEnergy:   1000,
			ResetEnergy: -30,
			Regen:       1.5,
			Drain:       6,
		},
		Shots: ShotsConfig{
			Single: ShotConfig{
				HalfWidth:      2,
				Height:         20,
				Speed:          10,
				Color1:         "#d936f1",
				Color2:         "#000000",
				SoundFrequency: 0.15,
				SoundVolume:    2.0,
			},
			Super: ShotConfig{
				HalfWidth:      4,
				Height:         20,
				Speed:          5.5,
				Color1:         "#aa0000",
				Color2:         "#aacc00",
				SoundFrequency: 0.3,
				SoundVolume:    0.5,
			},
			Double: DoubleShotConfig{
				ShotConfig: ShotConfig{
					HalfWidth:      2,
					Height:         20,
					Speed:          10,
					Color1:         "#008800",
					Color2:         "#22aa22",
					SoundFrequency: 0.15,
					SoundVolume:    1.0,
				},
				Offset: 15,
			},
			Nuke: NukeConfig{
				InitialSize:    0.5,
				Growth:         1.05,
				Spin:           -5,
				RadiusFactor:   60,
				ExtentFactor:   20,
				Color:          "#ff6633",
				SoundFrequency: 0.4,
				SoundVolume:    0.3,
			},
		},
		Stars: StarsConfig{
			TileSize:       25,
			RadiusFactor:   9.5,
			BaseBrightness: 40,
			Points:         10,
			SoundFrequency: 0.5,
		},
		Spawn: SpawnConfig{
			BaseSpeed:      0.5,
			SpeedPerLevel:  0.2,
			MaxSpeed:       10,
			BaseCap:        12,
			CapPerLevel:    2,
			BaseChance:     2,
			ChancePerLevel: 0.5,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			PointsPerLevel: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
// Used by `starfighter config` style tooling and tests.
func GetDefaultYAML() []byte {
	return defaultStarfighterYAML
}
