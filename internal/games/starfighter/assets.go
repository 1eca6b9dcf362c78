package starfighter

import (
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/audio"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/config"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

// shotStyle is the look and sound of one weapon.
type shotStyle struct {
	halfWidth float64
	height    float64
	speed     float64
	color1    core.Color
	color2    core.Color
	freq      float64
	vol       float64
}

// Assets holds everything entities share: world bounds, sprite extents,
// weapon styles and sample ids. Built once per game and passed to every
// constructor.
type Assets struct {
	cfg    config.StarfighterConfig
	bounds core.Vec

	single shotStyle
	super  shotStyle
	double shotStyle
	nuke   shotStyle

	fire      audio.Sample
	explosion audio.Sample
	beep      audio.Sample
}

// NewAssets builds the registry from a validated config. Unparseable
// colors fall back to white.
func NewAssets(cfg config.StarfighterConfig) *Assets {
	style := func(s config.ShotConfig) shotStyle {
		return shotStyle{
			halfWidth: s.HalfWidth,
			height:    s.Height,
			speed:     s.Speed,
			color1:    config.MustColor(s.Color1, core.ColorWhite),
			color2:    config.MustColor(s.Color2, core.ColorWhite),
			freq:      s.SoundFrequency,
			vol:       s.SoundVolume,
		}
	}
	n := cfg.Shots.Nuke
	return &Assets{
		cfg:    cfg,
		bounds: core.V(cfg.World.Width, cfg.World.Height),
		single: style(cfg.Shots.Single),
		super:  style(cfg.Shots.Super),
		double: style(cfg.Shots.Double.ShotConfig),
		nuke: shotStyle{
			color1: config.MustColor(n.Color, core.ColorOrange),
			color2: config.MustColor(n.Color, core.ColorOrange),
			freq:   n.SoundFrequency,
			vol:    n.SoundVolume,
		},
		fire:      audio.SampleFire,
		explosion: audio.SampleExplosion,
		beep:      audio.SampleBeep,
	}
}

// Bounds returns the world size.
func (a *Assets) Bounds() core.Vec {
	return a.bounds
}

// outOfBounds reports whether p has left the world.
func (a *Assets) outOfBounds(p core.Vec) bool {
	return p.X > a.bounds.X || p.Y > a.bounds.Y || p.X < 0 || p.Y < 0
}
