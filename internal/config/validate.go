package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

// Validate checks that a configuration can drive a game.
// All problems are reported together.
func (c StarfighterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	check(c.Ship.Width > 0 && c.Ship.Height > 0, "ship size must be positive")
	check(c.Ship.Speed >= 0, "ship speed must not be negative")
	check(c.Ship.ExplodeTicks > 0, "ship explode_ticks must be positive")
	check(c.Ship.SpawnTicks > 0, "ship spawn_ticks must be positive")
	check(c.Shield.Radius > 0, "shield radius must be positive")
	check(c.Shield.MaxEnergy > 0, "shield max_energy must be positive")
	check(c.Shield.ResetEnergy <= 0, "shield reset_energy must not be positive")
	check(c.Shots.Nuke.Growth > 1, "nuke growth must be greater than 1")
	check(c.Stars.TileSize > 0 && c.Stars.RadiusFactor > 0, "star size must be positive")
	check(c.Spawn.MaxSpeed > 0, "spawn max_speed must be positive")
	check(c.Gameplay.Lives > 0, "gameplay lives must be positive")
	check(c.Gameplay.PointsPerLevel > 0, "gameplay points_per_level must be positive")

	for name, s := range map[string]string{
		"shots.single.color1": c.Shots.Single.Color1,
		"shots.single.color2": c.Shots.Single.Color2,
		"shots.super.color1":  c.Shots.Super.Color1,
		"shots.super.color2":  c.Shots.Super.Color2,
		"shots.double.color1": c.Shots.Double.Color1,
		"shots.double.color2": c.Shots.Double.Color2,
		"shots.nuke.color":    c.Shots.Nuke.Color,
	} {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ParseColor parses a "#rrggbb" string into a true color.
func ParseColor(s string) (core.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return core.ColorDefault, fmt.Errorf("color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.ColorDefault, fmt.Errorf("color %q: %w", s, err)
	}
	return core.Hex(uint32(v)), nil
}

// MustColor parses a color, falling back to def on error.
func MustColor(s string, def core.Color) core.Color {
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}
