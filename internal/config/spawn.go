package config

import "math"

// SpawnManager calculates star spawn parameters for the current level.
type SpawnManager struct {
	spawn SpawnConfig
	diff  DifficultyConfig
}

// NewSpawnManager creates a new spawn manager.
func NewSpawnManager(spawn SpawnConfig, diff DifficultyConfig) *SpawnManager {
	return &SpawnManager{
		spawn: spawn,
		diff:  diff,
	}
}

// IsEnabled returns whether level-based scaling is active.
func (m *SpawnManager) IsEnabled() bool {
	return m.diff.Enabled
}

// effectiveLevel returns the level used for scaling.
// With scaling disabled every level spawns like level 1.
func (m *SpawnManager) effectiveLevel(level int) float64 {
	if !m.diff.Enabled || level < 1 {
		return 1
	}
	return float64(level)
}

// Speed returns the fall speed for new stars, capped at MaxSpeed.
func (m *SpawnManager) Speed(level int) float64 {
	l := m.effectiveLevel(level)
	speed := (l-1)*m.spawn.SpeedPerLevel + m.spawn.BaseSpeed + m.diff.SpeedBonus
	return math.Min(speed, m.spawn.MaxSpeed)
}

// MaxStars returns the population cap.
func (m *SpawnManager) MaxStars(level int) int {
	l := int(m.effectiveLevel(level))
	return m.spawn.BaseCap + l*m.spawn.CapPerLevel
}

// Chance returns the per-tick spawn probability in percent.
func (m *SpawnManager) Chance(level int) float64 {
	l := m.effectiveLevel(level)
	return m.spawn.BaseChance + l*m.spawn.ChancePerLevel + m.diff.ChanceBonus
}

// Level derives the 1-based level from a score.
func Level(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 1
	}
	if score < 0 {
		score = 0
	}
	return score/pointsPerLevel + 1
}
