package config

import "testing"

func TestSpawnManagerCurve(t *testing.T) {
	cfg := DefaultStarfighterConfig()
	m := NewSpawnManager(cfg.Spawn, cfg.Difficulty)

	tests := []struct {
		level  int
		speed  float64
		max    int
		chance float64
	}{
		{1, 0.5, 14, 2.5},
		{2, 0.7, 16, 3.0},
		{6, 1.5, 24, 5.0},
		{100, 10, 212, 52},
	}
	for _, tt := range tests {
		if got := m.Speed(tt.level); !approx(got, tt.speed) {
			t.Errorf("Speed(%d) = %v, expected %v", tt.level, got, tt.speed)
		}
		if got := m.MaxStars(tt.level); got != tt.max {
			t.Errorf("MaxStars(%d) = %d, expected %d", tt.level, got, tt.max)
		}
		if got := m.Chance(tt.level); !approx(got, tt.chance) {
			t.Errorf("Chance(%d) = %v, expected %v", tt.level, got, tt.chance)
		}
	}
}

func TestSpawnManagerDisabled(t *testing.T) {
	cfg := DefaultStarfighterConfig()
	cfg.Difficulty.Enabled = false
	m := NewSpawnManager(cfg.Spawn, cfg.Difficulty)

	if m.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if m.Speed(9) != m.Speed(1) || m.MaxStars(9) != m.MaxStars(1) {
		t.Error("disabled manager should spawn like level 1")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2500, 3},
		{-10, 1},
	}
	for _, tt := range tests {
		if got := Level(tt.score, 1000); got != tt.want {
			t.Errorf("Level(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
