// Package starfighter implements Starfighter, a vertical shooter where the
// player's ship dodges and destroys falling stars with an arsenal of
// weapons and an energy shield. The tutorial lessons that build up to the
// full game are registered as separate modes.
package starfighter

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/audio"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/config"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

// world is the part of the session that entities call back into.
type world interface {
	PlaySound(s audio.Sample, frequency, volume float64)
	AwardPoints(n int)
	newLife()
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used for game events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is a Starfighter session. It owns the ship, the stars and the
// sounds they trigger.
type Game struct {
	mode    Mode
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig
	cfg     config.StarfighterConfig
	assets  *Assets
	spawner *config.SpawnManager
	rng     *rand.Rand

	ship   *Ship
	stars  []*Star
	sounds []audio.Handle
	player audio.Player

	score    int
	level    int
	lives    int
	paused   bool
	gameOver bool

	tickCount  int
	idleTicks  int // ticks since the last key press, shown by lessons
	lastAction core.Action
}

// New creates the full Starfighter game.
func New() *Game {
	return NewMode(ModeStarfighter)
}

// NewMode creates a game running the given mode.
func NewMode(m Mode) *Game {
	return &Game{mode: m, player: audio.Silent{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title
}

// SetAudio attaches a sound player. Nil silences the game.
func (g *Game) SetAudio(p audio.Player) {
	if p == nil {
		p = audio.Silent{}
	}
	g.player = p
}

// SetDifficulty selects a preset for this game only, overriding the
// package-wide one. Takes effect on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// HasDifficulty reports whether difficulty presets change this mode.
// Lessons keep no lives and the collisions lesson pins its spawning.
func (g *Game) HasDifficulty() bool {
	return g.mode.Lives && g.mode.FixedSpawn == nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	// Load game config
	cfg, err := config.LoadStarfighter(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultStarfighterConfig()
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.StarfighterConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.cfg = cfg
	g.assets = NewAssets(cfg)
	g.spawner = config.NewSpawnManager(cfg.Spawn, cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.ship = NewShip(g.assets, g)
	g.sounds = nil
	g.tickCount = 0
	g.start()
}

// start begins a new round: score, lives, stars and ship back to initial values.
func (g *Game) start() {
	g.paused = false
	g.gameOver = false
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.level = 1
	g.stars = nil
	g.idleTicks = 0
	g.lastAction = core.ActionNone
	g.ship.Restart()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.handleInput(in)

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.idleTicks++
	g.update(in)

	return core.StepResult{State: g.State()}
}

// handleInput dispatches key presses and releases. While paused the
// shield and super fire keys toggle cheats instead of reaching the ship.
func (g *Game) handleInput(in core.InputFrame) {
	if g.gameOver {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			logger.Debug("restart", "mode", g.mode.ID)
			g.start()
		}
		return
	}

	for _, a := range in.Pressed() {
		g.lastAction = a
		g.idleTicks = 0

		switch a {
		case core.ActionPause:
			g.togglePaused()
			continue
		case core.ActionMusic:
			g.toggleMusic()
			continue
		}

		if g.paused {
			switch a {
			case core.ActionShield:
				g.ship.ToggleCheatEnergy()
			case core.ActionSuperFire:
				g.ship.ToggleRapidFire()
			}
			continue
		}

		if !g.mode.Weapons {
			continue
		}
		if a == core.ActionRestart && !g.mode.Lives {
			g.ship.ToggleRapidFire()
			continue
		}
		g.ship.ButtonDown(a)
	}

	for _, a := range in.ReleasedActions() {
		g.ship.ButtonUp(a)
	}
}

// update runs one tick of the simulation.
func (g *Game) update(in core.InputFrame) {
	g.ship.Update(in)
	for _, s := range g.stars {
		s.Update()
	}
	g.checkCollisions()
	g.stars = slices.DeleteFunc(g.stars, (*Star).Done)
	g.clearStoppedSounds()
	g.populateStars()
}

// checkCollisions destroys every star the ship reports as hit. Stars are
// collected first so the slice is not changed while it is scanned.
func (g *Game) checkCollisions() {
	var destroyed []*Star
	for _, s := range g.stars {
		if !s.Done() && g.ship.Collide(s) {
			destroyed = append(destroyed, s)
		}
	}
	g.ship.compact()
	for _, s := range destroyed {
		s.Destroy()
	}
}

// populateStars maybe spawns one star, with chance, cap and speed set by level.
func (g *Game) populateStars() {
	if !g.mode.Stars {
		return
	}
	speed, maxStars, chance := g.spawnParams()
	if float64(g.rng.Intn(100)) < chance && len(g.stars) < maxStars {
		g.stars = append(g.stars, NewStar(g.rng, g.assets, g, speed))
	}
}

func (g *Game) spawnParams() (speed float64, maxStars int, chance float64) {
	if f := g.mode.FixedSpawn; f != nil {
		return f.Speed, f.MaxStars, f.Chance
	}
	return g.spawner.Speed(g.level), g.spawner.MaxStars(g.level), g.spawner.Chance(g.level)
}

// PlaySound triggers a sample and tracks its handle.
func (g *Game) PlaySound(s audio.Sample, frequency, volume float64) {
	if h := g.player.Play(s, frequency, volume); h != nil {
		g.sounds = append(g.sounds, h)
	}
}

// AwardPoints adds to the score and updates the level.
func (g *Game) AwardPoints(n int) {
	if !g.mode.Lives {
		return
	}
	g.score += n
	if lvl := config.Level(g.score, g.cfg.Gameplay.PointsPerLevel); lvl != g.level {
		logger.Debug("level up", "level", lvl, "score", g.score)
		g.level = lvl
	}
}

// newLife is called when the ship's explosion finishes. It spends a life
// and respawns the ship, or ends the game when none are left.
func (g *Game) newLife() {
	if !g.mode.Lives {
		g.ship.Spawn()
		return
	}
	g.lives--
	logger.Debug("life lost", "lives", g.lives)
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		logger.Info("game over", "mode", g.mode.ID, "score", g.score, "level", g.level)
		return
	}
	g.ship.Spawn()
}

func (g *Game) clearStoppedSounds() {
	g.sounds = slices.DeleteFunc(g.sounds, func(h audio.Handle) bool {
		return !h.Playing() && !h.Paused()
	})
}

func (g *Game) pauseSounds() {
	for _, h := range g.sounds {
		if h.Playing() {
			h.Pause()
		}
	}
}

func (g *Game) resumeSounds() {
	for _, h := range g.sounds {
		if h.Paused() {
			h.Resume()
		}
	}
}

func (g *Game) togglePaused() {
	if g.paused {
		g.resumeSounds()
	} else {
		g.pauseSounds()
	}
	g.paused = !g.paused
}

func (g *Game) toggleMusic() {
	if m, ok := g.player.(audio.MusicPlayer); ok {
		m.ToggleMusic()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Ship returns the player's ship.
func (g *Game) Ship() *Ship { return g.ship }

// Stars returns the live stars.
func (g *Game) Stars() []*Star { return g.stars }

// millis is the cosmetic animation clock.
func (g *Game) millis() int {
	return g.tickCount * 1000 / g.runtime.TickRate
}
