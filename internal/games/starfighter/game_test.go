package starfighter

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/audio"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/config"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/registry"
)

func TestStarOverlappingShipEndToEnd(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	star := newStarAt(g.assets, g, g.ship.Pos(), 2, 0, core.ColorWhite)
	g.stars = []*Star{star}

	g.Step(core.NewInputFrame())

	if g.ship.Phase() != PhaseExploding {
		t.Errorf("ship phase = %v, expected exploding", g.ship.Phase())
	}
	if n := rec.count(audio.SampleExplosion); n != 1 {
		t.Errorf("explosion played %d times, expected 1", n)
	}
	if slices.Contains(g.stars, star) {
		t.Error("star should be removed")
	}
	if g.score != 15 {
		t.Errorf("score = %d, expected 15", g.score)
	}

	// Still exploding: the hull cannot be hit twice.
	g.stars = []*Star{newStarAt(g.assets, g, g.ship.Pos(), 1, 0, core.ColorWhite)}
	g.Step(core.NewInputFrame())
	if n := rec.count(audio.SampleExplosion); n != 1 {
		t.Errorf("explosion played %d times after second overlap, expected 1", n)
	}
}

func TestStarDestroyCue(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	s := newStarAt(g.assets, g, core.V(100, 100), 2, 0, core.ColorWhite)
	s.Destroy()

	if len(rec.plays) != 1 {
		t.Fatalf("plays = %d, expected 1", len(rec.plays))
	}
	p := rec.plays[0]
	if p.sample != audio.SampleBeep || p.frequency != 0.5 || p.volume != 0.5 {
		t.Errorf("destroy cue = %+v, expected beep at 0.5/0.5", p)
	}
}

func TestExplosionToRespawn(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	explode := g.assets.cfg.Ship.ExplodeTicks

	if g.lives != 3 {
		t.Fatalf("lives = %d, expected 3", g.lives)
	}

	for round := 1; round <= 3; round++ {
		g.ship.Destroy()
		tick(g, explode-1)
		if g.gameOver {
			t.Fatalf("round %d: game over before the explosion finished", round)
		}
		if g.ship.Phase() != PhaseExploding {
			t.Fatalf("round %d: phase = %v, expected exploding", round, g.ship.Phase())
		}
		tick(g, 1)

		if round < 3 {
			if g.gameOver {
				t.Fatalf("round %d: game over too early", round)
			}
			if g.lives != 3-round {
				t.Errorf("round %d: lives = %d, expected %d", round, g.lives, 3-round)
			}
			if g.ship.Phase() != PhaseSpawning {
				t.Errorf("round %d: phase = %v, expected spawning", round, g.ship.Phase())
			}
			tick(g, 100)
			if g.ship.Phase() != PhaseActive {
				t.Errorf("round %d: phase = %v after spawning, expected active", round, g.ship.Phase())
			}
		}
	}

	if !g.gameOver || g.lives != 0 {
		t.Errorf("after third explosion: gameOver=%v lives=%d", g.gameOver, g.lives)
	}
	if !g.State().GameOver {
		t.Error("State() should report game over")
	}
}

func TestSpawningShipIsInvulnerable(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	g.ship.Spawn()
	g.stars = []*Star{newStarAt(g.assets, g, g.ship.Pos(), 1, 0, core.ColorWhite)}

	g.Step(core.NewInputFrame())

	if rec.count(audio.SampleExplosion) != 0 {
		t.Error("spawning ship should not explode")
	}
	if len(g.stars) != 1 {
		t.Error("star should survive a spawning ship")
	}
	if g.ship.CanShoot() {
		t.Error("spawning ship should not shoot")
	}
}

func TestFiringGate(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)

	g.Step(press(core.ActionFire))
	if len(g.ship.Shots()) != 1 || rec.count(audio.SampleFire) != 1 {
		t.Fatalf("first fire: shots=%d sounds=%d", len(g.ship.Shots()), rec.count(audio.SampleFire))
	}

	g.Step(press(core.ActionFire))
	g.Step(press(core.ActionSuperFire))
	if len(g.ship.Shots()) != 1 {
		t.Errorf("shots = %d, expected the second fire to be rejected", len(g.ship.Shots()))
	}
	if n := rec.count(audio.SampleFire); n != 1 {
		t.Errorf("fire sounds = %d, expected 1", n)
	}

	g.ship.ToggleRapidFire()
	g.Step(press(core.ActionFire))
	if len(g.ship.Shots()) != 2 {
		t.Errorf("rapid fire: shots = %d, expected 2", len(g.ship.Shots()))
	}
}

func TestFiringGateReopensWhenShotExpires(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.Step(press(core.ActionFire))
	tick(g, 41)

	if len(g.ship.Shots()) != 0 {
		t.Fatalf("shots = %d, expected the shot to have left the world", len(g.ship.Shots()))
	}
	if !g.ship.CanShoot() {
		t.Error("ship should be able to shoot again")
	}
}

func TestFireSoundTuning(t *testing.T) {
	tests := []struct {
		action core.Action
		freq   float64
		vol    float64
	}{
		{core.ActionFire, 0.15, 2.0},
		{core.ActionSuperFire, 0.3, 0.5},
		{core.ActionDoubleFire, 0.15, 1.0},
	}
	for _, tt := range tests {
		g, rec := newTestGame(t, ModeStarfighter)
		g.ship.ButtonDown(tt.action)
		if len(rec.plays) != 1 {
			t.Fatalf("%v: plays = %d, expected 1", tt.action, len(rec.plays))
		}
		if p := rec.plays[0]; p.frequency != tt.freq || p.volume != tt.vol {
			t.Errorf("%v: sound = %v/%v, expected %v/%v", tt.action, p.frequency, p.volume, tt.freq, tt.vol)
		}
	}
}

func TestShieldEnergyClamped(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		var in core.InputFrame
		switch rng.Intn(20) {
		case 0:
			in = press(core.ActionShield)
		case 1:
			in = release(core.ActionShield)
		case 2:
			in = press(core.ActionNuke)
		default:
			in = core.NewInputFrame()
		}
		g.Step(in)

		e := g.ship.Energy()
		if e < -30 || e > 1000 {
			t.Fatalf("tick %d: energy = %v, expected within [-30, 1000]", i, e)
		}
	}
}

func TestShieldEnergyEconomy(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	ship := g.ship

	if ship.Energy() != -30 {
		t.Fatalf("initial energy = %v, expected -30", ship.Energy())
	}

	ship.RaiseShield()
	if ship.ShieldUp() {
		t.Error("shield must not rise without energy")
	}

	tick(g, 21) // -30 + 21*1.5 = 1.5
	ship.RaiseShield()
	if !ship.ShieldUp() {
		t.Fatalf("shield should rise with energy %v", ship.Energy())
	}

	tick(g, 1) // 1.5 - 6 < 0
	if ship.ShieldUp() || ship.Energy() != -30 {
		t.Errorf("draining below zero: up=%v energy=%v, expected down at -30", ship.ShieldUp(), ship.Energy())
	}

	tick(g, 1000)
	if ship.Energy() != 1000 {
		t.Errorf("energy = %v, expected capped at 1000", ship.Energy())
	}
}

func TestCheatEnergyPinned(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionShield))
	g.Step(press(core.ActionPause))

	if !g.ship.CheatEnergy() {
		t.Fatal("shield key while paused should toggle cheat energy")
	}
	if g.ship.ShieldUp() {
		t.Fatal("cheat toggle must not raise the shield")
	}

	g.Step(press(core.ActionShield))
	tick(g, 500)
	if !g.ship.ShieldUp() || g.ship.Energy() != 1000 {
		t.Errorf("cheat shield: up=%v energy=%v, expected up at 1000", g.ship.ShieldUp(), g.ship.Energy())
	}

	g.Step(release(core.ActionShield))
	g.Step(press(core.ActionNuke))
	if g.ship.Energy() != 1000 {
		t.Errorf("nuke under cheat consumed energy: %v", g.ship.Energy())
	}
}

func TestPausedRapidFireCheat(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionSuperFire))

	if !g.ship.RapidFire() {
		t.Error("super fire while paused should toggle rapid fire")
	}
	if len(g.ship.Shots()) != 0 {
		t.Error("no shot should be fired while paused")
	}
}

func TestNukeRequiresFullEnergy(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	ship := g.ship

	ship.energy = 999
	if ship.FireNuke() {
		t.Fatal("nuke fired without full energy")
	}
	if ship.Energy() != 999 {
		t.Errorf("rejected nuke changed energy to %v", ship.Energy())
	}

	ship.energy = 1000
	ship.ButtonDown(core.ActionFire)
	if ship.FireNuke() {
		t.Fatal("nuke fired past the one-shot gate")
	}
	if ship.Energy() != 1000 {
		t.Errorf("gated nuke changed energy to %v", ship.Energy())
	}

	ship.shots = nil
	if !ship.FireNuke() {
		t.Fatal("nuke should fire with full energy")
	}
	if ship.Energy() != -30 {
		t.Errorf("energy after nuke = %v, expected -30", ship.Energy())
	}
	if _, ok := ship.Shots()[0].(*Nuke); !ok {
		t.Errorf("shot is %T, expected *Nuke", ship.Shots()[0])
	}
}

func TestShieldBlocksWithoutDamage(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	g.ship.energy = 500
	g.Step(press(core.ActionShield))

	star := newStarAt(g.assets, g, g.ship.Pos(), 3, 0, core.ColorWhite)
	g.stars = []*Star{star}
	g.Step(core.NewInputFrame())

	if g.ship.Phase() != PhaseActive {
		t.Errorf("phase = %v, expected active behind the shield", g.ship.Phase())
	}
	if rec.count(audio.SampleExplosion) != 0 {
		t.Error("shield hit must not play the explosion")
	}
	if !star.Done() || g.score != 10 {
		t.Errorf("shielded star: done=%v score=%d, expected done and 10", star.Done(), g.score)
	}
}

func TestShotScores(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.Step(press(core.ActionFire))

	// Out of the hull's reach; the shot gets there in a few ticks.
	shot := g.ship.Shots()[0].(*SingleShot)
	star := newStarAt(g.assets, g, core.V(shot.pos.X, shot.pos.Y-50), 1, 0, core.ColorWhite)
	g.stars = []*Star{star}
	for i := 0; i < 10 && g.score == 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.score != 30 {
		t.Errorf("score = %d, expected 30", g.score)
	}
	if len(g.ship.Shots()) != 0 {
		t.Error("single shot should be gone after its hit")
	}
	if len(g.stars) != 0 {
		t.Error("star should be gone")
	}
}

func TestLevel(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	if g.State().Level != 1 {
		t.Fatalf("level(0) = %d, expected 1", g.State().Level)
	}
	g.AwardPoints(999)
	if g.State().Level != 1 {
		t.Errorf("level(999) = %d, expected 1", g.State().Level)
	}
	g.AwardPoints(1)
	if g.State().Level != 2 {
		t.Errorf("level(1000) = %d, expected 2", g.State().Level)
	}
}

func TestMovementClamped(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)

	for i := 0; i < 200; i++ {
		g.Step(hold(core.ActionLeft, core.ActionDown))
	}
	if p := g.ship.Pos(); p != core.V(25, 455) {
		t.Errorf("ship at %v, expected clamped at (25, 455)", p)
	}

	for i := 0; i < 200; i++ {
		g.Step(hold(core.ActionRight, core.ActionUp))
	}
	if p := g.ship.Pos(); p != core.V(615, 25) {
		t.Errorf("ship at %v, expected clamped at (615, 25)", p)
	}
}

func TestMovementFrozenWhileExploding(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.ship.Destroy()
	before := g.ship.Pos()

	g.Step(hold(core.ActionLeft))
	if g.ship.Pos() != before {
		t.Errorf("exploding ship moved from %v to %v", before, g.ship.Pos())
	}
}

func TestPauseStopsSimulationAndSounds(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	rec.sustain = true

	g.Step(press(core.ActionFire))
	shot := g.ship.Shots()[0].(*SingleShot)
	y := shot.pos.Y

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	if !rec.handles[0].Paused() {
		t.Error("fire sound should be paused")
	}

	tick(g, 10)
	if shot.pos.Y != y {
		t.Error("shots must not move while paused")
	}

	g.Step(press(core.ActionPause))
	if !rec.handles[0].Playing() {
		t.Error("fire sound should resume")
	}
}

func TestFinishedSoundsArePruned(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	rec.sustain = true
	g.Step(press(core.ActionFire))

	if len(g.sounds) != 1 {
		t.Fatalf("sounds = %d, expected 1", len(g.sounds))
	}
	rec.handles[0].playing = false
	tick(g, 1)
	if len(g.sounds) != 0 {
		t.Errorf("sounds = %d, expected finished handle pruned", len(g.sounds))
	}
}

func TestMusicToggle(t *testing.T) {
	g, rec := newTestGame(t, ModeStarfighter)
	g.Step(press(core.ActionMusic))
	if !rec.music {
		t.Error("music key should toggle music")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.AwardPoints(2500)
	g.lives = 1
	g.ship.Destroy()
	tick(g, 200)
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	// Other keys are ignored
	g.Step(press(core.ActionFire))
	if !g.gameOver {
		t.Fatal("fire should not restart")
	}

	g.Step(press(core.ActionConfirm))
	st := g.State()
	if st.GameOver || st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("after restart: %+v", st)
	}
	if g.ship.Phase() != PhaseActive || len(g.ship.Shots()) != 0 || len(g.stars) != 0 {
		t.Error("ship and stars should be reset")
	}
}

func TestSpawnCap(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.mode.Stars = true

	// Stars hang at the top out of the ship's reach
	for i := 0; i < 5000; i++ {
		g.populateStars()
	}
	if len(g.stars) != 14 {
		t.Errorf("stars = %d, expected level 1 cap of 14", len(g.stars))
	}
	for _, s := range g.stars {
		if s.speed != 0.5 {
			t.Errorf("star speed = %v, expected 0.5", s.speed)
		}
	}
}

func TestDeterminism(t *testing.T) {
	actions := []core.Action{
		core.ActionFire, core.ActionDoubleFire, core.ActionSuperFire,
		core.ActionNuke, core.ActionShield, core.ActionLeft, core.ActionRight,
	}
	inputs := make([]core.InputFrame, 3000)
	rng := rand.New(rand.NewSource(99))
	for i := range inputs {
		in := core.NewInputFrame()
		a := actions[rng.Intn(len(actions))]
		if rng.Intn(4) == 0 {
			in.Set(a)
		}
		if rng.Intn(6) == 0 {
			in.Release(core.ActionShield)
		}
		in.Hold(actions[5+rng.Intn(2)])
		inputs[i] = in
	}

	run := func() (core.GameState, int, core.Vec) {
		g := NewMode(ModeStarfighter)
		g.ResetWithConfig(testRuntime, config.DefaultStarfighterConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.State(), len(g.stars), g.ship.Pos()
	}

	s1, n1, p1 := run()
	s2, n2, p2 := run()
	if s1 != s2 || n1 != n2 || p1 != p2 {
		t.Errorf("runs differ: %+v/%d/%v vs %+v/%d/%v", s1, n1, p1, s2, n2, p2)
	}
}

func TestPhaseAlwaysSingle(t *testing.T) {
	g := NewMode(ModeStarfighter)
	g.ResetWithConfig(testRuntime, config.DefaultStarfighterConfig())
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20000 && !g.gameOver; i++ {
		in := core.NewInputFrame()
		in.Hold([]core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}[rng.Intn(4)])
		g.Step(in)

		switch g.ship.Phase() {
		case PhaseActive, PhaseSpawning, PhaseExploding:
		default:
			t.Fatalf("tick %d: invalid phase %v", i, g.ship.Phase())
		}
		if g.ship.Phase() == PhaseActive && g.ship.counter != 0 {
			t.Fatalf("tick %d: active ship with pending counter %d", i, g.ship.counter)
		}
	}
}

func TestLessonCollisionsNeverEnds(t *testing.T) {
	g, _ := newTestGame(t, ModeCollisions)

	for i := 0; i < 5; i++ {
		g.stars = []*Star{newStarAt(g.assets, g, g.ship.Pos(), 1, 0, core.ColorWhite)}
		g.ship.Restart()
		g.Step(core.NewInputFrame())
		tick(g, 200)
	}
	st := g.State()
	if st.GameOver || st.Score != 0 {
		t.Errorf("lesson state = %+v, expected no score and no game over", st)
	}
	if g.ship.Phase() != PhaseSpawning {
		t.Errorf("phase = %v, expected respawning", g.ship.Phase())
	}
}

func TestLessonControlHasNoWeapons(t *testing.T) {
	g, rec := newTestGame(t, ModeControl)
	g.Step(press(core.ActionFire))

	if len(g.ship.Shots()) != 0 || len(rec.plays) != 0 {
		t.Error("control lesson should not fire")
	}
	if g.lastAction != core.ActionFire || g.idleTicks != 1 {
		t.Errorf("lesson readout: last=%v idle=%d", g.lastAction, g.idleTicks)
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	g.stars = []*Star{newStarAt(g.assets, g, core.V(100, 100), 2, 0, core.ColorWhite)}
	g.Step(press(core.ActionFire))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Level: 1") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "▲") {
		t.Error("ship sprite should be drawn")
	}

	sx, sy := NewViewport(80, 24, g.assets.Bounds()).Cell(core.V(100, 100))
	if c := screen.GetCell(sx, sy); c.Layer != core.LayerStar {
		t.Errorf("star cell layer = %v, expected star layer", c.Layer)
	}

	g.lives = 1
	g.ship.Destroy()
	tick(g, 200)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should be drawn")
	}
}

func TestRenderIsPure(t *testing.T) {
	g, _ := newTestGame(t, ModeStarfighter)
	before := g.State()
	pos := g.ship.Pos()

	screen := core.NewScreen(80, 24)
	for i := 0; i < 3; i++ {
		g.Render(screen)
	}
	if g.State() != before || g.ship.Pos() != pos {
		t.Error("Render must not change game state")
	}
}

func TestModesRegistered(t *testing.T) {
	for _, m := range Modes() {
		if !registry.Exists(m.ID) {
			t.Errorf("mode %q not registered", m.ID)
		}
		game, err := registry.Create(m.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", m.ID, err)
		}
		if game.Title() != m.Title {
			t.Errorf("Title() = %q, expected %q", game.Title(), m.Title)
		}
	}
}
