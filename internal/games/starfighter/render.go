package starfighter

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
)

// Visual characters for rendering
const (
	BeamChar       = '┃'
	RingChar       = '∘'
	ExplosionChar  = '✹'
	BackgroundChar = '.'
	LifeChar       = '▲'
	GaugeChar      = '█'
)

var shipSprite = []string{
	"  ▲  ",
	" ◢█◣ ",
	"◢█▀█◣",
}

var (
	shipColor     = core.Hex(0xc0d8ff)
	spawnColor    = core.Hex(0x0099ff)
	hudColor      = core.Hex(0xffff00)
	gaugeColor    = core.Hex(0x3366ff)
	gaugeFull     = core.Hex(0xff6633)
	explodeStart  = core.Hex(0xff0000)
	explodeEnd    = core.Hex(0xffff66)
	backdropColor = core.ColorGray
)

// Viewport projects world coordinates onto screen cells.
type Viewport struct {
	cols, rows int
	w, h       float64
}

// NewViewport maps a world of the given size onto cols x rows cells.
func NewViewport(cols, rows int, world core.Vec) Viewport {
	return Viewport{cols: cols, rows: rows, w: world.X, h: world.Y}
}

// Cell returns the cell containing world point p.
func (v Viewport) Cell(p core.Vec) (x, y int) {
	return int(math.Floor(p.X * float64(v.cols) / v.w)), int(math.Floor(p.Y * float64(v.rows) / v.h))
}

// Span converts a world distance into horizontal and vertical cell counts.
func (v Viewport) Span(d float64) (dx, dy int) {
	return int(math.Round(d * float64(v.cols) / v.w)), int(math.Round(d * float64(v.rows) / v.h))
}

// blend mixes two true colors; t=0 gives a, t=1 gives b.
func blend(a, b core.Color, t float64) core.Color {
	ar, ag, ab := a.Components()
	br, bg, bb := b.Components()
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := ca.BlendRgb(cb, core.ClampF(t, 0, 1)).Clamped().RGB255()
	return core.RGB(r, g, bl)
}

func insideEllipse(dx, dy, rx, ry int) bool {
	return dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry
}

// drawBeam draws a straight shot as a vertical bar shaded from its tip color
// to its tail color.
func drawBeam(dst *core.Screen, v Viewport, pos core.Vec, s shotStyle) {
	x0, y0 := v.Cell(core.V(pos.X-s.halfWidth, pos.Y))
	x1, y1 := v.Cell(core.V(pos.X+s.halfWidth, pos.Y+s.height))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		t := 0.0
		if y1 > y0 {
			t = float64(y-y0) / float64(y1-y0)
		}
		c := blend(s.color1, s.color2, t)
		for x := x0; x <= x1; x++ {
			dst.Put(x, y, BeamChar, c, core.LayerShot)
		}
	}
}

// drawRing draws a dashed circle whose dashes rotate with angle (degrees).
func drawRing(dst *core.Screen, v Viewport, center core.Vec, radius, angle float64, c core.Color, l core.Layer) {
	steps := max(12, int(radius/2))
	for i := 0; i < steps; i++ {
		deg := float64(i) * 360 / float64(steps)
		if math.Mod(math.Abs(deg-angle), 45) > 30 {
			continue
		}
		rad := deg * math.Pi / 180
		x, y := v.Cell(core.V(center.X+radius*math.Cos(rad), center.Y+radius*math.Sin(rad)))
		dst.Put(x, y, RingChar, c, l)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.assets == nil {
		return
	}

	v := NewViewport(dst.Width(), dst.Height(), g.assets.Bounds())
	ms := g.millis()

	g.renderBackground(dst)

	for _, s := range g.stars {
		s.Draw(dst, v, ms)
	}

	if !g.gameOver {
		g.ship.Draw(dst, v, ms)
	}

	if g.mode.HUD {
		g.renderHUD(dst)
	} else {
		g.renderLessonHUD(dst)
	}
	g.renderOverlay(dst)
}

// renderBackground scatters a fixed field of faint stars.
func (g *Game) renderBackground(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7919+y*104729)%113 == 0 {
				dst.Put(x, y, BackgroundChar, backdropColor, core.LayerBackground)
			}
		}
	}
}

// renderHUD draws score, level, lives and the energy gauge.
func (g *Game) renderHUD(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), hudColor)

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawTextColored(w-len(levelText)-2, 0, levelText, hudColor)

	// Lives in a bracket at the bottom left
	if g.lives > 0 {
		for i := 0; i < g.lives; i++ {
			dst.Put(1+i*2, h-1, LifeChar, shipColor, core.LayerUI)
		}
		edge := g.lives * 2
		dst.DrawHLine(0, h-2, edge+1, '─', hudColor)
		dst.Put(edge, h-2, '┐', hudColor, core.LayerUI)
		dst.Put(edge, h-1, '│', hudColor, core.LayerUI)
	}

	// Energy gauge up the right edge
	maxEnergy := g.cfg.Shield.MaxEnergy
	energy := g.ship.Energy()
	c := gaugeColor
	if energy >= maxEnergy {
		c = gaugeFull
	}
	if energy > 0 && maxEnergy > 0 {
		rows := int(math.Ceil(energy / maxEnergy * float64(h/2)))
		dst.DrawVLine(w-1, h-rows, rows, GaugeChar, c)
	}
}

// renderLessonHUD shows the raw input readout the lessons use.
func (g *Game) renderLessonHUD(dst *core.Screen) {
	dst.DrawTextColored(0, 0, fmt.Sprintf("updates since key press: %d", g.idleTicks), hudColor)
	dst.DrawTextColored(0, 1, fmt.Sprintf("last action: %s", g.lastAction), hudColor)
}

// renderOverlay draws the pause and game over screens.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.gameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "Press Enter to play again")
	case g.paused:
		drawCenteredBox(dst, "PAUSED",
			"Q/Esc - Quit",
			"Space/X/Z - Fire weapon",
			"Tab - Shield",
			"N - Nuke",
			"M - Toggle music",
			"P - Resume",
		)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), hudColor)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, hudColor)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}

// Draw renders the ship, its shield and its shots.
func (s *Ship) Draw(dst *core.Screen, v Viewport, ms int) {
	cx, cy := v.Cell(s.pos)

	switch s.phase {
	case PhaseExploding:
		total := float64(s.a.cfg.Ship.ExplodeTicks)
		t := 1 - float64(s.counter)/total
		c := blend(explodeStart, explodeEnd, t)
		rx, ry := v.Span(s.Radius() * (1.5 + t*0.75))
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				if insideEllipse(dx, dy, rx, ry) && (dx+dy+ms/50)%3 == 0 {
					dst.Put(cx+dx, cy+dy, ExplosionChar, c, core.LayerShip)
				}
			}
		}
	case PhaseSpawning:
		if (ms/150)%2 == 0 {
			drawSprite(dst, cx, cy, spawnColor)
		}
	default:
		drawSprite(dst, cx, cy, shipColor)
		if s.shieldUp {
			s.shield.Draw(dst, v, ms)
		}
	}

	for _, shot := range s.shots {
		shot.Draw(dst, v)
	}
}

func drawSprite(dst *core.Screen, cx, cy int, c core.Color) {
	top := cy - len(shipSprite)/2
	for row, line := range shipSprite {
		runes := []rune(line)
		left := cx - len(runes)/2
		for col, r := range runes {
			if r == ' ' {
				continue
			}
			dst.Put(left+col, top+row, r, c, core.LayerShip)
		}
	}
}
