package bamboo

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// Visual characters for rendering
const (
	BlockChar    = '█'
	PaddleChar   = '▀'
	BallChar     = '●'
	TrailChar    = '·'
	ParticleChar = '*'
)

// shardDirs are the directions break particles fly in, in cells per second.
var shardDirs = []core.Vec{
	{X: -6, Y: -2}, {X: 6, Y: -2}, {X: -3, Y: 1}, {X: 3, Y: 1}, {X: 0, Y: 2}, {X: -8, Y: 0}, {X: 8, Y: 0},
}

// viewport maps arena points (y up) to screen cells (y down). Row 0 is the
// HUD; the arena box fills the rest of the screen.
type viewport struct {
	box   core.Rect // Outline including the border
	inner core.Rect // Cells showing the arena
	arena core.Vec
}

func newViewport(screenW, screenH int, arena core.Vec) viewport {
	box := core.NewRect(0, 1, screenW, screenH-1)
	return viewport{
		box:   box,
		inner: core.NewRect(box.X+1, box.Y+1, max(box.W-2, 1), max(box.H-2, 1)),
		arena: arena,
	}
}

// cellX returns the column containing arena x.
func (v viewport) cellX(x float64) int {
	c := int(math.Floor(x / v.arena.X * float64(v.inner.W)))
	return v.inner.X + core.Clamp(c, 0, v.inner.W-1)
}

// cellY returns the row containing arena y.
func (v viewport) cellY(y float64) int {
	c := int(math.Floor((v.arena.Y - y) / v.arena.Y * float64(v.inner.H)))
	return v.inner.Y + core.Clamp(c, 0, v.inner.H-1)
}

// toArena returns the arena point at the center of a cell. Cells outside
// the arena map outside it; the router clamps them.
func (v viewport) toArena(cx, cy int) core.Vec {
	x := (float64(cx-v.inner.X) + 0.5) / float64(v.inner.W) * v.arena.X
	y := v.arena.Y - (float64(cy-v.inner.Y)+0.5)/float64(v.inner.H)*v.arena.Y
	return core.V(x, y)
}

// boxCells returns the cells covered by an arena box, at least one cell.
func (v viewport) boxCells(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, x1 := v.cellX(lo.X), v.cellX(hi.X-1e-9)
	y0, y1 := v.cellY(hi.Y-1e-9), v.cellY(lo.Y)
	return core.NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.view.box, core.ColorBorder)
	g.renderBlocks(dst)
	g.renderTrail(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderParticles(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the block counter, profile and last sound caption.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.session.World()
	total := g.session.Profile().TotalBlocks()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Blocks: %d/%d", w.Count(CategoryBlock), total), core.ColorHUD)
	dst.DrawTextCentered(0, g.title, core.ColorBamboo)

	if g.sink.caption != "" {
		caption := []rune(g.sink.caption)
		dst.DrawTextColored(dst.Width()-len(caption)-1, 0, g.sink.caption, core.ColorYellow)
	}
}

// renderBlocks draws remaining blocks, alternating shades so neighbours
// stay distinguishable.
func (g *Game) renderBlocks(dst *core.Screen) {
	for i, b := range g.session.World().Blocks() {
		color := core.ColorBamboo
		if i%2 == 1 {
			color = core.ColorShoot
		}
		dst.DrawRect(g.view.boxCells(b.Bounds()), BlockChar, color)
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	dst.DrawRect(g.view.boxCells(g.session.World().Paddle().Bounds()), PaddleChar, core.ColorPaddle)
}

func (g *Game) renderBall(dst *core.Screen) {
	pos := g.session.World().Ball().Pos
	dst.SetColored(g.view.cellX(pos.X), g.view.cellY(pos.Y), BallChar, core.ColorBall)
}

func (g *Game) renderTrail(dst *core.Screen) {
	for _, p := range g.trail {
		dst.SetColored(g.view.cellX(p.X), g.view.cellY(p.Y), TrailChar, core.ColorWhite)
	}
}

// renderParticles draws break shards flying out from where a block was.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.sink.particles {
		if p.effect != EffectBrokenPlatform {
			continue
		}
		cx, cy := g.view.cellX(p.origin.X), g.view.cellY(p.origin.Y)
		for _, d := range shardDirs {
			x := cx + int(math.Round(d.X*p.age))
			y := cy + int(math.Round(d.Y*p.age))
			if g.view.inner.Contains(x, y) {
				dst.SetColored(x, y, ParticleChar, core.ColorParticle)
			}
		}
	}
}

// renderOverlay draws the tap-to-play prompt and the end screen.
func (g *Game) renderOverlay(dst *core.Screen) {
	midY := g.view.inner.Y + g.view.inner.H/2
	switch {
	case g.sink.endScreen && g.sink.won:
		dst.DrawTextCentered(midY-1, " YOU WON! ", core.ColorWin)
		dst.DrawTextCentered(midY+1, " Click or press Space to play again ", core.ColorDefault)
	case g.sink.endScreen:
		dst.DrawTextCentered(midY-1, " GAME OVER ", core.ColorLose)
		dst.DrawTextCentered(midY+1, " Click or press Space to play again ", core.ColorDefault)
	case g.sink.tapToPlay:
		dst.DrawTextCentered(midY, " TAP TO PLAY ", core.ColorHUD)
		dst.DrawTextCentered(midY+2, " Click or press Space, then drag the paddle ", core.ColorGray)
	}
}
