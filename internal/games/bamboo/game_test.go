package bamboo

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(testRuntime())
	if g.Session() == nil {
		t.Fatal("Reset did not create a session")
	}
	return g
}

func tapFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionTap)
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{GameID, GameIDBasic} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameProfiles(t *testing.T) {
	tests := []struct {
		game   *Game
		blocks int
	}{
		{New(), 16},
		{NewBasic(), 8},
		{NewWithProfile("basic"), 8},
		{NewWithProfile("enhanced"), 16},
		{NewWithProfile("missing"), 16}, // falls back to the default profile
	}
	for _, tt := range tests {
		g := newTestGame(t, tt.game)
		if got := g.Session().World().Count(CategoryBlock); got != tt.blocks {
			t.Errorf("%s: blocks = %d, want %d", g.ID(), got, tt.blocks)
		}
	}
}

func TestGameTapStartsAndRenders(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "TAP TO PLAY") {
		t.Error("new session should show the tap-to-play prompt")
	}
	if screen.Get(0, 1) != '┌' {
		t.Errorf("arena border missing, got %q", screen.Get(0, 1))
	}
	if !strings.Contains(screen.Row(0), "Blocks: 16/16") {
		t.Errorf("HUD = %q, want block counter", screen.Row(0))
	}

	g.Step(tapFrame())
	if g.Session().State() != Playing() {
		t.Fatalf("state = %s, want Playing", g.Session().State())
	}

	g.Render(screen)
	if strings.Contains(screen.String(), "TAP TO PLAY") {
		t.Error("prompt should disappear once playing")
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball not drawn")
	}
}

func TestGameArrowsOnlyWhilePlaying(t *testing.T) {
	g := newTestGame(t, New())
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.Session().State() != WaitingForTap() {
		t.Fatalf("arrow key changed state to %s", g.Session().State())
	}

	g.Step(tapFrame())
	paddle := g.Session().World().Paddle()
	x := paddle.Pos.X
	g.Step(in)
	if paddle.Pos.X <= x {
		t.Errorf("right arrow: paddle x = %v, want > %v", paddle.Pos.X, x)
	}
	if g.Session().Dragging() {
		t.Error("arrow key should not start a drag")
	}
}

func TestGameKeysKeepMouseDrag(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(tapFrame())

	paddle := g.Session().World().Paddle()
	cx, cy := g.view.cellX(paddle.Pos.X), g.view.cellY(paddle.Pos.Y)
	in := core.NewInputFrame()
	in.AddPointer(core.Pointer{Kind: core.PointerPress, X: cx, Y: cy})
	g.Step(in)
	if !g.Session().Dragging() {
		t.Fatal("press on the paddle should drag")
	}

	for _, action := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionTap} {
		in = core.NewInputFrame()
		in.Set(action)
		g.Step(in)
		if !g.Session().Dragging() {
			t.Fatalf("action %v ended the mouse drag", action)
		}
	}

	x := paddle.Pos.X
	in = core.NewInputFrame()
	in.AddPointer(core.Pointer{Kind: core.PointerDrag, X: cx + 10, Y: cy})
	g.Step(in)
	if paddle.Pos.X <= x {
		t.Errorf("paddle x = %v, want > %v after dragging right", paddle.Pos.X, x)
	}
}

func TestGameMouseDrag(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(tapFrame())

	paddle := g.Session().World().Paddle()
	start := paddle.Pos.X
	cx, cy := g.view.cellX(paddle.Pos.X), g.view.cellY(paddle.Pos.Y)

	in := core.NewInputFrame()
	in.AddPointer(core.Pointer{Kind: core.PointerPress, X: cx, Y: cy})
	in.AddPointer(core.Pointer{Kind: core.PointerDrag, X: cx + 10, Y: cy})
	g.Step(in)

	if paddle.Pos.X <= start {
		t.Errorf("paddle x = %v, want > %v after dragging right", paddle.Pos.X, start)
	}

	in = core.NewInputFrame()
	in.AddPointer(core.Pointer{Kind: core.PointerRelease, X: cx + 10, Y: cy})
	g.Step(in)
	if g.Session().Dragging() {
		t.Error("release should stop dragging")
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 8
	g.Reset(rt)

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Step(tapFrame())
	if g.Session().State() != WaitingForTap() {
		t.Error("game should not advance while the window is too small")
	}

	g.Resize(80, 24)
	g.Step(tapFrame())
	if g.Session().State() != Playing() {
		t.Errorf("state after resize = %s, want Playing", g.Session().State())
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(80, 24, core.V(600, 800))
	cellW := 600.0 / float64(v.inner.W)
	cellH := 800.0 / float64(v.inner.H)

	for _, p := range []core.Vec{{X: 0, Y: 0}, {X: 300, Y: 400}, {X: 599, Y: 799}, {X: 12.5, Y: 640}} {
		back := v.toArena(v.cellX(p.X), v.cellY(p.Y))
		if math.Abs(back.X-p.X) > cellW || math.Abs(back.Y-p.Y) > cellH {
			t.Errorf("round trip %+v -> %+v, off by more than one cell", p, back)
		}
	}

	if !v.inner.Contains(v.cellX(-50), v.cellY(5000)) {
		t.Error("out-of-arena points should clamp into the inner area")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, New())
		for i := range 300 {
			in := core.NewInputFrame()
			switch {
			case i == 10:
				in.Set(core.ActionTap)
			case i > 10 && i%5 < 3:
				in.Set(core.ActionRight)
			case i > 10:
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}
		return g.Session().Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
}
