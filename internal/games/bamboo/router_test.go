package bamboo

import (
	"math"
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

func TestRouterDownStartsAndDrags(t *testing.T) {
	h := newHarness(t, "")
	// Far outside the arena still counts as a tap after clamping
	h.frame(nil, Down(core.V(-500, 9000)))

	if h.session.State() != Playing() {
		t.Fatalf("state = %s, want Playing", h.session.State())
	}
	if !h.session.Dragging() {
		t.Error("tap that starts the game should also begin a drag")
	}

	h.frame(nil, Up())
	if h.session.Dragging() {
		t.Error("up should clear dragging")
	}
}

func TestRouterPlayingDownOnPaddleOnly(t *testing.T) {
	h := newHarness(t, "")
	h.tap()
	paddle := h.session.World().Paddle()

	h.frame(nil, Down(core.V(paddle.Pos.X+200, 500)))
	if h.session.Dragging() {
		t.Error("down away from the paddle should not drag")
	}
	x := paddle.Pos.X
	h.frame(nil, Move(core.V(100, 500), core.V(150, 500)))
	if paddle.Pos.X != x {
		t.Errorf("paddle moved to %v without a drag", paddle.Pos.X)
	}

	h.frame(nil, Down(paddle.Pos))
	if !h.session.Dragging() {
		t.Error("down on the paddle should drag")
	}
	h.frame(nil, Move(core.V(100, 60), core.V(130, 400)))
	if got := paddle.Pos.X; got != x+30 {
		t.Errorf("paddle x = %v, want %v", got, x+30)
	}
	if got := paddle.Pos.Y; got != config.DefaultBambooConfig().Paddle.Y {
		t.Errorf("paddle y changed to %v", got)
	}
	if last := h.physics.moves[len(h.physics.moves)-1]; last.X != x+30 {
		t.Errorf("physics paddle position = %+v, want x=%v", last, x+30)
	}
}

func TestRouterPaddleClamp(t *testing.T) {
	h := newHarness(t, "")
	h.tap()
	w := h.session.World()
	paddle := w.Paddle()
	half := paddle.Size.X / 2

	deltas := []float64{-10000, 35, 1e9, -3, 250, -250, 599, math.Inf(1), -1}
	h.frame(nil, Down(paddle.Pos))
	for _, d := range deltas {
		h.frame(nil, Move(core.V(300, 100), core.V(300+d, 100)))
		if x := paddle.Pos.X; x < half || x > w.Width()-half {
			t.Errorf("after delta %v paddle x = %v, outside [%v, %v]", d, x, half, w.Width()-half)
		}
	}

	h.frame(nil, Move(core.V(0, 0), core.V(w.Width(), 0)))
	if paddle.Pos.X != w.Width()-half {
		t.Errorf("paddle x = %v, want right edge %v", paddle.Pos.X, w.Width()-half)
	}
}

func TestRouterDropsNonFinitePositions(t *testing.T) {
	h := newHarness(t, "")
	h.tap()
	w := h.session.World()
	paddle := w.Paddle()
	half := paddle.Size.X / 2
	nan, inf := math.NaN(), math.Inf(1)

	h.frame(nil, Down(paddle.Pos))
	x := paddle.Pos.X
	moves := []PointerEvent{
		Move(paddle.Pos, core.V(nan, 60)),
		Move(core.V(nan, 60), paddle.Pos),
		Move(paddle.Pos, core.V(inf, 60)),
		Move(core.V(-inf, 60), paddle.Pos),
		Move(paddle.Pos, core.V(300, nan)),
		Nudge(nan),
		Nudge(-inf),
	}
	for _, ev := range moves {
		h.frame(nil, ev)
		if paddle.Pos.X != x {
			t.Errorf("%+v moved paddle to %v, want %v", ev, paddle.Pos.X, x)
		}
	}

	// A non-finite down neither starts nor cancels the drag
	h.frame(nil, Down(core.V(nan, nan)))
	if !h.session.Dragging() {
		t.Error("NaN down cancelled the drag")
	}
	h.frame(nil, Move(core.V(100, 60), core.V(120, 60)))
	if got := paddle.Pos.X; got != x+20 || got < half || got > w.Width()-half {
		t.Errorf("paddle x = %v after finite move, want %v", got, x+20)
	}
	for _, m := range h.physics.moves {
		if !m.Finite() {
			t.Fatalf("physics received paddle position %+v", m)
		}
	}
}

func TestRouterNudgeKeepsDrag(t *testing.T) {
	h := newHarness(t, "")
	paddle := h.session.World().Paddle()
	x := paddle.Pos.X
	h.frame(nil, Nudge(20))
	if paddle.Pos.X != x {
		t.Errorf("nudge moved paddle to %v while waiting", paddle.Pos.X)
	}

	h.tap()
	h.frame(nil, Down(paddle.Pos))
	h.frame(nil, Nudge(20), Nudge(-5))
	if got := paddle.Pos.X; got != x+15 {
		t.Errorf("paddle x = %v, want %v", got, x+15)
	}
	if !h.session.Dragging() {
		t.Fatal("nudge ended the drag")
	}
	h.frame(nil, Move(core.V(100, 60), core.V(110, 60)))
	if got := paddle.Pos.X; got != x+25 {
		t.Errorf("paddle x = %v after drag, want %v", got, x+25)
	}

	h.frame(nil, Up())
	h.frame(nil, Nudge(-25))
	if got := paddle.Pos.X; got != x {
		t.Errorf("nudge without drag: paddle x = %v, want %v", got, x)
	}
}

func TestRouterMoveIgnoredWhileWaiting(t *testing.T) {
	h := newHarness(t, "")
	paddle := h.session.World().Paddle()
	x := paddle.Pos.X
	h.frame(nil, Move(core.V(0, 0), core.V(200, 0)))
	if paddle.Pos.X != x {
		t.Errorf("paddle moved to %v while waiting", paddle.Pos.X)
	}
}
