package bamboo

import "github.com/vovakirdan/bamboo-breakout/internal/core"

// PointerKind is the phase of a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerNudge
)

// PointerEvent is a pointer event in arena coordinates. Prev is the
// previous position and is only used by moves. A nudge shifts the paddle
// by Pos.X without touching the drag state.
type PointerEvent struct {
	Kind PointerKind
	Pos  core.Vec
	Prev core.Vec
}

// Down returns a pointer-down event at p.
func Down(p core.Vec) PointerEvent {
	return PointerEvent{Kind: PointerDown, Pos: p}
}

// Move returns a pointer-move event from one point to another.
func Move(from, to core.Vec) PointerEvent {
	return PointerEvent{Kind: PointerMove, Pos: to, Prev: from}
}

// Up returns a pointer-up event.
func Up() PointerEvent {
	return PointerEvent{Kind: PointerUp}
}

// Nudge returns an event that shifts the paddle horizontally by dx.
func Nudge(dx float64) PointerEvent {
	return PointerEvent{Kind: PointerNudge, Pos: core.V(dx, 0)}
}

// routeTarget is what the router acts on; the Session implements it.
type routeTarget interface {
	machine() *Machine
	world() *World
	request(next State) bool
	reset()
	emit(cmds ...Command)
}

// Router turns pointer events into taps and paddle drags.
type Router struct {
	dragging bool
}

// Dragging reports whether moves currently drag the paddle.
func (r *Router) Dragging() bool {
	return r.dragging
}

// Route applies one pointer event to t. Events carrying NaN or infinite
// coordinates are dropped.
func (r *Router) Route(ev PointerEvent, t routeTarget) {
	switch ev.Kind {
	case PointerDown:
		if ev.Pos.Finite() {
			r.down(t.world().ClampPoint(ev.Pos), t)
		}
	case PointerMove:
		if r.dragging && ev.Pos.Finite() && ev.Prev.Finite() {
			w := t.world()
			r.shift(w.ClampPoint(ev.Pos).X-w.ClampPoint(ev.Prev).X, t)
		}
	case PointerUp:
		r.dragging = false
	case PointerNudge:
		if ev.Pos.Finite() {
			r.shift(ev.Pos.X, t)
		}
	}
}

func (r *Router) down(pos core.Vec, t routeTarget) {
	switch t.machine().State().Kind {
	case StateWaitingForTap:
		if t.request(Playing()) {
			r.dragging = true
		}
	case StatePlaying:
		r.dragging = t.world().Paddle().Bounds().Contains(pos)
	case StateGameOver:
		r.dragging = false
		t.reset()
	}
}

// shift moves the paddle by dx while the machine accepts paddle control.
func (r *Router) shift(dx float64, t routeTarget) {
	if !t.machine().AcceptsDrag() {
		return
	}
	w := t.world()
	paddle := w.Paddle()
	x := w.ClampPaddleX(paddle.Pos.X + dx)
	paddle.Pos.X = x
	t.emit(SetPaddlePosition(paddle.ID, x))
}
