package bamboo

import (
	"math"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// Contact is a physics report that two bodies touched during a tick.
type Contact struct {
	A, B  EntityID
	Point core.Vec
}

// PhysicsWorld advances the simulation and accepts body commands.
type PhysicsWorld interface {
	Tick(dt float64) []Contact
	ApplyImpulse(id EntityID, impulse core.Vec)
	SetPosition(id EntityID, pos core.Vec)
}

// Damper is implemented by physics worlds that support linear damping.
type Damper interface {
	SetDamping(id EntityID, damping float64)
}

// BodyRemover is implemented by physics worlds that keep their own bodies.
type BodyRemover interface {
	RemoveBody(id EntityID)
}

// PhysicsFactory builds the physics world for a fresh World.
type PhysicsFactory func(w *World, p Profile) PhysicsWorld

// maxStep is the largest sub-step the simulation integrates at once.
const maxStep = 1.0 / 120

// Simulation is the built-in arena physics: zero gravity, perfectly
// elastic bounces, a circular ball against the arena edges and boxes.
// Bodies are the World's entities; velocities live on the entities.
type Simulation struct {
	world   *World
	mask    CategoryMask
	damping map[EntityID]float64
}

var (
	_ PhysicsWorld = (*Simulation)(nil)
	_ Damper       = (*Simulation)(nil)
	_ BodyRemover  = (*Simulation)(nil)
)

// NewSimulation creates the physics for w. Contacts are reported only for
// categories in the profile's mask; bounces happen regardless.
func NewSimulation(w *World, p Profile) PhysicsWorld {
	return &Simulation{
		world:   w,
		mask:    p.Mask,
		damping: make(map[EntityID]float64),
	}
}

// Tick advances the simulation by dt in fixed sub-steps and returns the
// contacts that began, in order.
func (s *Simulation) Tick(dt float64) []Contact {
	if dt <= 0 {
		return nil
	}
	steps := int(math.Ceil(dt / maxStep))
	h := dt / float64(steps)

	var contacts []Contact
	for range steps {
		contacts = s.step(h, contacts)
	}
	return contacts
}

func (s *Simulation) step(h float64, contacts []Contact) []Contact {
	ball := s.world.Ball()
	if ball == nil {
		return contacts
	}

	if d := s.damping[ball.ID]; d > 0 {
		ball.Velocity = ball.Velocity.Scale(math.Max(0, 1-d*h))
	}
	ball.Pos = ball.Pos.Add(ball.Velocity.Scale(h))

	contacts = s.collideEdges(ball, contacts)
	for _, e := range s.world.Entities() {
		if e.Category != CategoryPaddle && e.Category != CategoryBlock {
			continue
		}
		contacts = s.collideBox(ball, e, contacts)
	}
	return contacts
}

// collideEdges bounces the ball off the arena edges. The bottom edge is
// reported as the bottom sensor, the others as the border.
func (s *Simulation) collideEdges(ball *Entity, contacts []Contact) []Contact {
	r := ball.Size.X / 2
	w, h := s.world.Width(), s.world.Height()

	if ball.Pos.X-r < 0 {
		ball.Pos.X = r
		if ball.Velocity.X < 0 {
			ball.Velocity.X = -ball.Velocity.X
			contacts = s.report(contacts, ball, s.world.Border(), core.V(0, ball.Pos.Y))
		}
	}
	if ball.Pos.X+r > w {
		ball.Pos.X = w - r
		if ball.Velocity.X > 0 {
			ball.Velocity.X = -ball.Velocity.X
			contacts = s.report(contacts, ball, s.world.Border(), core.V(w, ball.Pos.Y))
		}
	}
	if ball.Pos.Y+r > h {
		ball.Pos.Y = h - r
		if ball.Velocity.Y > 0 {
			ball.Velocity.Y = -ball.Velocity.Y
			contacts = s.report(contacts, ball, s.world.Border(), core.V(ball.Pos.X, h))
		}
	}
	if ball.Pos.Y-r < 0 {
		ball.Pos.Y = r
		if ball.Velocity.Y < 0 {
			ball.Velocity.Y = -ball.Velocity.Y
			contacts = s.report(contacts, ball, s.world.Bottom(), core.V(ball.Pos.X, 0))
		}
	}
	return contacts
}

// collideBox separates the ball from box e and reflects its velocity.
func (s *Simulation) collideBox(ball, e *Entity, contacts []Contact) []Contact {
	r := ball.Size.X / 2
	box := e.Bounds()
	closest := box.ClosestPoint(ball.Pos)
	d := ball.Pos.Sub(closest)
	dist := d.Len()
	if dist > r {
		return contacts
	}

	var n core.Vec
	if dist == 0 {
		n = insideNormal(box, ball.Pos)
	} else {
		n = d.Scale(1 / dist)
	}
	ball.Pos = closest.Add(n.Scale(r))

	vn := ball.Velocity.Dot(n)
	if vn >= 0 {
		return contacts
	}
	ball.Velocity = ball.Velocity.Sub(n.Scale(2 * vn))
	return s.report(contacts, ball, e, closest)
}

// insideNormal picks the exit direction for a ball center inside a box:
// the axis with the least penetration.
func insideNormal(b core.Box, p core.Vec) core.Vec {
	lo, hi := b.Min(), b.Max()
	left, right := p.X-lo.X, hi.X-p.X
	down, up := p.Y-lo.Y, hi.Y-p.Y
	switch min(left, right, down, up) {
	case left:
		return core.V(-1, 0)
	case right:
		return core.V(1, 0)
	case down:
		return core.V(0, -1)
	default:
		return core.V(0, 1)
	}
}

func (s *Simulation) report(contacts []Contact, ball, other *Entity, point core.Vec) []Contact {
	if other == nil || !s.mask.Has(other.Category) {
		return contacts
	}
	return append(contacts, Contact{A: ball.ID, B: other.ID, Point: point})
}

// ApplyImpulse changes a dynamic body's velocity. Bodies have unit mass.
func (s *Simulation) ApplyImpulse(id EntityID, impulse core.Vec) {
	if e, ok := s.world.Get(id); ok && e.Dynamic {
		e.Velocity = e.Velocity.Add(impulse)
	}
}

// SetPosition moves a body.
func (s *Simulation) SetPosition(id EntityID, pos core.Vec) {
	if e, ok := s.world.Get(id); ok {
		e.Pos = pos
	}
}

// SetDamping sets a body's linear damping per second.
func (s *Simulation) SetDamping(id EntityID, damping float64) {
	s.damping[id] = damping
}

// RemoveBody forgets per-body state. The body itself is read from the World.
func (s *Simulation) RemoveBody(id EntityID) {
	delete(s.damping, id)
}
