package bamboo

import (
	"math"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// edges lists the only legal transitions. GameOver is left by building a
// new Machine, never by a transition.
var edges = map[StateKind]StateKind{
	StateWaitingForTap: StatePlaying,
	StatePlaying:       StateGameOver,
}

// Machine is the game state machine of one session.
type Machine struct {
	state   State
	world   *World
	profile Profile
	rng     *RNG

	damping float64 // Last damping emitted for the ball
}

// NewMachine enters WaitingForTap and returns the commands of that entry.
func NewMachine(w *World, p Profile, rng *RNG) (*Machine, []Command) {
	m := &Machine{
		state:   WaitingForTap(),
		world:   w,
		profile: p,
		rng:     rng,
	}
	return m, m.onEnter(m.state)
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// CanTransition reports whether next is reachable from the current state.
func (m *Machine) CanTransition(next StateKind) bool {
	to, ok := edges[m.state.Kind]
	return ok && to == next
}

// Request moves to next if the edge is legal. Illegal requests return
// false and leave the machine untouched.
func (m *Machine) Request(next State) ([]Command, bool) {
	if !m.CanTransition(next.Kind) {
		return nil, false
	}
	prev := m.state
	cmds := m.onExit(prev)
	m.state = next
	cmds = append(cmds, TransitionState(next))
	cmds = append(cmds, m.onEnter(next)...)
	return cmds, true
}

// Update runs the per-frame hook of the current state.
func (m *Machine) Update(dt float64) []Command {
	switch m.state.Kind {
	case StatePlaying:
		return m.updatePlaying()
	default:
		return nil
	}
}

// AcceptsTap reports whether a pointer down advances the game.
func (m *Machine) AcceptsTap() bool {
	return m.state.Kind == StateWaitingForTap || m.state.Kind == StateGameOver
}

// AcceptsCollisions reports whether collision rules are applied.
func (m *Machine) AcceptsCollisions() bool {
	return m.state.Kind == StatePlaying
}

// AcceptsDrag reports whether pointer moves reposition the paddle.
func (m *Machine) AcceptsDrag() bool {
	return m.state.Kind == StatePlaying
}

func (m *Machine) onEnter(s State) []Command {
	ball := m.world.Ball()
	switch s.Kind {
	case StateWaitingForTap:
		return []Command{PresentNewSession()}

	case StatePlaying:
		f := m.profile.Ball.LaunchImpulse
		impulse := core.V(m.rng.Sign()*f, m.rng.Sign()*f)
		return []Command{
			ApplyImpulse(ball.ID, impulse),
			SpawnParticle(EffectSnowTrail, ball.Pos),
		}

	case StateGameOver:
		var cmds []Command
		if m.profile.Sounds {
			if s.Outcome.Won {
				cmds = append(cmds, PlaySound(SoundGameWon))
			} else {
				cmds = append(cmds, PlaySound(SoundGameOver))
			}
		}
		m.damping = 1
		return append(cmds, ShowEndScreen(s.Outcome.Won), SetDamping(ball.ID, 1))
	}
	return nil
}

func (m *Machine) onExit(State) []Command {
	return nil
}

// updatePlaying keeps the ball moving on both axes and caps its speed.
func (m *Machine) updatePlaying() []Command {
	ball := m.world.Ball()
	cfg := m.profile.Ball
	v := ball.Velocity

	var cmds []Command
	if math.Abs(v.X) <= cfg.MinAxisSpeed {
		cmds = append(cmds, ApplyImpulse(ball.ID, core.V(m.rng.Sign()*cfg.NudgeImpulse, 0)))
	}
	if math.Abs(v.Y) <= cfg.MinAxisSpeed {
		cmds = append(cmds, ApplyImpulse(ball.ID, core.V(0, m.rng.Sign()*cfg.NudgeImpulse)))
	}

	damping := 0.0
	if v.Len() > cfg.MaxSpeed {
		damping = cfg.OverspeedDamping
	}
	if damping != m.damping {
		m.damping = damping
		cmds = append(cmds, SetDamping(ball.ID, damping))
	}
	return cmds
}
