package bamboo

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// PresentationSink executes the commands that only affect what the player
// sees and hears.
type PresentationSink interface {
	PlaySound(id SoundID)
	SpawnParticle(effect EffectID, point core.Vec)
	RemoveEntity(id EntityID)
	ShowEndScreen(won bool)
	PresentNewSession()
}

// StateListener is implemented by sinks that want transition-state commands.
type StateListener interface {
	StateChanged(s State)
}

// InputSource is the ordered pointer input of one frame.
type InputSource = iter.Seq[PointerEvent]

// Options configures a Session.
type Options struct {
	Config  config.BambooConfig
	Profile string // Empty selects Config.DefaultProfile
	Seed    int64
	Sink    PresentationSink // nil discards presentation commands
	Physics PhysicsFactory   // nil uses NewSimulation
	Logger  *log.Logger      // nil discards logs
}

// Session is one player's game: world, state machine, rules and input
// routing, driven one frame at a time. It is not safe for concurrent use.
type Session struct {
	cfg        config.BambooConfig
	profile    Profile
	sink       PresentationSink
	newPhysics PhysicsFactory
	logger     *log.Logger
	rng        *RNG
	rules      Rules

	w       *World
	m       *Machine
	physics PhysicsWorld
	router  *Router

	pending []Command
	tick    uint64
	resets  int
}

// NewSession builds a session in WaitingForTap and flushes its entry
// commands to the sink.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("bamboo: %w", err)
	}
	profile, err := ResolveProfile(opts.Config, opts.Profile)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        opts.Config,
		profile:    profile,
		sink:       opts.Sink,
		newPhysics: opts.Physics,
		logger:     opts.Logger,
		rng:        NewRNG(opts.Seed),
		rules:      NewRules(profile),
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.newPhysics == nil {
		s.newPhysics = NewSimulation
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.install()
	s.logger.Debug("session created", "profile", profile.Name, "blocks", profile.TotalBlocks(), "seed", opts.Seed)
	return s, nil
}

// install swaps in a fresh world, machine, physics and router at once,
// then flushes the entry commands of the new machine.
func (s *Session) install() {
	w := NewWorld(s.cfg, s.profile)
	m, cmds := NewMachine(w, s.profile, s.rng)
	physics := s.newPhysics(w, s.profile)

	s.w, s.m, s.physics, s.router = w, m, physics, &Router{}

	s.emit(cmds...)
	s.flush()
}

// Frame advances the session by dt seconds: physics, collisions, the
// state's update hook, then input, then one flush of all commands.
func (s *Session) Frame(dt float64, input InputSource) {
	s.tick++

	for _, c := range s.physics.Tick(dt) {
		s.handleContact(c)
	}

	s.emit(s.m.Update(dt)...)

	if input != nil {
		for ev := range input {
			// The router may be replaced by a reset mid-frame
			s.router.Route(ev, s)
		}
	}

	s.flush()
}

// handleContact classifies one contact and applies its effect before the
// next contact is looked at.
func (s *Session) handleContact(c Contact) {
	a, okA := s.w.Get(c.A)
	b, okB := s.w.Get(c.B)
	if !okA || !okB {
		return
	}
	if !s.m.AcceptsCollisions() {
		return
	}

	ev := Classify(a, b, c.Point)
	eff := s.rules.Resolve(s.m.State(), ev, s.w)
	s.emit(eff.Commands...)
	if eff.Next != nil {
		s.request(*eff.Next)
	}
}

// Reset discards the current world and starts a new session in
// WaitingForTap. Pending commands are flushed first.
func (s *Session) Reset() {
	s.flush()
	s.resets++
	s.logger.Debug("session reset", "resets", s.resets, "tick", s.tick)
	s.install()
}

// Tap simulates a tap at the arena center.
func (s *Session) Tap() {
	center := s.w.Size().Scale(0.5)
	s.router.Route(Down(center), s)
	s.router.Route(Up(), s)
	s.flush()
}

// State returns the current game state.
func (s *Session) State() State { return s.m.State() }

// World returns the current world. It is replaced on reset.
func (s *Session) World() *World { return s.w }

// Profile returns the session's profile.
func (s *Session) Profile() Profile { return s.profile }

// Tick returns the number of frames run.
func (s *Session) Tick() uint64 { return s.tick }

// Resets returns how many times the session was reset.
func (s *Session) Resets() int { return s.resets }

// Score returns the number of blocks destroyed in the current world.
func (s *Session) Score() int {
	return s.profile.TotalBlocks() - s.w.Count(CategoryBlock)
}

// Dragging reports whether the paddle is being dragged.
func (s *Session) Dragging() bool { return s.router.Dragging() }

// routeTarget implementation.

func (s *Session) machine() *Machine { return s.m }
func (s *Session) world() *World     { return s.w }

func (s *Session) request(next State) bool {
	from := s.m.State()
	cmds, ok := s.m.Request(next)
	if !ok {
		s.logger.Debug("transition rejected", "from", from, "to", next)
		return false
	}
	s.logger.Debug("transition", "from", from, "to", next, "tick", s.tick)
	s.emit(cmds...)
	return true
}

func (s *Session) reset() { s.Reset() }

func (s *Session) emit(cmds ...Command) {
	s.pending = append(s.pending, cmds...)
}

// flush hands pending commands to the physics world and the sink in
// emission order.
func (s *Session) flush() {
	cmds := s.pending
	s.pending = nil
	for _, c := range cmds {
		if c.isPhysics() {
			s.applyPhysics(c)
		}
		s.present(c)
	}
}

func (s *Session) applyPhysics(c Command) {
	switch c.Kind {
	case CmdApplyImpulse:
		s.physics.ApplyImpulse(c.Entity, c.Impulse)
	case CmdSetPaddlePosition:
		if p, ok := s.w.Get(c.Entity); ok {
			s.physics.SetPosition(c.Entity, core.V(c.X, p.Pos.Y))
		}
	case CmdSetDamping:
		if d, ok := s.physics.(Damper); ok {
			d.SetDamping(c.Entity, c.Damping)
		}
	case CmdRemoveEntity:
		if r, ok := s.physics.(BodyRemover); ok {
			r.RemoveBody(c.Entity)
		}
	}
}

func (s *Session) present(c Command) {
	switch c.Kind {
	case CmdPlaySound:
		s.sink.PlaySound(c.Sound)
	case CmdSpawnParticle:
		s.sink.SpawnParticle(c.Effect, c.Point)
	case CmdRemoveEntity:
		s.sink.RemoveEntity(c.Entity)
	case CmdShowEndScreen:
		s.sink.ShowEndScreen(c.State.Outcome.Won)
	case CmdPresentNewSession:
		s.sink.PresentNewSession()
	case CmdTransitionState:
		if l, ok := s.sink.(StateListener); ok {
			l.StateChanged(c.State)
		}
	}
}

type nopSink struct{}

func (nopSink) PlaySound(SoundID)                {}
func (nopSink) SpawnParticle(EffectID, core.Vec) {}
func (nopSink) RemoveEntity(EntityID)            {}
func (nopSink) ShowEndScreen(bool)               {}
func (nopSink) PresentNewSession()               {}
