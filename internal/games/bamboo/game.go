// Package bamboo implements Bamboo Breakout: a ball bounces inside a
// bordered arena, the player drags a paddle to deflect it, and blocks
// break on contact.
//
// The core is a frame-driven Session: physics contacts are classified by
// category, resolved by rules gated on the game state, and turned into
// commands for the physics world and a presentation sink. Game adapts a
// Session to the terminal platform.
package bamboo

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bamboo-breakout/internal/audio"
	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/registry"
)

// Game IDs registered with the platform.
const (
	GameID      = "bamboo"
	GameIDBasic = "bamboo_basic"
)

// keyNudgeSteps is how many arrow presses cross the arena.
const keyNudgeSteps = 30

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session debug logs; discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// player receives sounds; silent unless SetAudio is called.
var player audio.Player = audio.Silent{}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetAudio sets the sound player used by new games.
func SetAudio(p audio.Player) {
	if p == nil {
		p = audio.Silent{}
	}
	player = p
}

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: "Bamboo Breakout"},
		func() registry.Game { return New() })
	registry.Register(registry.GameInfo{ID: GameIDBasic, Title: "Bamboo Breakout (Basic)", Profile: config.ProfileBasic},
		func() registry.Game { return NewBasic() })
}

// Game adapts a Session to the terminal platform.
type Game struct {
	id      string
	title   string
	profile string

	runtime core.RuntimeConfig
	session *Session
	sink    *terminalSink
	view    viewport

	pointer core.Vec   // Last pointer position in arena space
	trail   []core.Vec // Recent ball positions, newest last

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates the game with the configured default profile.
func New() *Game {
	return &Game{id: GameID, title: "Bamboo Breakout"}
}

// NewBasic creates the game with the basic profile.
func NewBasic() *Game {
	return &Game{id: GameIDBasic, title: "Bamboo Breakout (Basic)", profile: config.ProfileBasic}
}

// NewWithProfile creates the game with a named profile.
func NewWithProfile(profile string) *Game {
	if profile == config.ProfileBasic {
		return NewBasic()
	}
	g := New()
	g.profile = profile
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Session returns the running session.
func (g *Game) Session() *Session { return g.session }

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBamboo(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultBambooConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBambooPreset(&cfg, difficultyPreset)
	}

	g.sink = newTerminalSink(player)
	opts := Options{
		Config:  cfg,
		Profile: g.profile,
		Seed:    runtime.Seed,
		Sink:    g.sink,
		Logger:  logger,
	}
	session, err := NewSession(opts)
	if err != nil {
		logger.Warn("session setup failed, using default profile", "profile", g.profile, "err", err)
		opts.Config = config.DefaultBambooConfig()
		opts.Profile = ""
		session, _ = NewSession(opts) // defaults always validate
	}
	g.session = session
	g.trail = g.trail[:0]

	g.minScreenW = 30
	g.minScreenH = 12
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the viewport to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
	if g.session != nil {
		g.view = newViewport(w, h, g.session.World().Size())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickSeconds()
	g.session.Frame(dt, slices.Values(g.pointerEvents(in)))
	g.sink.Advance(dt)
	g.recordTrail()

	return core.StepResult{State: g.State()}
}

// pointerEvents converts a platform input frame into arena pointer events.
func (g *Game) pointerEvents(in core.InputFrame) []PointerEvent {
	var events []PointerEvent
	for _, p := range in.Pointers {
		pos := g.view.toArena(p.X, p.Y)
		switch p.Kind {
		case core.PointerPress:
			events = append(events, Down(pos))
		case core.PointerDrag:
			events = append(events, Move(g.pointer, pos))
		case core.PointerRelease:
			events = append(events, Up())
		}
		g.pointer = pos
	}

	// A keyboard tap only starts or restarts a session.
	w := g.session.World()
	playing := g.session.State().Kind == StatePlaying
	if in.Has(core.ActionTap) && !playing {
		events = append(events, Down(w.Size().Scale(0.5)), Up())
	}

	// Arrow keys nudge the paddle, but only while playing so they never
	// start or restart a session.
	if playing {
		step := w.Width() / keyNudgeSteps
		if in.Has(core.ActionLeft) {
			events = append(events, Nudge(-step))
		}
		if in.Has(core.ActionRight) {
			events = append(events, Nudge(step))
		}
	}
	return events
}

func (g *Game) recordTrail() {
	if !g.sink.trail {
		g.trail = g.trail[:0]
		return
	}
	g.trail = append(g.trail, g.session.World().Ball().Pos)
	if len(g.trail) > trailLength {
		g.trail = g.trail[len(g.trail)-trailLength:]
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: st.Kind == StateGameOver,
		Won:      st.Outcome.Won,
	}
}
