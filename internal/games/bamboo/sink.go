package bamboo

import (
	"github.com/vovakirdan/bamboo-breakout/internal/audio"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

const (
	particleLife = 1.0  // Seconds a break effect stays visible
	captionLife  = 0.75 // Seconds a sound caption stays in the HUD
	trailLength  = 6    // Ball positions kept for the snow trail
)

type particle struct {
	effect EffectID
	origin core.Vec
	age    float64
}

// terminalSink executes presentation commands for the terminal renderer.
// It keeps only what the renderer needs; it never touches game state.
type terminalSink struct {
	player audio.Player

	particles  []particle
	caption    string
	captionTTL float64

	tapToPlay bool
	endScreen bool
	won       bool
	trail     bool
	broken    int
}

var (
	_ PresentationSink = (*terminalSink)(nil)
	_ StateListener    = (*terminalSink)(nil)
)

func newTerminalSink(player audio.Player) *terminalSink {
	if player == nil {
		player = audio.Silent{}
	}
	return &terminalSink{player: player}
}

func (s *terminalSink) PlaySound(id SoundID) {
	s.caption = "♪ " + string(id)
	s.captionTTL = captionLife
	s.player.Play(string(id))
}

func (s *terminalSink) SpawnParticle(effect EffectID, point core.Vec) {
	if effect == EffectSnowTrail {
		s.trail = true
		return
	}
	s.particles = append(s.particles, particle{effect: effect, origin: point})
}

func (s *terminalSink) RemoveEntity(EntityID) {
	s.broken++
}

func (s *terminalSink) ShowEndScreen(won bool) {
	s.endScreen = true
	s.won = won
	s.trail = false
}

func (s *terminalSink) PresentNewSession() {
	*s = terminalSink{player: s.player, tapToPlay: true}
}

func (s *terminalSink) StateChanged(st State) {
	if st.Kind == StatePlaying {
		s.tapToPlay = false
	}
}

// Advance ages particles and captions by dt seconds.
func (s *terminalSink) Advance(dt float64) {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.age += dt
		if p.age < particleLife {
			alive = append(alive, p)
		}
	}
	s.particles = alive

	if s.captionTTL > 0 {
		s.captionTTL -= dt
		if s.captionTTL <= 0 {
			s.caption = ""
		}
	}
}
