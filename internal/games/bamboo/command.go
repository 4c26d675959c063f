package bamboo

import (
	"fmt"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// SoundID names a sound the presentation layer can play.
type SoundID string

const (
	SoundBounce   SoundID = "pongblip"
	SoundPaddle   SoundID = "paddleBlip"
	SoundBreak    SoundID = "BambooBreak"
	SoundGameWon  SoundID = "game-won"
	SoundGameOver SoundID = "game-over"
)

// EffectID names a particle effect.
type EffectID string

const (
	EffectBrokenPlatform EffectID = "BrokenPlatform"
	EffectSnowTrail      EffectID = "SnowTrail" // Attached to the ball while playing
)

// CommandKind selects which fields of a Command are meaningful.
type CommandKind uint8

const (
	CmdPlaySound CommandKind = iota + 1
	CmdSpawnParticle
	CmdRemoveEntity
	CmdTransitionState
	CmdSetPaddlePosition
	CmdApplyImpulse
	CmdSetDamping
	CmdShowEndScreen
	CmdPresentNewSession
)

// String returns the kebab-case command name.
func (k CommandKind) String() string {
	switch k {
	case CmdPlaySound:
		return "play-sound"
	case CmdSpawnParticle:
		return "spawn-particle"
	case CmdRemoveEntity:
		return "remove-entity"
	case CmdTransitionState:
		return "transition-state"
	case CmdSetPaddlePosition:
		return "set-paddle-position"
	case CmdApplyImpulse:
		return "apply-impulse"
	case CmdSetDamping:
		return "set-damping"
	case CmdShowEndScreen:
		return "show-end-screen"
	case CmdPresentNewSession:
		return "present-new-session"
	default:
		return fmt.Sprintf("command(%d)", uint8(k))
	}
}

// Command is a side effect emitted by the core and executed by the
// physics world or the presentation sink.
type Command struct {
	Kind    CommandKind
	Entity  EntityID
	Sound   SoundID
	Effect  EffectID
	Point   core.Vec
	Impulse core.Vec
	X       float64
	Damping float64
	State   State
}

// PlaySound builds a play-sound command.
func PlaySound(id SoundID) Command {
	return Command{Kind: CmdPlaySound, Sound: id}
}

// SpawnParticle builds a spawn-particle command at point.
func SpawnParticle(effect EffectID, point core.Vec) Command {
	return Command{Kind: CmdSpawnParticle, Effect: effect, Point: point}
}

// RemoveEntity builds a remove-entity command.
func RemoveEntity(id EntityID) Command {
	return Command{Kind: CmdRemoveEntity, Entity: id}
}

// TransitionState builds a transition-state command.
func TransitionState(s State) Command {
	return Command{Kind: CmdTransitionState, State: s}
}

// SetPaddlePosition builds a set-paddle-position command.
func SetPaddlePosition(id EntityID, x float64) Command {
	return Command{Kind: CmdSetPaddlePosition, Entity: id, X: x}
}

// ApplyImpulse builds an apply-impulse command.
func ApplyImpulse(id EntityID, impulse core.Vec) Command {
	return Command{Kind: CmdApplyImpulse, Entity: id, Impulse: impulse}
}

// SetDamping builds a set-damping command.
func SetDamping(id EntityID, damping float64) Command {
	return Command{Kind: CmdSetDamping, Entity: id, Damping: damping}
}

// ShowEndScreen builds a show-end-screen command.
func ShowEndScreen(won bool) Command {
	return Command{Kind: CmdShowEndScreen, State: GameOver(won)}
}

// PresentNewSession builds a present-new-session command.
func PresentNewSession() Command {
	return Command{Kind: CmdPresentNewSession}
}

func (c Command) String() string {
	switch c.Kind {
	case CmdPlaySound:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Sound)
	case CmdSpawnParticle:
		return fmt.Sprintf("%s(%s @ %.1f,%.1f)", c.Kind, c.Effect, c.Point.X, c.Point.Y)
	case CmdRemoveEntity:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Entity)
	case CmdTransitionState:
		return fmt.Sprintf("%s(%s)", c.Kind, c.State)
	case CmdSetPaddlePosition:
		return fmt.Sprintf("%s(%d, x=%.1f)", c.Kind, c.Entity, c.X)
	case CmdApplyImpulse:
		return fmt.Sprintf("%s(%d, %.1f,%.1f)", c.Kind, c.Entity, c.Impulse.X, c.Impulse.Y)
	case CmdSetDamping:
		return fmt.Sprintf("%s(%d, %.2f)", c.Kind, c.Entity, c.Damping)
	case CmdShowEndScreen:
		return fmt.Sprintf("%s(won=%t)", c.Kind, c.State.Outcome.Won)
	default:
		return c.Kind.String()
	}
}

// isPhysics reports whether the command is executed by the physics world.
func (c Command) isPhysics() bool {
	switch c.Kind {
	case CmdApplyImpulse, CmdSetPaddlePosition, CmdSetDamping, CmdRemoveEntity:
		return true
	}
	return false
}
