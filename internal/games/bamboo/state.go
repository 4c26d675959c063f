package bamboo

import "fmt"

// StateKind enumerates the game states. The zero value is WaitingForTap.
type StateKind uint8

const (
	StateWaitingForTap StateKind = iota
	StatePlaying
	StateGameOver
)

func (k StateKind) String() string {
	switch k {
	case StateWaitingForTap:
		return "WaitingForTap"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("StateKind(%d)", uint8(k))
	}
}

// Outcome is the result of a finished session.
type Outcome struct {
	Won bool
}

// State is the current game state. Outcome is meaningful only in GameOver.
type State struct {
	Kind    StateKind
	Outcome Outcome
}

// WaitingForTap returns the initial state.
func WaitingForTap() State { return State{Kind: StateWaitingForTap} }

// Playing returns the in-play state.
func Playing() State { return State{Kind: StatePlaying} }

// GameOver returns the terminal state with the given outcome.
func GameOver(won bool) State {
	return State{Kind: StateGameOver, Outcome: Outcome{Won: won}}
}

func (s State) String() string {
	if s.Kind == StateGameOver {
		if s.Outcome.Won {
			return "GameOver(won)"
		}
		return "GameOver(lost)"
	}
	return s.Kind.String()
}
