// Package registry maps game ids to factories. Game variants register
// themselves in init(), each tied to the configuration profile it plays,
// so the CLI and the SSH menu can find them by id or by profile.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations hold pure logic with no Bubble Tea dependency; the
// platform handles input mapping, timing and drawing.
type Game interface {
	// ID returns the registered identifier (e.g., "bamboo", "bamboo_basic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game for the given screen, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current platform-facing state.
	State() core.GameState
}

// GameInfo describes a registered game variant.
type GameInfo struct {
	ID      string
	Title   string
	Profile string // Configuration profile the variant plays; empty for the default
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// ErrUnknownGame is returned by Create for ids that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Register adds a game variant. It panics on an empty or duplicate id,
// which can only come from a programming error in an init function.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: game needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered variants, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// ByProfile returns the variant registered for a configuration profile.
// When several match, the lowest id wins.
func ByProfile(profile string) (GameInfo, bool) {
	for _, info := range List() {
		if info.Profile == profile {
			return info, true
		}
	}
	return GameInfo{}, false
}
