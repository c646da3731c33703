// Package registry maps game ids to factories. Each game mode registers
// itself in init(), and the CLI and menus look modes up by id.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/apples/internal/core"
)

// Game is what a frontend drives: it feeds input and elapsed time to Step
// and draws from Scene or Render. Implementations hold no frontend state.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "apples").
	ID() string

	// Title returns a human-readable name for display (e.g., "Apples Game").
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the frontend surface size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame of dt seconds.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Scene returns the drawable primitives for the current state.
	Scene() core.Scene

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. Called from a game's init().
// Panics on an empty id or a duplicate registration.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
