// Package registry provides a global registry for autoplay strategies.
// Bots register themselves in init() functions, allowing the CLI and the
// platform loop to discover and instantiate them by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

// ErrUnknownBot is returned by Create for a name nobody registered.
var ErrUnknownBot = errors.New("unknown bot")

// Bot is an autoplay strategy. It looks at the board and returns the input
// for the next tick, the same way a player would press keys.
type Bot interface {
	// Name returns the identifier used on the command line (e.g., "greedy").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Reset prepares the bot for a new game. Bots that use randomness seed
	// it from here so runs stay reproducible.
	Reset(seed int64)

	// Decide returns the actions for the next tick. The board must be
	// treated as read-only; use Clone for lookahead.
	Decide(b *tetris.Board) core.InputFrame
}

// BotInfo contains metadata about a registered bot.
type BotInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a bot.
type Factory func() Bot

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a bot factory to the registry.
// Typically called from a bot's init() function.
// Panics if a bot with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: bot %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered bots, sorted by name.
func List() []BotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BotInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BotInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new bot by its name.
func Create(name string) (Bot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownBot, name)
	}

	return f(), nil
}

// Exists checks if a bot with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
