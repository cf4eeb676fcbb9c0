// Package bots contains the built-in autoplay strategies. Each one registers
// itself with the registry in init().
package bots

import (
	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

func init() {
	registry.Register("idle", func() registry.Bot {
		return Idle{}
	})
}

// Idle never presses anything; gravity plays the game.
type Idle struct{}

func (Idle) Name() string        { return "idle" }
func (Idle) Description() string { return "Never moves, pieces stack where they spawn" }
func (Idle) Reset(int64)         {}

func (Idle) Decide(*tetris.Board) core.InputFrame {
	return core.InputFrame{}
}
