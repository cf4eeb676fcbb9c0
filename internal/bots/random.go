package bots

import (
	"math/rand"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

func init() {
	registry.Register("random", func() registry.Bot {
		return NewRandom()
	})
}

// Random mashes keys: each decision is one random action or nothing.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random bot seeded with 0.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(0))}
}

func (r *Random) Name() string        { return "random" }
func (r *Random) Description() string { return "Presses a random key each decision" }

// Reset reseeds the bot.
func (r *Random) Reset(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

// Decide picks left, right, rotate, soft drop or hard drop, or nothing.
func (r *Random) Decide(*tetris.Board) core.InputFrame {
	var f core.InputFrame
	switch r.rng.Intn(10) {
	case 0, 1:
		f.Set(core.ActionLeft)
	case 2, 3:
		f.Set(core.ActionRight)
	case 4, 5:
		f.Set(core.ActionRotate)
	case 6:
		f.Set(core.ActionSoftDrop)
	case 7:
		f.Set(core.ActionHardDrop)
	}
	return f
}
