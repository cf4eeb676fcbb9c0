// Package headless drives a session without a terminal UI. A bot supplies
// the input and ticks run back to back.
package headless

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/session"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

// Options configures a run.
type Options struct {
	// MaxTicks stops the run when reached. Zero means no limit.
	MaxTicks int

	// ThinkEvery is how many ticks pass between bot decisions.
	// The bot is asked on the first tick and then every ThinkEvery ticks.
	ThinkEvery int

	// Logger receives run-level events. Defaults to a discarding logger.
	Logger *log.Logger
}

// Result summarizes one finished run.
type Result struct {
	Ticks    int
	Pieces   int
	Lines    int
	GameOver bool
	Quit     bool
	Drawn    [tetris.NumShapes]int // pieces drawn per shape, indexed by tetris.Shape
}

// Run resets the bot and plays the already reset session until game over,
// quit, MaxTicks or context cancellation. On cancellation it returns the
// partial result together with the context's error.
func Run(ctx context.Context, s *session.Session, bot registry.Bot, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	think := max(opts.ThinkEvery, 1)
	bot.Reset(s.Config().Seed)

	var res Result
	for opts.MaxTicks <= 0 || res.Ticks < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			return Tally(s, res), err
		}

		var in core.InputFrame
		if res.Ticks%think == 0 {
			in = bot.Decide(s.Board())
		}
		step := s.Step(in)
		res.Ticks++

		if step.RowsCleared > 0 {
			logger.Debug("rows cleared", "rows", step.RowsCleared, "tick", res.Ticks)
		}
		if step.Quit {
			res.Quit = true
			break
		}
		if step.State.GameOver() {
			res.GameOver = true
			break
		}
	}

	res = Tally(s, res)
	logger.Info("run finished", "bot", bot.Name(), "ticks", res.Ticks, "pieces", res.Pieces, "lines", res.Lines, "game_over", res.GameOver)
	return res, nil
}

// Tally fills in the counters a run reads back from the session: pieces,
// lines and the per-shape draw counts.
func Tally(s *session.Session, res Result) Result {
	st := s.State()
	res.Pieces = st.Pieces
	res.Lines = st.Lines
	stats := s.Board().Stats()
	for _, shape := range tetris.Shapes() {
		res.Drawn[shape] = stats.Count(shape)
	}
	return res
}
