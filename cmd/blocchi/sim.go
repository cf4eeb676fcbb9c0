package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocchi/internal/config"
	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/platform/headless"
	"github.com/vovakirdan/blocchi/internal/platform/tui"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/session"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

var (
	flagBot        string
	flagGames      int
	flagMaxTicks   int
	flagThinkEvery int
	flagRealtime   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let a bot play and print a summary",
	Long: `Runs one or more headless games driven by an autoplay bot and prints
how many pieces were placed and rows cleared.

Each game gets its own seed: --seed plus the game's index. With --seed 0 the
base seed comes from the clock.

With --realtime each game is paced at the tick rate and drawn in the
terminal as it plays. Press p to pause and q to stop.

Examples:
  blocchi sim
  blocchi sim --bot random --games 20
  blocchi sim --seed 42 --max-ticks 10000
  blocchi sim --realtime --fps 120`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagBot, "bot", "", "Bot name (default from config)")
	simCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (default from config)")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Tick limit per game (default from config)")
	simCmd.Flags().IntVar(&flagThinkEvery, "think-every", 0, "Ticks between bot decisions (default from config)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace at the tick rate and draw the board")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applySimFlags(&cfg)

	if err := checkBot(cfg.Sim.Bot); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blocchi bots' to see available bots.")
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bot, err := registry.Create(cfg.Sim.Bot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	run := headlessRunner(headless.Options{
		MaxTicks:   cfg.Sim.MaxTicks,
		ThinkEvery: cfg.Sim.ThinkEvery,
		Logger:     logger,
	})
	level := logger.GetLevel()
	if flagRealtime {
		// the alternate screen owns the terminal, keep log lines off it
		logger.SetLevel(log.ErrorLevel)
		run = tuiRunner(cfg)
	}

	results, lastBoard, err := simulate(ctx, cfg, bot, baseSeed, run, logger)
	logger.SetLevel(level)
	if err != nil {
		logger.Warn("simulation interrupted", "games_finished", len(results), "error", err)
	}

	if lastBoard != nil {
		fmt.Println(boardStyle.Render(lastBoard.String()))
		fmt.Println()
	}
	printSummary(cfg.Sim.Bot, baseSeed, results)
}

// checkBot fails early when a flag or the config file names a bot that is
// not registered.
func checkBot(name string) error {
	if !registry.Exists(name) {
		return fmt.Errorf("%w: %q", registry.ErrUnknownBot, name)
	}
	return nil
}

func applySimFlags(cfg *config.Config) {
	if flagBot != "" {
		cfg.Sim.Bot = flagBot
	}
	if flagGames > 0 {
		cfg.Sim.Games = flagGames
	}
	if flagMaxTicks > 0 {
		cfg.Sim.MaxTicks = flagMaxTicks
	}
	if flagThinkEvery > 0 {
		cfg.Sim.ThinkEvery = flagThinkEvery
	}
}

// gameRunner plays one reset session to its end.
type gameRunner func(ctx context.Context, s *session.Session, bot registry.Bot, game int) (headless.Result, error)

func headlessRunner(opts headless.Options) gameRunner {
	return func(ctx context.Context, s *session.Session, bot registry.Bot, _ int) (headless.Result, error) {
		return headless.Run(ctx, s, bot, opts)
	}
}

func tuiRunner(cfg config.Config) gameRunner {
	return func(ctx context.Context, s *session.Session, bot registry.Bot, game int) (headless.Result, error) {
		return tui.Run(ctx, s, bot, tui.Options{
			Title:      fmt.Sprintf("%s  game %d/%d  seed %d", bot.Name(), game, cfg.Sim.Games, s.Config().Seed),
			MaxTicks:   cfg.Sim.MaxTicks,
			ThinkEvery: cfg.Sim.ThinkEvery,
		})
	}
}

// simulate plays cfg.Sim.Games games and returns the finished results and
// the final screen of the last game. A cancelled context or a quit stops
// after the game in progress; its partial result is included.
func simulate(ctx context.Context, cfg config.Config, bot registry.Bot, baseSeed int64, run gameRunner, logger *log.Logger) ([]headless.Result, *core.Screen, error) {
	var (
		results []headless.Result
		screen  *core.Screen
	)
	for i := range cfg.Sim.Games {
		seed := baseSeed + int64(i)
		s := session.New(session.WithLogger(logger.With("game", i+1)))
		s.Reset(cfg.Runtime(seed))

		res, err := run(ctx, s, bot, i+1)
		results = append(results, res)

		screen = core.NewScreen(session.ScreenW, session.ScreenH)
		s.Render(screen)

		if err != nil {
			return results, screen, fmt.Errorf("game %d: %w", i+1, err)
		}
		if res.Quit {
			break
		}
	}
	return results, screen, nil
}

func printSummary(bot string, seed int64, results []headless.Result) {
	totals := intmap.New[tetris.Shape, int](tetris.NumShapes)
	var pieces, lines, ticks, overs int
	for _, r := range results {
		pieces += r.Pieces
		lines += r.Lines
		ticks += r.Ticks
		if r.GameOver {
			overs++
		}
		for _, s := range tetris.Shapes() {
			n, _ := totals.Get(s)
			totals.Put(s, n+r.Drawn[s])
		}
	}

	fmt.Println(titleStyle.Render("Simulation summary"))
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "Bot", bot)
	fmt.Printf("  %-12s %d\n", "Base seed", seed)
	fmt.Printf("  %-12s %d (%d ended in game over)\n", "Games", len(results), overs)
	fmt.Printf("  %-12s %d\n", "Ticks", ticks)
	fmt.Printf("  %-12s %d\n", "Pieces", pieces)
	fmt.Printf("  %-12s %d\n", "Lines", lines)
	if len(results) > 0 {
		fmt.Printf("  %-12s %.1f\n", "Lines/game", float64(lines)/float64(len(results)))
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Pieces drawn"))
	for _, s := range tetris.Shapes() {
		n, _ := totals.Get(s)
		fmt.Printf("  %s  %d\n", s, n)
	}
}
