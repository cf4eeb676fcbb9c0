package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/platform/headless"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/session"
)

var (
	boardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// Options configures a watched run.
type Options struct {
	// Title is shown above the board, e.g. "greedy  game 2/5".
	Title string

	// MaxTicks stops the run when reached. Zero means no limit.
	MaxTicks int

	// ThinkEvery is how many ticks pass between bot decisions.
	ThinkEvery int
}

// Model is the Bubble Tea model that lets a bot play a session on screen.
type Model struct {
	sess   *session.Session
	bot    registry.Bot
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	opts   Options

	input  core.InputFrame // keys pressed since the last tick
	result headless.Result
	done   bool
}

// NewModel returns a model for an already reset session.
func NewModel(s *session.Session, bot registry.Bot, opts Options) Model {
	opts.ThinkEvery = max(opts.ThinkEvery, 1)
	bot.Reset(s.Config().Seed)
	return Model{
		sess:   s,
		bot:    bot,
		screen: core.NewScreen(session.ScreenW, session.ScreenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.sess.Config().TickDuration())
}

// Update handles key presses and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.input.Set(core.ActionQuit)
	case key.Matches(msg, m.keys.Pause):
		m.input.Set(core.ActionPause)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	in := m.input
	m.input.Clear()
	if m.result.Ticks%m.opts.ThinkEvery == 0 {
		decided := m.bot.Decide(m.sess.Board())
		for _, a := range core.Actions() {
			if decided.Has(a) {
				in.Set(a)
			}
		}
	}

	step := m.sess.Step(in)
	m.result.Ticks++

	switch {
	case step.Quit:
		m.result.Quit = true
	case step.State.GameOver():
		m.result.GameOver = true
	case m.opts.MaxTicks > 0 && m.result.Ticks >= m.opts.MaxTicks:
	default:
		return m, tickCmd(m.sess.Config().TickDuration())
	}

	m.done = true
	m.result = headless.Tally(m.sess, m.result)
	return m, tea.Quit
}

// View draws the title, the board and the key help.
func (m Model) View() string {
	m.screen.Clear()
	m.sess.Render(m.screen)

	title := m.opts.Title
	if title == "" {
		title = m.bot.Name()
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		titleStyle.Render(title),
		boardStyle.Render(m.screen.String()),
		m.help.View(m.keys))
}

// Result returns the run summary. It is complete once the program has quit.
func (m Model) Result() headless.Result {
	if !m.done {
		return headless.Tally(m.sess, m.result)
	}
	return m.result
}

// Run plays the session in the alternate screen until game over, quit,
// MaxTicks or context cancellation. On cancellation it returns the partial
// result together with the context's error.
func Run(ctx context.Context, s *session.Session, bot registry.Bot, opts Options) (headless.Result, error) {
	model := NewModel(s, bot, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		model = fm
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.Result(), ctxErr
	}
	if err != nil {
		return model.Result(), fmt.Errorf("tui: %w", err)
	}
	return model.Result(), nil
}
