package tui

import (
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/core"
	"github.com/vovakirdan/siggyrun/internal/leaderboard"
	"github.com/vovakirdan/siggyrun/internal/loop"
	"github.com/vovakirdan/siggyrun/internal/message"
	"github.com/vovakirdan/siggyrun/internal/runner"
	"github.com/vovakirdan/siggyrun/internal/storage"
)

// Options configures one play session.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Records *leaderboard.Records
	Store   *storage.Store // optional, receives the run history
	Logger  *log.Logger

	// Renderer detects the color profile; nil uses the local terminal's.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one runner session. It owns the
// display refresh chain: every RefreshMsg carries the generation of the
// chain it belongs to and is handed to the game, which ignores stale ones.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	palette  *Palette
	store    *storage.Store
	records  *leaderboard.Records
	config   core.RuntimeConfig
	keys     *KeyMapper
	epoch    time.Time // origin of the monotonic clock passed to the game
	scores   *ScoreboardModel
	naming   *NamePromptModel
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for a session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Records == nil {
		opts.Records = leaderboard.Load(leaderboard.NewMemoryKV(), opts.Logger)
	}
	if cfg.Player != "" && leaderboard.NormalizeName(cfg.Player) != opts.Records.Name() {
		if err := opts.Records.SetName(cfg.Player); err != nil {
			opts.Logger.Warn("could not set player name", "name", cfg.Player, "error", err)
		}
	}

	var journal runner.Journal
	if opts.Store != nil {
		journal = opts.Store
	}

	game := runner.NewGame(opts.Runner, runner.Deps{
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
		Records: opts.Records,
		Picker:  message.NewLocal(cfg.Seed + 1),
		Journal: journal,
		Logger:  opts.Logger,
	})

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.SetRenderer(func(now time.Duration) {
		runner.Draw(screen, game.Snapshot(now))
	})

	m := Model{
		game:    game,
		screen:  screen,
		palette: NewPalette(opts.Renderer),
		store:   opts.Store,
		records: opts.Records,
		config:  cfg,
		keys:    NewKeyMapper(),
		epoch:   time.Now(),
		logger:  opts.Logger,
	}
	if opts.Records.Name() == "" {
		np := NewNamePromptModel("", false, cfg.ScreenW, cfg.ScreenH)
		m.naming = &np
	}
	m.redraw()
	return m
}

// now returns the monotonic time since the session began.
func (m Model) now() time.Duration {
	return time.Since(m.epoch)
}

// redraw renders outside the refresh chain, used while no run is active.
func (m Model) redraw() {
	runner.Draw(m.screen, m.game.Snapshot(m.now()))
}

// Init initializes the model. Nothing ticks until the first activate.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm)
	}

	if m.naming != nil {
		return m.updateNaming(msg)
	}
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case RefreshMsg:
		return m.handleRefresh(msg)

	case CooldownMsg:
		if m.game.Phase() != runner.PhasePlaying {
			m.redraw()
		}
		return m, nil
	}

	return m, nil
}

// handleAction applies a mapped input while the track is shown.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionActivate:
		switch m.game.Activate(m.now()) {
		case runner.ActivationStarted:
			m.redraw()
			return m, refreshCmd(m.game.Generation(), m.config.TickRate)
		case runner.ActivationJumped, runner.ActivationIgnored:
		}
		return m, nil

	case core.ActionScores:
		// The leaderboard never opens over a live run
		if m.game.Phase() == runner.PhasePlaying {
			return m, nil
		}
		sb := NewScoreboardModel(m.records.Board(), m.records.PersonalBest(), m.records.Name(), m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		return m, nil

	case core.ActionRename:
		if m.game.Phase() == runner.PhasePlaying {
			return m, nil
		}
		np := NewNamePromptModel(m.records.Name(), true, m.config.ScreenW, m.config.ScreenH)
		m.naming = &np
		return m, nil

	case core.ActionBack, core.ActionNone:
	}
	return m, nil
}

// handleRefresh forwards one display refresh to the game.
func (m Model) handleRefresh(msg RefreshMsg) (tea.Model, tea.Cmd) {
	now := msg.At.Sub(m.epoch)
	res := m.game.Frame(msg.Gen, now)

	switch {
	case res.Stale:
		return m, nil
	case res.Halted:
		return m, cooldownCmd(m.game.CooldownEnds() - now)
	case res.Reschedule:
		return m, refreshCmd(msg.Gen, m.config.TickRate)
	}
	return m, nil
}

// updateScores routes input to the leaderboard screen. Gameplay input is
// not forwarded while it is open.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		m.redraw()
		return m, nil
	}

	m.scores = &sb
	return m, cmd
}

// updateNaming routes input to the name prompt.
func (m Model) updateNaming(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.naming.Update(msg)
	np, ok := next.(NamePromptModel)
	if !ok {
		return m, cmd
	}

	switch {
	case np.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case np.IsDone():
		if err := m.records.SetName(np.Value()); err != nil {
			m.logger.Warn("could not set player name", "error", err)
		}
		m.naming = nil
		m.redraw()
		return m, nil
	case np.IsCancelled():
		m.naming = nil
		m.redraw()
		return m, nil
	}

	m.naming = &np
	return m, cmd
}

// handleResize processes window resize events. The simulation works in
// track units, so only the drawing changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.naming != nil {
		next, _ := m.naming.Update(msg)
		if np, ok := next.(NamePromptModel); ok {
			m.naming = &np
		}
	}

	if m.scores != nil {
		next, cmd := m.scores.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scores = &sb
		}
		m.redraw()
		return m, cmd
	}

	m.redraw()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.naming != nil {
		return m.naming.View()
	}
	if m.scores != nil {
		return m.scores.View()
	}
	return m.palette.Render(m.screen)
}

// Generation exposes the game's current refresh chain.
func (m Model) Generation() loop.Generation {
	return m.game.Generation()
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press counts as a tap
	)

	_, err := p.Run()
	return err
}
