package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/siggyrun/internal/leaderboard"
	"github.com/vovakirdan/siggyrun/internal/storage"
)

// Scoreboard layout constants
const (
	maxRecentRuns = 50
	tableMinWidth = 40
)

// scoreboardTab selects what the table shows.
type scoreboardTab int

const (
	tabLeaderboard scoreboardTab = iota
	tabRecent
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "leaderboard/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	board     leaderboard.Board
	best      int
	name      string
	store     *storage.Store // optional run history
	runs      []storage.Run
	tab       scoreboardTab
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a scoreboard for the given records.
func NewScoreboardModel(board leaderboard.Board, best int, name string, store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		board:  board,
		best:   best,
		name:   name,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.loadRuns()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// loadRuns reads the run history if a store is available.
func (m *ScoreboardModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		return
	}
	runs, err := m.store.RecentRuns(maxRecentRuns)
	if err != nil {
		m.runs = nil
		return
	}
	m.runs = runs
}

// createTable creates a new table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := max(m.width-6, tableMinWidth)

	var columns []table.Column
	switch m.tab {
	case tabLeaderboard:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: leaderboard.MaxNameLen + 8},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 12},
		}
	case tabRecent:
		columns = []table.Column{
			{Title: "When", Width: 14},
			{Title: "Name", Width: leaderboard.MaxNameLen + 8},
			{Title: "Score", Width: 8},
			{Title: "Best", Width: 5},
		}
	}

	// Give spare width to the name column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := tableWidth - used; spare > 0 {
		columns[1].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#226b48")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#051611")).
		Background(lipgloss.Color("#76e891")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current tab.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabLeaderboard:
		rows = make([]table.Row, len(m.board))
		for i, e := range m.board {
			name := e.Name
			if e.Name == leaderboard.NormalizeName(m.name) {
				name += " (you)"
			}
			rows[i] = table.Row{fmt.Sprintf("#%d", i+1), name, fmt.Sprintf("%d", e.Score), e.Date}
		}
	case tabRecent:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			mark := ""
			if r.NewBest {
				mark = "*"
			}
			rows[i] = table.Row{r.CreatedAt.Local().Format("Jan 02 15:04"), r.Player, fmt.Sprintf("%d", r.Score), mark}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.tab == tabLeaderboard {
				m.tab = tabRecent
			} else {
				m.tab = tabLeaderboard
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#76e891"))

	title := "HALL OF FAMILIARS"
	if m.tab == tabRecent {
		title = "RECENT RITUALS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#226b48"))
	sub := fmt.Sprintf("%s  ·  personal best %d", leaderboard.NormalizeName(m.name), m.best)
	b.WriteString(subStyle.Render(centerText(sub, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#226b48")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.tab == tabRecent && len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rituals recorded yet.\nFinish a run to start the history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to return to the track.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
