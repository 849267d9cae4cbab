package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/siggyrun/internal/leaderboard"
)

// NamePromptModel asks for the leaderboard name. It is shown before the
// first run when no name is stored, and on demand to rename.
type NamePromptModel struct {
	input     []rune
	width     int
	height    int
	canCancel bool // false on first visit: a name is required to play
	errMsg    string
	done      bool
	cancelled bool
	quitting  bool
}

// NewNamePromptModel creates a prompt prefilled with current.
func NewNamePromptModel(current string, canCancel bool, width, height int) NamePromptModel {
	return NamePromptModel{
		input:     []rune(current),
		width:     width,
		height:    height,
		canCancel: canCancel,
	}
}

// Init initializes the prompt.
func (m NamePromptModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the prompt.
func (m NamePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey edits the name. Letters such as q or b are text here, so
// only Ctrl+C quits.
func (m NamePromptModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true

	case tea.KeyEsc:
		if m.canCancel {
			m.cancelled = true
		}

	case tea.KeyEnter:
		if leaderboard.NormalizeName(string(m.input)) == leaderboard.DefaultName {
			m.errMsg = "Every familiar needs a name"
			return m, nil
		}
		m.done = true

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		m.errMsg = ""

	case tea.KeySpace:
		m.appendRunes([]rune{' '})

	case tea.KeyRunes:
		m.appendRunes(msg.Runes)
	}

	return m, nil
}

func (m *NamePromptModel) appendRunes(runes []rune) {
	for _, r := range runes {
		if len(m.input) >= leaderboard.MaxNameLen {
			break
		}
		if unicode.IsPrint(r) {
			m.input = append(m.input, r)
		}
	}
	m.errMsg = ""
}

// View renders the prompt.
func (m NamePromptModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#76e891"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#226b48"))

	top := max(m.height/2-4, 0)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(titleStyle.Render(centerText("NAME YOUR FAMILIAR", m.width)))
	b.WriteString("\n\n")

	field := string(m.input) + "_"
	field += strings.Repeat(" ", max(leaderboard.MaxNameLen-len(m.input), 0))
	b.WriteString(centerText(fmt.Sprintf("[ %s ]", field), m.width))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f87"))
		b.WriteString(errStyle.Render(centerText(m.errMsg, m.width)))
		b.WriteString("\n")
	}

	controls := "Enter: Confirm  |  Ctrl+C: Quit"
	if m.canCancel {
		controls = "Enter: Confirm  |  Esc: Back  |  Ctrl+C: Quit"
	}
	b.WriteString(mutedStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Value returns the entered name, trimmed.
func (m NamePromptModel) Value() string {
	return strings.TrimSpace(string(m.input))
}

// IsDone returns true once a valid name was confirmed.
func (m NamePromptModel) IsDone() bool {
	return m.done
}

// IsCancelled returns true if the user backed out of a rename.
func (m NamePromptModel) IsCancelled() bool {
	return m.cancelled
}

// IsQuitting returns true if user wants to quit entirely.
func (m NamePromptModel) IsQuitting() bool {
	return m.quitting
}
