package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/siggyrun/internal/core"
)

// Track colors, hex as in the original artwork.
const (
	hexVoid   = "#051611"
	hexMoss   = "#226b48"
	hexGlow   = "#76e891"
	hexFur    = "#c8c8c8"
	hexHat    = "#3fa27a"
	hexBook   = "#a0664f"
	hexElixir = "#00ffcc"
	hexDanger = "#ff5f87"
	hexShadow = "#0b2d20"
)

// Palette maps screen colors to lipgloss styles bound to one renderer.
// Over SSH every session needs its own renderer so color detection
// follows the client's terminal, not the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds the track palette. A nil renderer uses lipgloss's default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	base := r.NewStyle().Background(lipgloss.Color(hexVoid))
	fg := func(hex string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(hex))
	}

	return &Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: base.Foreground(lipgloss.Color(hexGlow)),
		core.ColorGround:  fg(hexMoss),
		core.ColorGlow:    fg(hexGlow).Bold(true),
		core.ColorCat:     fg(hexFur),
		core.ColorHat:     fg(hexHat),
		core.ColorBook:    fg(hexBook),
		core.ColorElixir:  fg(hexElixir),
		core.ColorRitual:  fg(hexMoss).Italic(true),
		core.ColorDanger:  fg(hexDanger).Bold(true),
		core.ColorMuted:   fg(hexShadow),
	}}
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.styles[core.ColorDefault]
}

// Render converts a Screen buffer to a styled string, one style call per
// run of equally colored cells.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
