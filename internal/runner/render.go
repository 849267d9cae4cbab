package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/siggyrun/internal/core"
)

// Visual characters for rendering
const (
	CatBody    = '█'
	CatEar     = '▲'
	HatChar    = '▲'
	BookChar   = '▤'
	ElixirChar = '◆'
	GroundChar = '═'
	SoilChar   = '░'
	SparkChar  = '*'
	EmberChar  = '·'
)

// viewport maps track coordinates to screen cells. Row 0 holds the HUD and
// the last row holds the message line.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	rows := dst.Height() - 2
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / s.TrackW,
		sy:  float64(rows) / s.TrackH,
		top: 1,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// rect converts an entity to the cells it covers; never less than one cell.
func (v viewport) rect(e Entity) core.Rect {
	x0, y0 := v.col(e.X), v.row(e.Y)
	x1 := int(math.Ceil((e.X + e.W) * v.sx))
	y1 := v.top + int(math.Ceil((e.Y+e.H)*v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Draw renders s onto dst.
func Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.TrackW <= 0 || s.TrackH <= 0 {
		return
	}
	v := newViewport(dst, s)

	groundRow := v.row(s.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGround)
	for y := groundRow + 1; y < dst.Height()-1; y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorMuted)
	}

	for _, o := range s.Obstacles {
		drawEntity(dst, v, o, s.Frame)
	}
	drawEntity(dst, v, s.Player, s.Frame)

	for _, p := range s.Particles {
		ch := SparkChar
		if p.Life < 0.5 {
			ch = EmberChar
		}
		dst.SetColored(v.col(p.X), v.row(p.Y), ch, p.Color)
	}

	drawHUD(dst, s)

	switch s.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, core.ColorGlow, "SIGGY RUN", "Press SPACE to begin the ritual", "TAB scores  N rename  Q quit")
	case PhaseGameOver:
		hint := "Press SPACE to retry"
		if s.Cooldown {
			hint = "Restoring..."
		}
		title := "RITUAL BROKEN"
		if s.NewBest {
			title = "NEW PERSONAL BEST"
		}
		drawCenteredMessage(dst, core.ColorDanger, title, fmt.Sprintf("Final Essence: %d", s.Score), hint)
	case PhasePlaying:
	}
}

// drawEntity draws one entity with its variant's glyph.
func drawEntity(dst *core.Screen, v viewport, e Entity, frame int) {
	r := v.rect(e)

	switch e.Kind {
	case KindPlayer:
		dst.DrawRect(r, CatBody, core.ColorCat)
		// Ears bob every few frames while running
		earY := r.Y - 1
		if frame/6%2 == 1 {
			earY = r.Y
		}
		dst.SetColored(r.X, earY, CatEar, core.ColorGlow)
		dst.SetColored(r.Right()-1, earY, CatEar, core.ColorGlow)
	case KindHat:
		dst.DrawRect(r, HatChar, core.ColorHat)
	case KindBook:
		dst.DrawRect(r, BookChar, core.ColorBook)
	case KindElixir:
		dst.DrawRect(r, ElixirChar, core.ColorElixir)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" MANA %d ", s.Score), core.ColorGlow)

	best := fmt.Sprintf(" BEST %d ", s.Best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorMuted)

	dst.DrawTextCentered(dst.Height()-1, s.Message, core.ColorRitual)
}

// drawCenteredMessage draws a box in the middle of the screen with a title
// and the given lines below it.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRitual)

	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
