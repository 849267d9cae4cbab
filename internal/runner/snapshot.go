package runner

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/siggyrun/internal/leaderboard"
)

// Snapshot is everything needed to draw one frame. It shares nothing with
// the live World.
type Snapshot struct {
	Phase     Phase
	Frame     int
	Speed     float64
	Player    Entity
	Jumping   bool
	Obstacles []Entity
	Particles []Particle

	Score    int // floored
	Best     int
	NewBest  bool
	Message  string
	Cooldown bool

	Name  string
	Board leaderboard.Board // live view while playing

	TrackW  float64
	TrackH  float64
	GroundY float64
}

// Snapshot copies the current state.
func (g *Game) Snapshot(now time.Duration) Snapshot {
	w := g.world
	s := Snapshot{
		Phase:     g.phase,
		Frame:     w.Frame,
		Speed:     w.Speed,
		Player:    w.Player,
		Jumping:   w.Jumping,
		Obstacles: slices.Clone(w.Obstacles),
		Particles: slices.Clone(w.Particles),
		Score:     int(math.Floor(g.score)),
		Best:      g.records.PersonalBest(),
		NewBest:   g.newBest,
		Message:   g.message,
		Cooldown:  g.Cooldown(now),
		Name:      g.records.DisplayName(),
		TrackW:    g.cfg.Track.Width,
		TrackH:    g.cfg.Track.Height,
		GroundY:   g.cfg.Track.GroundY,
	}

	if g.phase == PhasePlaying {
		s.Board = g.records.Board().Live(s.Name, s.Score)
	} else {
		s.Board = g.records.Board()
	}
	return s
}
