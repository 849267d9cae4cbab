// Package runner implements the endless-runner simulation: the entity
// model, the per-step pipeline (spawn, physics, collision, particles) and
// the session lifecycle wrapped around it.
package runner

import "github.com/vovakirdan/siggyrun/internal/core"

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindHat
	KindBook
	KindElixir
)

// obstacleKinds is the draw order for uniform variant selection.
var obstacleKinds = [...]Kind{KindHat, KindBook, KindElixir}

// String returns the kind label.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "PLAYER"
	case KindHat:
		return "HAT"
	case KindBook:
		return "BOOK"
	case KindElixir:
		return "ELIXIR"
	default:
		return "UNKNOWN"
	}
}

// IsObstacle reports whether k is one of the obstacle variants.
func (k Kind) IsObstacle() bool {
	switch k {
	case KindHat, KindBook, KindElixir:
		return true
	case KindPlayer:
		return false
	default:
		return false
	}
}

// Entity is a box on the track. (X, Y) is the top-left corner; Y grows downward.
type Entity struct {
	X, Y float64
	W, H float64
	Kind Kind
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Center returns the center point of the entity.
func (e Entity) Center() (float64, float64) {
	return e.Box().Center()
}

// Particle is a short-lived visual effect. Life runs from 1 down to 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}

// Phase is the session state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase label.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}
