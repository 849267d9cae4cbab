package runner

import (
	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/core"
)

// ParticleSystem spawns and ages the collision burst.
type ParticleSystem struct {
	count  int
	spread float64
	decay  float64
}

// NewParticleSystem creates a particle system for cfg.
func NewParticleSystem(cfg config.ParticleConfig) ParticleSystem {
	return ParticleSystem{
		count:  cfg.Count,
		spread: cfg.Spread,
		decay:  cfg.Decay,
	}
}

// Burst adds count particles at (x, y) with full life. Each axis of the
// velocity is drawn independently from [-spread, spread).
func (ps ParticleSystem) Burst(w *World, x, y float64, color core.Color, rng Rand) {
	for i := 0; i < ps.count; i++ {
		w.Particles = append(w.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    (rng.Float64() - 0.5) * 2 * ps.spread,
			VY:    (rng.Float64() - 0.5) * 2 * ps.spread,
			Life:  1,
			Color: color,
		})
	}
}

// Update moves every particle, drains its life and removes the dead ones.
func (ps ParticleSystem) Update(w *World) {
	alive := w.Particles[:0]
	for _, pt := range w.Particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life -= ps.decay
		if pt.Life <= 0 {
			continue
		}
		alive = append(alive, pt)
	}
	w.Particles = alive
}
