package runner

import "github.com/vovakirdan/siggyrun/internal/config"

// Integrator moves the player vertically. The player is either grounded
// or airborne; there is no double jump and no input buffering.
type Integrator struct {
	gravity float64
	impulse float64
	groundY float64
}

// NewIntegrator creates an integrator for cfg.
func NewIntegrator(cfg config.RunnerConfig) Integrator {
	return Integrator{
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.JumpImpulse,
		groundY: cfg.Track.GroundY,
	}
}

// Jump launches a grounded player. Airborne players are unaffected.
func (in Integrator) Jump(w *World) bool {
	if w.Jumping {
		return false
	}
	w.VelY = in.impulse
	w.Jumping = true
	return true
}

// Integrate advances an airborne player by one step and lands it on the
// ground line.
func (in Integrator) Integrate(w *World) {
	if !w.Jumping {
		return
	}

	w.VelY += in.gravity
	w.Player.Y += w.VelY

	if floor := in.groundY - w.Player.H; w.Player.Y >= floor {
		w.Player.Y = floor
		w.VelY = 0
		w.Jumping = false
	}
}
