package runner

import (
	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/core"
)

// World is the mutable simulation state of one run. Exactly one Game owns
// it; every pipeline stage receives it explicitly.
type World struct {
	Speed     float64
	Frame     int
	NextSpawn float64 // frame at or after which the next obstacle spawns
	Player    Entity
	VelY      float64
	Jumping   bool
	Obstacles []Entity // oldest first
	Particles []Particle
}

// StepResult reports what one step did.
type StepResult struct {
	Gained   float64 // score earned by this step
	Spawned  bool
	Collided bool
}

// Pipeline runs one fixed step: spawn, physics, obstacle advance with
// collision and cleanup, then particles.
type Pipeline struct {
	cfg        config.RunnerConfig
	rng        Rand
	scheduler  Scheduler
	integrator Integrator
	particles  ParticleSystem
}

// NewPipeline creates a pipeline for cfg drawing randomness from rng.
func NewPipeline(cfg config.RunnerConfig, rng Rand) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		rng:        rng,
		scheduler:  NewScheduler(cfg),
		integrator: NewIntegrator(cfg),
		particles:  NewParticleSystem(cfg.Particles),
	}
}

// NewWorld returns the initial state of a run: base speed, frame 0, no
// obstacles or particles, player standing on the ground.
func (p *Pipeline) NewWorld() *World {
	w, h := p.scheduler.Dimensions(KindPlayer)
	return &World{
		Speed:     p.cfg.Speed.Initial,
		NextSpawn: p.cfg.Spawn.FirstAt,
		Player: Entity{
			X:    p.cfg.Player.X,
			Y:    p.cfg.Track.GroundY - h,
			W:    w,
			H:    h,
			Kind: KindPlayer,
		},
	}
}

// Jump launches the player if grounded.
func (p *Pipeline) Jump(w *World) bool {
	return p.integrator.Jump(w)
}

// Step advances w by one fixed step. Score accrues from the speed the step
// started with; the speed increment applies afterwards and moves obstacles
// in the same step. A collision ends the step immediately after the burst.
func (p *Pipeline) Step(w *World) StepResult {
	var res StepResult

	w.Frame++
	res.Gained = w.Speed * p.cfg.Score.Scale
	w.Speed += p.cfg.Speed.Increment

	res.Spawned = p.scheduler.Tick(w, p.rng)
	p.integrator.Integrate(w)

	if p.advanceObstacles(w) {
		x, y := w.Player.Center()
		p.particles.Burst(w, x, y, core.ColorElixir, p.rng)
		res.Collided = true
		return res
	}

	p.particles.Update(w)
	return res
}
