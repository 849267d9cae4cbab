package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the reference tuning of the runner.
// It mirrors defaults/runner.yaml and backs it up if the embed fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Width:   800,
			Height:  250,
			GroundY: 200,
		},
		Physics: PhysicsConfig{
			Gravity:     0.9,
			JumpImpulse: -17.0,
		},
		Speed: SpeedConfig{
			Initial:   10.0,
			Increment: 0.006,
		},
		Spawn: SpawnConfig{
			MinInterval: 45,
			MaxInterval: 90,
			FirstAt:     100,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  35,
			Height: 35,
		},
		Obstacles: ObstacleConfig{
			Height:      35,
			HatWidth:    40,
			BookWidth:   35,
			ElixirWidth: 40,
			Padding:     8,
			CleanupX:    -100,
		},
		Particles: ParticleConfig{
			Count:  15,
			Spread: 6,
			Decay:  0.025,
		},
		Score: ScoreConfig{
			Scale: 0.015,
		},
		Loop: LoopConfig{
			StepHz:   60,
			MaxSteps: 3,
		},
		Session: SessionConfig{
			CooldownMS:       800,
			MessageTimeoutMS: 250,
		},
	}
}
