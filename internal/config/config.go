// Package config provides YAML-based tuning for the runner and the
// difficulty presets selectable from the command line.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains every tunable constant of the simulation.
type RunnerConfig struct {
	Track     TrackConfig    `yaml:"track"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Speed     SpeedConfig    `yaml:"speed"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Particles ParticleConfig `yaml:"particles"`
	Score     ScoreConfig    `yaml:"score"`
	Loop      LoopConfig     `yaml:"loop"`
	Session   SessionConfig  `yaml:"session"`
}

// TrackConfig defines the visible track in simulation units.
type TrackConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // y of the ground line; entities stand on it
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // added to vertical velocity per step while airborne
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = upward
}

// SpeedConfig defines horizontal scroll speed and its growth.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // added every step, uncapped
}

// SpawnConfig defines obstacle density in steps.
type SpawnConfig struct {
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	FirstAt     float64 `yaml:"first_at"` // frame of the first spawn
}

// PlayerConfig defines the player's fixed box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry and removal.
type ObstacleConfig struct {
	Height      float64 `yaml:"height"`
	HatWidth    float64 `yaml:"hat_width"`
	BookWidth   float64 `yaml:"book_width"`
	ElixirWidth float64 `yaml:"elixir_width"`
	Padding     float64 `yaml:"padding"`   // collision tolerance on every side
	CleanupX    float64 `yaml:"cleanup_x"` // removed once the right edge is left of this
}

// ParticleConfig defines the collision burst.
type ParticleConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // max absolute velocity per axis
	Decay  float64 `yaml:"decay"`  // life lost per step
}

// ScoreConfig defines score accrual.
type ScoreConfig struct {
	Scale float64 `yaml:"scale"` // score added per unit of speed per step
}

// LoopConfig defines the fixed-step driver.
type LoopConfig struct {
	StepHz   int `yaml:"step_hz"`
	MaxSteps int `yaml:"max_steps"` // per display refresh
}

// SessionConfig defines session timing.
type SessionConfig struct {
	CooldownMS       int `yaml:"cooldown_ms"`        // retry input ignored after game over
	MessageTimeoutMS int `yaml:"message_timeout_ms"` // bound on the message picker
}

// StepDuration returns the simulated duration of one step.
func (c LoopConfig) StepDuration() time.Duration {
	return time.Second / time.Duration(c.StepHz)
}

// Cooldown returns the retry cooldown.
func (c SessionConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// MessageTimeout returns the message picker deadline.
func (c SessionConfig) MessageTimeout() time.Duration {
	return time.Duration(c.MessageTimeoutMS) * time.Millisecond
}

// Validate reports configuration values the engine cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Track.Width <= 0 || c.Track.Height <= 0 {
		errs = append(errs, fmt.Errorf("track size must be positive, got %vx%v", c.Track.Width, c.Track.Height))
	}
	if c.Track.GroundY <= 0 || c.Track.GroundY > c.Track.Height {
		errs = append(errs, fmt.Errorf("ground_y %v outside track height %v", c.Track.GroundY, c.Track.Height))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}
	if c.Spawn.MinInterval < 1 || c.Spawn.MaxInterval < c.Spawn.MinInterval {
		errs = append(errs, fmt.Errorf("spawn interval [%v, %v] is invalid", c.Spawn.MinInterval, c.Spawn.MaxInterval))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Particles.Count < 0 || c.Particles.Decay <= 0 {
		errs = append(errs, fmt.Errorf("particles need count >= 0 and decay > 0, got %d and %v", c.Particles.Count, c.Particles.Decay))
	}
	if c.Loop.StepHz <= 0 || c.Loop.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("loop needs step_hz > 0 and max_steps > 0, got %d and %d", c.Loop.StepHz, c.Loop.MaxSteps))
	}
	if c.Session.CooldownMS < 0 || c.Session.MessageTimeoutMS <= 0 {
		errs = append(errs, errors.New("session timings must be non-negative with a positive message timeout"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
