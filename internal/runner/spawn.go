package runner

import "github.com/vovakirdan/siggyrun/internal/config"

// Scheduler decides when an obstacle appears and what it is.
// Timing depends only on the step counter.
type Scheduler struct {
	spawn     config.SpawnConfig
	obstacles config.ObstacleConfig
	player    config.PlayerConfig
	spawnX    float64 // right edge of the visible track
	groundY   float64
}

// NewScheduler creates a scheduler for cfg.
func NewScheduler(cfg config.RunnerConfig) Scheduler {
	return Scheduler{
		spawn:     cfg.Spawn,
		obstacles: cfg.Obstacles,
		player:    cfg.Player,
		spawnX:    cfg.Track.Width,
		groundY:   cfg.Track.GroundY,
	}
}

// Dimensions returns the width and height of an entity of kind k.
func (s Scheduler) Dimensions(k Kind) (w, h float64) {
	switch k {
	case KindPlayer:
		return s.player.Width, s.player.Height
	case KindHat:
		return s.obstacles.HatWidth, s.obstacles.Height
	case KindBook:
		return s.obstacles.BookWidth, s.obstacles.Height
	case KindElixir:
		return s.obstacles.ElixirWidth, s.obstacles.Height
	default:
		return 0, 0
	}
}

// Tick spawns at most one obstacle when the frame counter has reached the
// threshold, then moves the threshold forward. It reports whether it spawned.
func (s Scheduler) Tick(w *World, rng Rand) bool {
	if float64(w.Frame) < w.NextSpawn {
		return false
	}

	kind := obstacleKinds[rng.Intn(len(obstacleKinds))]
	width, height := s.Dimensions(kind)
	w.Obstacles = append(w.Obstacles, Entity{
		X:    s.spawnX,
		Y:    s.groundY - height,
		W:    width,
		H:    height,
		Kind: kind,
	})

	span := s.spawn.MaxInterval - s.spawn.MinInterval
	w.NextSpawn = float64(w.Frame) + s.spawn.MinInterval + rng.Float64()*span
	return true
}
