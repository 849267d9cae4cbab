package runner

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/leaderboard"
	"github.com/vovakirdan/siggyrun/internal/loop"
	"github.com/vovakirdan/siggyrun/internal/message"
)

// Activation is what an activate input did. Ignored covers a jump while
// airborne and a retry during the cooldown.
type Activation int

const (
	ActivationIgnored Activation = iota
	ActivationStarted
	ActivationJumped
)

// Deps are the collaborators of a Game.
type Deps struct {
	Rand    Rand                 // required
	Records *leaderboard.Records // required
	Picker  message.Picker       // nil falls back to the default message
	Journal Journal              // optional run history
	Logger  *log.Logger
	Clock   func() time.Time // wall clock for leaderboard dates
}

// RunSummary describes a finished run.
type RunSummary struct {
	Player  string
	Score   int
	Frames  int
	NewBest bool
	EndedAt time.Time
}

// Journal records finished runs.
type Journal interface {
	RecordRun(run RunSummary) error
}

// Game is one player's session: the START, PLAYING, GAMEOVER state machine
// around a World, driven by a fixed-step loop driver.
//
// Game is not safe for concurrent use. Input, refresh callbacks and
// snapshot reads must all come from the same goroutine.
type Game struct {
	cfg      config.RunnerConfig
	pipeline *Pipeline
	driver   *loop.Driver
	world    *World

	phase      Phase
	score      float64
	final      int
	newBest    bool
	message    string
	gameOverAt time.Duration

	records *leaderboard.Records
	picker  message.Picker
	journal Journal
	logger  *log.Logger
	clock   func() time.Time
	render  loop.RenderFunc
}

// NewGame creates a game in the START phase.
func NewGame(cfg config.RunnerConfig, deps Deps) *Game {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	g := &Game{
		cfg:      cfg,
		pipeline: NewPipeline(cfg, deps.Rand),
		phase:    PhaseStart,
		message:  message.DefaultMessage,
		records:  deps.Records,
		picker:   deps.Picker,
		journal:  deps.Journal,
		logger:   deps.Logger,
		clock:    deps.Clock,
	}
	g.world = g.pipeline.NewWorld()
	g.driver = loop.NewDriver(g, g.renderFrame, cfg.Loop.StepDuration(), cfg.Loop.MaxSteps)
	return g
}

// SetRenderer installs the function called once per processed refresh.
func (g *Game) SetRenderer(fn loop.RenderFunc) {
	g.render = fn
}

func (g *Game) renderFrame(now time.Duration) {
	if g.render != nil {
		g.render(now)
	}
}

// Activate handles the single gameplay input. now is the monotonic time
// of the input on the same clock the refresh callbacks use.
func (g *Game) Activate(now time.Duration) Activation {
	switch g.phase {
	case PhasePlaying:
		if g.pipeline.Jump(g.world) {
			return ActivationJumped
		}
		return ActivationIgnored
	case PhaseGameOver:
		if g.Cooldown(now) {
			return ActivationIgnored
		}
		g.start(now)
		return ActivationStarted
	case PhaseStart:
		g.start(now)
		return ActivationStarted
	default:
		return ActivationIgnored
	}
}

func (g *Game) start(now time.Duration) {
	g.world = g.pipeline.NewWorld()
	g.score = 0
	g.final = 0
	g.newBest = false
	g.message = message.RestartMessage
	g.phase = PhasePlaying
	gen := g.driver.Start(now)
	g.logger.Debug("run started", "generation", gen)
}

// Frame processes one display refresh for the chain gen.
func (g *Game) Frame(gen loop.Generation, now time.Duration) loop.Result {
	return g.driver.Frame(gen, now)
}

// Generation returns the generation of the current refresh chain.
func (g *Game) Generation() loop.Generation {
	return g.driver.Generation()
}

// Step implements loop.Simulation.
func (g *Game) Step(now time.Duration) bool {
	if g.phase != PhasePlaying {
		return false
	}

	res := g.pipeline.Step(g.world)
	g.score += res.Gained

	if res.Collided {
		g.endRun(now)
		return false
	}
	return true
}

// endRun freezes the score, commits it and picks the game-over message.
func (g *Game) endRun(now time.Duration) {
	g.phase = PhaseGameOver
	g.gameOverAt = now
	g.final = int(math.Floor(g.score))

	endedAt := g.clock()
	newBest, err := g.records.Commit(g.final, endedAt)
	if err != nil {
		g.logger.Warn("could not save run", "score", g.final, "error", err)
	}
	g.newBest = newBest

	if g.journal != nil {
		run := RunSummary{
			Player:  g.records.DisplayName(),
			Score:   g.final,
			Frames:  g.world.Frame,
			NewBest: newBest,
			EndedAt: endedAt,
		}
		if err := g.journal.RecordRun(run); err != nil {
			g.logger.Warn("could not record run history", "error", err)
		}
	}

	outcome := message.Loss
	if newBest {
		outcome = message.Win
	}
	msg, err := message.Fetch(context.Background(), g.picker, g.final, outcome, g.cfg.Session.MessageTimeout())
	if err != nil {
		g.logger.Warn("message picker failed", "error", err)
	}
	g.message = msg

	g.logger.Debug("run ended", "score", g.final, "frame", g.world.Frame, "new_best", newBest)
}

// Phase returns the session state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the running score accumulator.
func (g *Game) Score() float64 {
	return g.score
}

// FinalScore returns the committed score of the last finished run.
func (g *Game) FinalScore() int {
	return g.final
}

// Cooldown reports whether retry input is still being ignored at now.
func (g *Game) Cooldown(now time.Duration) bool {
	return g.phase == PhaseGameOver && now < g.gameOverAt+g.cfg.Session.Cooldown()
}

// CooldownEnds returns when the current cooldown expires.
func (g *Game) CooldownEnds() time.Duration {
	return g.gameOverAt + g.cfg.Session.Cooldown()
}

// Message returns the line shown under the track.
func (g *Game) Message() string {
	return g.message
}

// World exposes the live simulation state. Callers must not keep it
// across steps.
func (g *Game) World() *World {
	return g.world
}
