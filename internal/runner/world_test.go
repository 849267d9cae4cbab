package runner

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/core"
)

// scriptedRand replays fixed sequences, cycling when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func newScripted() *scriptedRand {
	return &scriptedRand{
		ints:   []int{2, 0, 1, 1, 0},
		floats: []float64{0.1, 0.9, 0.35, 0.72, 0.5},
	}
}

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewWorld(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewPipeline(cfg, newScripted()).NewWorld()

	if w.Speed != 10 || w.Frame != 0 || w.NextSpawn != 100 {
		t.Errorf("unexpected initial world %+v", w)
	}
	if w.Player.X != 50 || w.Player.Y != 165 || w.Player.W != 35 || w.Player.H != 35 {
		t.Errorf("player = %+v, expected 50,165 35x35", w.Player)
	}
	if w.Player.Kind != KindPlayer || w.Jumping || len(w.Obstacles) != 0 || len(w.Particles) != 0 {
		t.Errorf("unexpected initial world %+v", w)
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	pa := NewPipeline(cfg, newScripted())
	pb := NewPipeline(cfg, newScripted())
	wa, wb := pa.NewWorld(), pb.NewWorld()

	for i := 0; i < 600; i++ {
		if i%25 == 0 {
			pa.Jump(wa)
			pb.Jump(wb)
		}
		ra, rb := pa.Step(wa), pb.Step(wb)
		if ra != rb {
			t.Fatalf("step %d results diverged: %+v vs %+v", i, ra, rb)
		}
		if !reflect.DeepEqual(wa, wb) {
			t.Fatalf("step %d worlds diverged", i)
		}
	}
}

func TestScoreAccruesBeforeSpeedIncrement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPipeline(cfg, newScripted())
	w := p.NewWorld()

	res := p.Step(w)
	if !approx(res.Gained, 0.15) {
		t.Errorf("first step gained %v, expected 0.15", res.Gained)
	}
	if !approx(w.Speed, 10.006) {
		t.Errorf("speed after one step = %v, expected 10.006", w.Speed)
	}

	res = p.Step(w)
	if !approx(res.Gained, 10.006*0.015) {
		t.Errorf("second step gained %v, expected %v", res.Gained, 10.006*0.015)
	}
}

func TestSpeedGrowsEveryStep(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPipeline(cfg, newScripted())
	w := p.NewWorld()

	for i := 0; i < 50; i++ {
		p.Step(w)
	}
	if !approx(w.Speed, 10+50*0.006) {
		t.Errorf("speed after 50 steps = %v", w.Speed)
	}
	if w.Frame != 50 {
		t.Errorf("frame = %d, expected 50", w.Frame)
	}
}

func TestSpawnVariants(t *testing.T) {
	tests := []struct {
		draw  int
		kind  Kind
		width float64
	}{
		{0, KindHat, 40},
		{1, KindBook, 35},
		{2, KindElixir, 40},
	}

	cfg := config.DefaultRunnerConfig()
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			rng := &scriptedRand{ints: []int{tc.draw}, floats: []float64{0.5}}
			s := NewScheduler(cfg)
			w := &World{Frame: 100, NextSpawn: 100}

			if !s.Tick(w, rng) {
				t.Fatal("expected a spawn at the threshold")
			}
			o := w.Obstacles[0]
			if o.Kind != tc.kind || o.W != tc.width || o.H != 35 {
				t.Errorf("spawned %+v", o)
			}
			if o.X != 800 || o.Y != 165 {
				t.Errorf("spawned at (%v, %v), expected (800, 165)", o.X, o.Y)
			}
			if w.NextSpawn != 100+45+0.5*45 {
				t.Errorf("NextSpawn = %v, expected 167.5", w.NextSpawn)
			}
		})
	}
}

func TestSpawnAtMostOncePerStep(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewScheduler(cfg)
	w := &World{Frame: 500, NextSpawn: 0}

	if !s.Tick(w, &scriptedRand{floats: []float64{0}}) {
		t.Fatal("expected a spawn")
	}
	if len(w.Obstacles) != 1 {
		t.Fatalf("spawned %d obstacles, expected 1", len(w.Obstacles))
	}
	if w.NextSpawn <= float64(w.Frame) {
		t.Errorf("threshold %v not moved past frame %d", w.NextSpawn, w.Frame)
	}
	if s.Tick(w, newScripted()) {
		t.Error("second tick in the same frame must not spawn")
	}
}

func TestFirstSpawnFrame(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPipeline(cfg, newScripted())
	w := p.NewWorld()

	for i := 1; i < 100; i++ {
		if p.Step(w).Spawned {
			t.Fatalf("spawned at frame %d, before the first threshold", w.Frame)
		}
	}
	if !p.Step(w).Spawned {
		t.Error("expected the first spawn at frame 100")
	}
}

func TestJumpReturnsToGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPipeline(cfg, newScripted())
	in := NewIntegrator(cfg)
	w := p.NewWorld()

	if !in.Jump(w) {
		t.Fatal("grounded jump should succeed")
	}
	if w.VelY != -17 {
		t.Errorf("VelY = %v, expected -17", w.VelY)
	}

	// y_n = 165 - 17n + 0.45n(n+1) first reaches 165 at n = 37
	for n := 1; n <= 36; n++ {
		in.Integrate(w)
		if !w.Jumping {
			t.Fatalf("landed early at step %d (y=%v)", n, w.Player.Y)
		}
		if n == 1 && in.Jump(w) {
			t.Error("jump while airborne must be a no-op")
		}
	}
	in.Integrate(w)
	if w.Jumping || w.Player.Y != 165 || w.VelY != 0 {
		t.Errorf("after 37 steps: jumping=%v y=%v vy=%v", w.Jumping, w.Player.Y, w.VelY)
	}
}

func TestIntegrateGroundedIsNoop(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewPipeline(cfg, newScripted()).NewWorld()
	before := *w

	NewIntegrator(cfg).Integrate(w)
	if !reflect.DeepEqual(*w, before) {
		t.Errorf("grounded integrate changed the world: %+v", w)
	}
}

func TestCleanupRemovesObstaclesBehindTrack(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPipeline(cfg, newScripted())
	w := p.NewWorld()
	w.NextSpawn = math.Inf(1)
	// The step moves everything left by 10.006. Right edges afterwards:
	// -170.006 and -100.006 are dropped, -95.006 and 429.994 stay.
	w.Obstacles = []Entity{
		{X: -200, Y: 165, W: 40, H: 35, Kind: KindHat},
		{X: -125, Y: 165, W: 35, H: 35, Kind: KindBook},
		{X: -115, Y: 165, W: 30, H: 35, Kind: KindBook},
		{X: 400, Y: 165, W: 40, H: 35, Kind: KindElixir},
	}

	res := p.Step(w)
	if res.Collided {
		t.Fatal("unexpected collision")
	}
	if len(w.Obstacles) != 2 {
		t.Fatalf("kept %d obstacles, expected 2: %+v", len(w.Obstacles), w.Obstacles)
	}
	if w.Obstacles[0].X+w.Obstacles[0].W < -100 {
		t.Errorf("obstacle past cleanup retained: %+v", w.Obstacles[0])
	}
	if w.Obstacles[1].Kind != KindElixir || !approx(w.Obstacles[1].X, 400-10.006) {
		t.Errorf("order or advance wrong: %+v", w.Obstacles[1])
	}
}

func TestCollidesPaddingBoundary(t *testing.T) {
	player := Entity{X: 50, Y: 165, W: 35, H: 35, Kind: KindPlayer}

	tests := []struct {
		name string
		o    Entity
		want bool
	}{
		// player.right-pad = 77, obstacle.left+pad = 77: touching padded edges
		{"exactly at padding", Entity{X: 69, Y: 165, W: 40, H: 35}, false},
		{"just inside padding", Entity{X: 68.9, Y: 165, W: 40, H: 35}, true},
		{"raw overlap within padding", Entity{X: 80, Y: 165, W: 40, H: 35}, false},
		{"full overlap", Entity{X: 50, Y: 165, W: 35, H: 35}, true},
		// player.top+pad = 173, obstacle.bottom-pad = 173
		{"above at padding", Entity{X: 50, Y: 146, W: 35, H: 35}, false},
		{"above inside padding", Entity{X: 50, Y: 146.5, W: 35, H: 35}, true},
		{"far away", Entity{X: 500, Y: 165, W: 40, H: 35}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(player, tc.o, 8); got != tc.want {
				t.Errorf("Collides() = %v, expected %v", got, tc.want)
			}
			if Collides(tc.o, player, 8) != Collides(player, tc.o, 8) {
				t.Error("Collides is not symmetric")
			}
		})
	}
}

func TestCollisionStopsStep(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPipeline(cfg, &scriptedRand{floats: []float64{0, 1, 0.25, 0.75}})
	w := p.NewWorld()
	w.NextSpawn = math.Inf(1)
	w.Obstacles = []Entity{
		{X: 60, Y: 165, W: 40, H: 35, Kind: KindElixir},
		{X: 600, Y: 165, W: 40, H: 35, Kind: KindHat},
	}

	res := p.Step(w)
	if !res.Collided {
		t.Fatal("expected a collision")
	}
	if len(w.Obstacles) != 2 {
		t.Fatalf("obstacles = %+v", w.Obstacles)
	}
	if w.Obstacles[1].X != 600 {
		t.Errorf("obstacles after the hit must stay untouched, got x=%v", w.Obstacles[1].X)
	}

	if len(w.Particles) != cfg.Particles.Count {
		t.Fatalf("burst has %d particles, expected %d", len(w.Particles), cfg.Particles.Count)
	}
	cx, cy := w.Player.Center()
	for _, pt := range w.Particles {
		if pt.X != cx || pt.Y != cy || pt.Life != 1 || pt.Color != core.ColorElixir {
			t.Errorf("particle %+v, expected fresh at (%v, %v)", pt, cx, cy)
		}
		if math.Abs(pt.VX) > 6 || math.Abs(pt.VY) > 6 {
			t.Errorf("particle velocity out of range: %+v", pt)
		}
	}
}

func TestParticlesDecayAndPrune(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ps := NewParticleSystem(cfg.Particles)
	w := &World{}
	ps.Burst(w, 100, 100, core.ColorElixir, &scriptedRand{floats: []float64{1, 0}})

	first := w.Particles[0]
	ps.Update(w)
	if w.Particles[0].X != first.X+first.VX || !approx(w.Particles[0].Life, 0.975) {
		t.Errorf("particle after one update %+v", w.Particles[0])
	}

	for i := 1; i < 39; i++ {
		ps.Update(w)
	}
	if len(w.Particles) != 15 {
		t.Fatalf("after 39 updates %d particles left, expected 15", len(w.Particles))
	}

	ps.Update(w)
	ps.Update(w)
	if len(w.Particles) != 0 {
		t.Errorf("after 41 updates %d particles left, expected 0", len(w.Particles))
	}
}

func TestDimensionsCoverEveryKind(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig())
	for _, k := range []Kind{KindPlayer, KindHat, KindBook, KindElixir} {
		if w, h := s.Dimensions(k); w <= 0 || h <= 0 {
			t.Errorf("Dimensions(%s) = %v x %v", k, w, h)
		}
	}
	if w, h := s.Dimensions(Kind(99)); w != 0 || h != 0 {
		t.Errorf("unknown kind should have no size, got %v x %v", w, h)
	}
}
