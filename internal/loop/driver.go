// Package loop converts variable-rate display refresh callbacks into a
// bounded number of fixed-size simulation steps.
//
// The host (a terminal tick, a timer, a browser refresh signal) calls
// Frame once per refresh with a monotonic timestamp. The driver decides how
// many steps are due, runs them, renders exactly once and tells the host
// whether to schedule the next refresh. Every Start hands out a new
// Generation; callbacks carrying an older one are ignored, so a stale
// in-flight refresh can never start a second callback chain.
package loop

import "time"

// Simulation is advanced one fixed step at a time.
type Simulation interface {
	// Step advances one step. now is the timestamp of the refresh that
	// triggered it. Returning false ends the run: no further steps are
	// taken and the driver stops.
	Step(now time.Duration) bool
}

// RenderFunc draws the current state. It is called once per processed refresh.
type RenderFunc func(now time.Duration)

// Generation identifies one callback chain.
type Generation uint64

// Result describes what a single Frame call did.
type Result struct {
	Steps      int  // fixed steps executed
	Halted     bool // the simulation ended the run during this frame
	Stale      bool // callback belonged to a cancelled chain and was ignored
	Reschedule bool // host should request another refresh
}

// Driver is the fixed-step loop driver. It is not safe for concurrent use;
// all calls are expected from the single execution context that owns the game.
type Driver struct {
	sim      Simulation
	render   RenderFunc
	step     time.Duration
	maxSteps int

	last    time.Duration
	gen     Generation
	running bool
}

// NewDriver creates a stopped driver. step is the simulated duration of
// one step and maxSteps caps catch-up per refresh.
func NewDriver(sim Simulation, render RenderFunc, step time.Duration, maxSteps int) *Driver {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Driver{
		sim:      sim,
		render:   render,
		step:     step,
		maxSteps: maxSteps,
	}
}

// Start arms the driver at now and returns the generation the host must
// pass back with every refresh of the new chain.
func (d *Driver) Start(now time.Duration) Generation {
	d.gen++
	d.last = now
	d.running = true
	return d.gen
}

// Stop cancels the current chain. Refreshes already in flight become stale.
func (d *Driver) Stop() {
	d.gen++
	d.running = false
}

// Running reports whether a chain is active.
func (d *Driver) Running() bool {
	return d.running
}

// Generation returns the current chain's generation.
func (d *Driver) Generation() Generation {
	return d.gen
}

// Frame processes one display refresh.
func (d *Driver) Frame(gen Generation, now time.Duration) Result {
	if gen != d.gen || !d.running {
		return Result{Stale: true}
	}

	var res Result
	elapsed := now - d.last
	if elapsed >= d.step {
		due := int(elapsed / d.step)
		if due > d.maxSteps {
			due = d.maxSteps // excess simulated time is dropped
		}
		for i := 0; i < due; i++ {
			res.Steps++
			if !d.sim.Step(now) {
				res.Halted = true
				d.running = false
				break
			}
		}
		d.last = now
	}

	if d.render != nil {
		d.render(now)
	}

	res.Reschedule = d.running
	return res
}
