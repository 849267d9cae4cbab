package runner

// Rand is the source of every random draw the simulation makes: the spawn
// variant, the spawn interval and particle velocities. *math/rand.Rand
// satisfies it; tests substitute a scripted sequence.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
