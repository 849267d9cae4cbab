package runner

// Collides reports whether the padded boxes of a and b overlap.
func Collides(a, b Entity, pad float64) bool {
	return a.Box().Overlaps(b.Box(), pad)
}

// advanceObstacles moves every obstacle left by the current speed, tests
// it against the player and drops the ones that scrolled past cleanupX.
// On the first hit it stops: obstacles not yet visited keep their position.
func (p *Pipeline) advanceObstacles(w *World) (hit bool) {
	pad := p.cfg.Obstacles.Padding
	cleanupX := p.cfg.Obstacles.CleanupX

	kept := w.Obstacles[:0]
	for i := range w.Obstacles {
		o := w.Obstacles[i]
		o.X -= w.Speed

		if Collides(w.Player, o, pad) {
			kept = append(kept, o)
			kept = append(kept, w.Obstacles[i+1:]...)
			w.Obstacles = kept
			return true
		}

		if o.Box().Right() < cleanupX {
			continue
		}
		kept = append(kept, o)
	}

	w.Obstacles = kept
	return false
}
